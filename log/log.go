package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

var (
	logFile    *DailyFile
	errorsFile *DailyFile
	eventsFile *DailyFile
	onLog      func(s string)

	// Out is where Logf() prints, in addition to log files
	Out io.Writer = os.Stdout

	// if true, Verbosef() will log messages
	Verbose bool
)

type Config struct {
	// directory where log files are stored
	// each log type (regular, errors, events) has its own subdirectory
	// if empty, we only log to Out
	Dir string
	// called for every Logf() call
	OnLog func(s string)
}

// Init initializes logging to files in config.Dir
func Init(config *Config) {
	Close()
	onLog = config.OnLog
	dir := config.Dir
	if dir == "" {
		return
	}
	logFile = NewDailyFile(filepath.Join(dir, "log"))
	errorsFile = NewDailyFile(filepath.Join(dir, "errors"))
	// files are only created on first write so if app
	// doesn't log events, it's a no-op
	eventsFile = NewDailyFile(filepath.Join(dir, "events"))
}

func closeDailyFile(w **DailyFile) {
	(*w).Close()
	*w = nil
}

// Close closes log files. It's safe to call multiple times
func Close() {
	closeDailyFile(&logFile)
	closeDailyFile(&errorsFile)
	closeDailyFile(&eventsFile)
	onLog = nil
}

func Logf(s string, args ...any) {
	if len(args) > 0 {
		s = fmt.Sprintf(s, args...)
	}
	fmt.Fprint(Out, s)
	logFile.WriteString(s)
	if onLog != nil {
		onLog(s)
	}
}

func Verbosef(format string, args ...any) {
	if !Verbose {
		return
	}
	Logf(format, args...)
}

func GetCallstackFrames(skip int) []string {
	var callers [32]uintptr
	n := runtime.Callers(skip+1, callers[:])
	frames := runtime.CallersFrames(callers[:n])
	var cs []string
	for {
		frame, more := frames.Next()
		cs = append(cs, frame.File+":"+strconv.Itoa(frame.Line))
		if !more {
			break
		}
	}
	return cs
}

func GetCallstack(skip int) string {
	frames := GetCallstackFrames(skip + 1)
	return strings.Join(frames, "\n")
}

// Errorf logs an error message along with the callstack
func Errorf(s string, args ...any) {
	if len(args) > 0 {
		s = fmt.Sprintf(s, args...)
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	s = s + GetCallstack(2) + "\n"
	Logf("%s", s)
	errorsFile.WriteString(s)
}

// if err != nil, log and return true
// IfErrf(err) => logs err.Error()
// IfErrf(err, "error is: %v", err) => logs message formatted
func IfErrf(err error, a ...any) bool {
	if err == nil {
		return false
	}
	if len(a) == 0 {
		Errorf("%s", err.Error())
		return true
	}
	s, ok := a[0].(string)
	if !ok {
		s = fmt.Sprintf("%s", a[0])
	}
	if len(a) > 1 {
		s = fmt.Sprintf(s, a[1:]...)
	}
	Errorf("%s", s)
	return true
}
