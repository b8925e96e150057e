package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// overridable in tests
var timeNow = time.Now

// DailyFile appends to a file named after today's date (YYYY-MM-DD.txt) in Dir.
// The file is re-opened when UTC date changes.
// All methods are safe to call on nil receiver
type DailyFile struct {
	Dir string

	mu   sync.Mutex
	day  string
	file *os.File
}

func NewDailyFile(dir string) *DailyFile {
	return &DailyFile{
		Dir: dir,
	}
}

// Path returns path of the file for a given time
func (w *DailyFile) Path(t time.Time) string {
	return filepath.Join(w.Dir, t.UTC().Format("2006-01-02")+".txt")
}

// must be called with w.mu held
func (w *DailyFile) writer() (io.Writer, error) {
	now := timeNow().UTC()
	day := now.Format("2006-01-02")
	if w.file != nil && w.day != day {
		if err := w.close(); err != nil {
			return nil, err
		}
	}
	if w.file != nil {
		return w.file, nil
	}
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(w.Path(now), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	w.file = f
	w.day = day
	return f, nil
}

func (w *DailyFile) Write(d []byte) error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	wr, err := w.writer()
	if err != nil {
		return fmt.Errorf("log: DailyFile.Write: %w", err)
	}
	_, err = wr.Write(d)
	return err
}

func (w *DailyFile) WriteString(s string) error {
	return w.Write([]byte(s))
}

func (w *DailyFile) close() error {
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	w.day = ""
	return err
}

// Close syncs and closes the current file. Writing after Close re-opens it
func (w *DailyFile) Close() error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file != nil {
		_ = w.file.Sync()
	}
	return w.close()
}
