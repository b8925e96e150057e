package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert"
)

var fixedTime = time.Date(2024, 1, 15, 10, 30, 45, 123000000, time.UTC)

// setupLog redirects Out and log files to a temp dir and pins the clock
func setupLog(t *testing.T) (string, *bytes.Buffer) {
	dir := t.TempDir()
	var buf bytes.Buffer
	prevOut, prevNow := Out, timeNow
	Out = &buf
	timeNow = func() time.Time { return fixedTime }
	Init(&Config{Dir: dir})
	t.Cleanup(func() {
		Close()
		Out = prevOut
		timeNow = prevNow
		Verbose = false
	})
	return dir, &buf
}

func readLogFile(t *testing.T, dir string, kind string) string {
	path := filepath.Join(dir, kind, "2024-01-15.txt")
	d, err := os.ReadFile(path)
	assert.NoError(t, err)
	return string(d)
}

func TestLogf(t *testing.T) {
	dir, buf := setupLog(t)
	var got []string
	onLog = func(s string) { got = append(got, s) }

	Logf("hello %d\n", 5)
	Logf("no args\n")
	assert.Equal(t, "hello 5\nno args\n", buf.String())
	assert.Equal(t, []string{"hello 5\n", "no args\n"}, got)
	assert.Equal(t, "hello 5\nno args\n", readLogFile(t, dir, "log"))
}

func TestVerbosef(t *testing.T) {
	_, buf := setupLog(t)
	Verbosef("hidden\n")
	assert.Equal(t, "", buf.String())
	Verbose = true
	Verbosef("shown %s\n", "now")
	assert.Equal(t, "shown now\n", buf.String())
}

func TestErrorf(t *testing.T) {
	dir, buf := setupLog(t)
	Errorf("bad thing %d", 3)
	s := buf.String()
	assert.True(t, strings.HasPrefix(s, "bad thing 3\n"), "%s", s)
	assert.Contains(t, s, "log_test.go")
	assert.Equal(t, s, readLogFile(t, dir, "errors"))
}

func TestIfErrf(t *testing.T) {
	_, buf := setupLog(t)
	assert.False(t, IfErrf(nil))
	assert.Equal(t, "", buf.String())
	assert.True(t, IfErrf(os.ErrNotExist, "open %s failed", "foo.txt"))
	assert.True(t, strings.HasPrefix(buf.String(), "open foo.txt failed\n"))
}

func TestMarshalEvent(t *testing.T) {
	ms := strconv.FormatInt(fixedTime.UnixMilli(), 10)
	tests := []struct {
		name string
		t    time.Time
		d    string
		exp  string
	}{
		{"generate", fixedTime, "size: 16", "--- 8 " + ms + " generate\nsize: 16\n"},
		{"generate", fixedTime, "size: 16\n", "--- 9 " + ms + " generate\nsize: 16\n"},
		{"", fixedTime, "a: 1", "--- 4 " + ms + "\na: 1\n"},
		{"start", time.Time{}, "", "--- 0 start\n"},
	}
	for _, test := range tests {
		got := marshalEvent(test.name, test.t, []byte(test.d))
		assert.Equal(t, test.exp, string(got))
	}
}

func TestEvent(t *testing.T) {
	dir, _ := setupLog(t)
	err := Event("generate", "size", 16, "from", 1)
	assert.NoError(t, err)
	err = EventWithDuration("filter", time.Millisecond, "matched", 3)
	assert.NoError(t, err)

	s := readLogFile(t, dir, "events")
	ms := strconv.FormatInt(fixedTime.UnixMilli(), 10)
	assert.Contains(t, s, ms+" generate\n")
	assert.Contains(t, s, ms+" filter\n")
	assert.Contains(t, s, "size")
	assert.Contains(t, s, "durmicro")
	assert.True(t, strings.HasPrefix(s, "--- "))
}

func TestEventOddValues(t *testing.T) {
	setupLog(t)
	err := Event("bad", "size")
	assert.Error(t, err)
}

func TestEventNotInitialized(t *testing.T) {
	Close()
	assert.NoError(t, Event("ignored", "a", 1))
}

func TestDailyFileNil(t *testing.T) {
	var w *DailyFile
	assert.NoError(t, w.WriteString("foo"))
	assert.NoError(t, w.Close())
}

func TestDailyFileRollover(t *testing.T) {
	dir := t.TempDir()
	prevNow := timeNow
	defer func() { timeNow = prevNow }()

	w := NewDailyFile(dir)
	defer w.Close()
	timeNow = func() time.Time { return fixedTime }
	assert.NoError(t, w.WriteString("day one\n"))
	next := fixedTime.Add(24 * time.Hour)
	timeNow = func() time.Time { return next }
	assert.NoError(t, w.WriteString("day two\n"))

	d1, err := os.ReadFile(w.Path(fixedTime))
	assert.NoError(t, err)
	assert.Equal(t, "day one\n", string(d1))
	d2, err := os.ReadFile(w.Path(next))
	assert.NoError(t, err)
	assert.Equal(t, "day two\n", string(d2))
}
