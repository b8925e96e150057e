package log

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/toon-format/toon-go"
)

// events are written as: "--- ${len} ${unix ms} ${name}\n${data}\n"
// ${data} is toon-encoded map of key/value pairs. The trailing
// newline is only added if data doesn't already end with one
var eventHdrPrefix = []byte("--- ")

func marshalEvent(name string, t time.Time, d []byte) []byte {
	var b bytes.Buffer
	b.Grow(len(eventHdrPrefix) + len(name) + len(d) + 32)
	b.Write(eventHdrPrefix)
	b.WriteString(strconv.Itoa(len(d)))
	if !t.IsZero() {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(t.UnixMilli(), 10))
	}
	if name != "" {
		b.WriteByte(' ')
		b.WriteString(name)
	}
	b.WriteByte('\n')
	if n := len(d); n > 0 {
		b.Write(d)
		if d[n-1] != '\n' {
			b.WriteByte('\n')
		}
	}
	return b.Bytes()
}

// keyToStr converts event key to string, panics on non-simple types
func keyToStr(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		panic("log.Event: nil key")
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Array, reflect.Slice, reflect.Struct, reflect.Map, reflect.Chan, reflect.Interface, reflect.Pointer, reflect.Func:
		panic(fmt.Sprintf("log.Event: key '%v' is of type %T", v, v))
	}
	return fmt.Sprintf("%v", v)
}

func eventData(vals []any) ([]byte, error) {
	n := len(vals)
	if n%2 != 0 {
		return nil, fmt.Errorf("log.Event: odd number of values (%d)", n)
	}
	if n == 0 {
		return nil, nil
	}
	m := map[string]any{}
	for i := 0; i < n; i += 2 {
		m[keyToStr(vals[i])] = vals[i+1]
	}
	return toon.Marshal(m)
}

// Event logs an event with key/value pairs to events log.
// It's a no-op if Init() wasn't called with a directory
func Event(name string, vals ...any) error {
	if eventsFile == nil {
		return nil
	}
	d, err := eventData(vals)
	if err != nil {
		return err
	}
	return eventsFile.Write(marshalEvent(name, timeNow().UTC(), d))
}

func EventWithDuration(name string, dur time.Duration, vals ...any) error {
	vals = append(vals, "durmicro", dur.Microseconds())
	return Event(name, vals...)
}
