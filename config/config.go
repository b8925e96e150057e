// Package config implements a flat key=value configuration store.
//
// The file format is one entry per line: key=value. The line is split on
// the first '=' so the value can contain '='. There is no quoting,
// no comments and no escaping. Lines without '=' or with nothing after
// '=' are silently skipped.
//
// Values are stored as strings and converted at lookup time (GetInt, GetStr).
package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/kjk/benchdata/log"
	"github.com/kjk/benchdata/u"
)

var (
	// ErrKeyNotFound is returned when a key is not in the store
	ErrKeyNotFound = errors.New("config: key not found")
	// ErrInvalidFormat is returned when a value can't be converted to requested type
	ErrInvalidFormat = errors.New("config: invalid format")
)

// Store is a mapping of string keys to string values.
// It's safe for concurrent readers as long as nobody calls Set()
type Store struct {
	m map[string]string
}

// New returns an empty store
func New() *Store {
	return &Store{
		m: map[string]string{},
	}
}

// Load parses a config file at path. Files with .gz, .bz2, .zst, .zstd or .br
// extension are decompressed.
// An error opening or reading the file is returned and wraps *fs.PathError
func Load(path string) (*Store, error) {
	r, err := u.OpenFileMaybeCompressed(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	defer r.Close()
	s, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("config.Load('%s'): %w", path, err)
	}
	log.Verbosef("config.Load: %d entries from '%s'\n", s.Len(), path)
	return s, nil
}

// LoadOrEmpty is like Load but returns an empty store if the file
// can't be opened or read
func LoadOrEmpty(path string) *Store {
	s, err := Load(path)
	if err != nil {
		log.Verbosef("config.LoadOrEmpty: using empty config, %s\n", err)
		return New()
	}
	return s
}

// parseLine returns key and value of a key=value line.
// ok is false if there's no '=' or nothing after '='
func parseLine(line string) (key string, val string, ok bool) {
	key, val, found := strings.Cut(line, "=")
	if !found || val == "" {
		return "", "", false
	}
	return key, val, true
}

// trimEOL removes trailing "\n" or "\r\n"
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Parse reads key=value lines from r. Lines can be of any length
func Parse(r io.Reader) (*Store, error) {
	s := New()
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if key, val, ok := parseLine(trimEOL(line)); ok {
				s.Set(key, val)
			}
		}
		if err == io.EOF {
			return s, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// ParseBytes is like Parse for in-memory data
func ParseBytes(d []byte) *Store {
	// reading from bytes.Reader only fails with io.EOF
	s, _ := Parse(bytes.NewReader(d))
	return s
}

// Set sets or overwrites a value for a key
func (s *Store) Set(key, value string) {
	s.m[key] = value
}

// GetStr returns raw value for a key
func (s *Store) GetStr(key string) (string, error) {
	v, ok := s.m[key]
	if !ok {
		return "", fmt.Errorf("%w: '%s'", ErrKeyNotFound, key)
	}
	return v, nil
}

// GetInt returns value for a key parsed as a base 10 int
func (s *Store) GetInt(key string) (int, error) {
	v, err := s.GetStr(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: key '%s' value '%s' is not an int (%w)", ErrInvalidFormat, key, v, err)
	}
	return n, nil
}

// Has returns true if key is in the store
func (s *Store) Has(key string) bool {
	_, ok := s.m[key]
	return ok
}

// Len returns number of entries
func (s *Store) Len() int {
	return len(s.m)
}

// Keys returns sorted keys
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lines returns entries as key=value lines, sorted by key
func (s *Store) Lines() []string {
	keys := s.Keys()
	res := make([]string, len(keys))
	for i, k := range keys {
		res[i] = k + "=" + s.m[k]
	}
	return res
}
