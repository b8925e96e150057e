package config

import (
	"encoding/json"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/tidwall/pretty"
)

// JSON returns entries as pretty-printed JSON object with sorted keys
func (s *Store) JSON() []byte {
	// json.Marshal of map[string]string can't fail and sorts keys
	d, _ := json.Marshal(s.m)
	return pretty.Pretty(d)
}

func toDiffLines(s *Store) []string {
	lines := s.Lines()
	for i, l := range lines {
		lines[i] = l + "\n"
	}
	return lines
}

// Diff returns unified diff between a and b (as sorted key=value lines).
// Returns "" if they have the same entries
func Diff(a, b *Store, nameA, nameB string) string {
	ud := difflib.UnifiedDiff{
		A:        toDiffLines(a),
		B:        toDiffLines(b),
		FromFile: nameA,
		ToFile:   nameB,
		Context:  1,
	}
	// only fails if writing to a bytes.Buffer fails
	s, _ := difflib.GetUnifiedDiffString(ud)
	return s
}
