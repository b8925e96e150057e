package dataset

import (
	"testing"

	"github.com/alecthomas/assert"
)

func TestInRange(t *testing.T) {
	tests := []struct {
		key int
		exp bool
	}{
		{7, true},
		{4, false},
		{10, true},
		{5, true},
		{11, false},
		{-7, false},
	}
	for _, test := range tests {
		got := InRange(Record{Key: test.key}, 5, 10)
		assert.Equal(t, test.exp, got, "key %d", test.key)
	}
	// empty range
	assert.False(t, InRange(Record{Key: 5}, 6, 5))
}

func TestFilter(t *testing.T) {
	recs := []Record{{1, 1}, {5, 2}, {7, 3}, {10, 4}, {12, 5}}
	got := Filter(nil, recs, 5, 10)
	assert.Equal(t, []Record{{5, 2}, {7, 3}, {10, 4}}, got)
	assert.Equal(t, 3, CountInRange(recs, 5, 10))
	assert.Equal(t, 0, CountInRange(recs, 100, 200))

	dst := []Record{{99, 0}}
	got = Filter(dst, recs, 12, 12)
	assert.Equal(t, []Record{{99, 0}, {12, 5}}, got)
}

func TestKeys(t *testing.T) {
	recs := []Record{{3, 0}, {1, 0}, {2, 0}}
	assert.Equal(t, []int{3, 1, 2}, Keys(recs))
	assert.Equal(t, []int{}, Keys(nil))
}
