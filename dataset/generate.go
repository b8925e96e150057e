/*
Package dataset generates synthetic keyed records for benchmarks.

Keys are drawn uniformly from a closed range [from, to]. Payload is a second,
independent draw from the same range, converted to float32.

Each Generate call creates its own random source seeded from OS entropy,
so results are not reproducible. Use GenerateSeeded for reproducible data.
*/
package dataset

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrPrecondition is returned when Generate is called with invalid arguments
var ErrPrecondition = errors.New("dataset: precondition violated")

func checkArgs(buf []Record, size, keyFrom, keyTo int) error {
	if size < 0 {
		return fmt.Errorf("%w: size is %d, must be >= 0", ErrPrecondition, size)
	}
	if keyFrom > keyTo {
		return fmt.Errorf("%w: keyFrom (%d) > keyTo (%d)", ErrPrecondition, keyFrom, keyTo)
	}
	if len(buf) < size {
		return fmt.Errorf("%w: len(buf) is %d, size is %d", ErrPrecondition, len(buf), size)
	}
	return nil
}

// uniformInt returns a random int in [from, to], from <= to
func uniformInt(rng *rand.Rand, from, to int) int {
	// span wraps correctly in uint64 even if to-from overflows int
	span := uint64(to) - uint64(from)
	if span == math.MaxUint64 {
		return int(rng.Uint64())
	}
	return from + int(rng.Uint64N(span+1))
}

func generate(rng *rand.Rand, buf []Record, size, keyFrom, keyTo int) {
	for i := range size {
		key := uniformInt(rng, keyFrom, keyTo)
		payload := uniformInt(rng, keyFrom, keyTo)
		buf[i] = Record{
			Key:     key,
			Payload: float32(payload),
		}
	}
}

func newRandomRng() *rand.Rand {
	var seed [32]byte
	// crypto/rand.Read never returns an error
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

func newSeededRng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate fills buf[0:size] with records whose keys and payloads are
// uniformly distributed in [keyFrom, keyTo].
// Requires size >= 0, keyFrom <= keyTo and len(buf) >= size.
// If not met, returns error wrapping ErrPrecondition and buf is not modified
func Generate(buf []Record, size, keyFrom, keyTo int) error {
	if err := checkArgs(buf, size, keyFrom, keyTo); err != nil {
		return err
	}
	generate(newRandomRng(), buf, size, keyFrom, keyTo)
	return nil
}

// GenerateSeeded is like Generate but the same seed always generates the same records
func GenerateSeeded(buf []Record, size, keyFrom, keyTo int, seed uint64) error {
	if err := checkArgs(buf, size, keyFrom, keyTo); err != nil {
		return err
	}
	generate(newSeededRng(seed), buf, size, keyFrom, keyTo)
	return nil
}

// Random allocates and returns size records generated with Generate
func Random(size, keyFrom, keyTo int) ([]Record, error) {
	if size < 0 {
		return nil, checkArgs(nil, size, keyFrom, keyTo)
	}
	buf := make([]Record, size)
	if err := Generate(buf, size, keyFrom, keyTo); err != nil {
		return nil, err
	}
	return buf, nil
}
