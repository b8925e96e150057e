package u

import "math/bits"

// MaxPowerOfTwo is the largest power of two that fits in an int
const MaxPowerOfTwo = 1 << (bits.UintSize - 2)

// NextPowerOfTwo returns the smallest power of two >= x.
// For x <= 1 it's 1. Panics if x > MaxPowerOfTwo
func NextPowerOfTwo(x int) int {
	if x <= 1 {
		return 1
	}
	PanicIf(x > MaxPowerOfTwo, "NextPowerOfTwo(%d): result doesn't fit in int", x)
	return 1 << bits.Len(uint(x-1))
}
