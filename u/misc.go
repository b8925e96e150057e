package u

import (
	"strings"
	"time"
)

// FormatDuration formats duration in a more human friendly way
// than time.Duration.String(): no fractions for µs, 2 digit fractions for ms
func FormatDuration(d time.Duration) string {
	s := d.String()
	if strings.HasSuffix(s, "µs") {
		whole, _, _ := strings.Cut(strings.TrimSuffix(s, "µs"), ".")
		return whole + " µs"
	}
	if strings.HasSuffix(s, "ms") {
		num := strings.TrimSuffix(s, "ms")
		whole, frac, ok := strings.Cut(num, ".")
		if ok && len(frac) > 2 {
			frac = frac[:2]
		}
		if ok {
			return whole + "." + frac + " ms"
		}
		return whole + " ms"
	}
	return s
}
