package buckets

import (
	"fmt"
	"math"
)

// CeilingBucket returns the smallest multiple of gap that is >= value.
// Exact multiples map to themselves, so 0 -> 0, 400 -> 400, 401 -> 800.
//
// gap must be positive; gaps come from validated config, so a bad one is a
// programming error and panics.
func CeilingBucket(value float64, gap int64) int64 {
	if gap <= 0 {
		panic(fmt.Sprintf("invalid bucket gap: %d", gap))
	}
	g := float64(gap)
	result := int64(math.Floor(value/g)) * gap
	if math.Mod(value, g) != 0 {
		result += gap
	}
	return result
}
