// Package sinetable builds integer sine lookup tables covering one full
// revolution, scaled and offset into a non-negative range.
package sinetable

import "math"

const (
	DefaultSize  = 256
	DefaultScale = 32767
)

// Generate samples sin at size evenly spaced angles over [0, 2π) and maps
// each sample to int(sin(angle)*scale + scale), truncating toward zero.
//
// Generate does not validate its input. A non-positive size yields an
// empty, non-nil slice.
func Generate(size int, scale float64) []int {
	if size < 0 {
		return []int{}
	}

	values := make([]int, size)
	for i := range values {
		angle := float64(i) / float64(size) * 2 * math.Pi
		// The explicit conversion keeps the compiler from fusing the
		// multiply and add, which would change results near integers.
		values[i] = int(float64(math.Sin(angle)*scale) + scale)
	}
	return values
}

// GenerateDefault is Generate(DefaultSize, DefaultScale).
func GenerateDefault() []int {
	return Generate(DefaultSize, DefaultScale)
}
