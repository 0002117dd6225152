package math

import (
	m "math"

	"golang.org/x/exp/constraints"
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Wrap folds f into the half-open range [low, high). Used for angles that
// keep accumulating, e.g. an orbiting camera's azimuth.
func Wrap[T constraints.Float](f, low, high T) T {
	span := high - low
	if span <= 0 {
		return low
	}
	r := T(m.Mod(float64(f-low), float64(span)))
	if r < 0 {
		r += span
	}
	return low + r
}
