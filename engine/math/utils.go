package math

import (
	gomath "math"

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

// RoundDiv returns num / den rounded half away from zero.
func RoundDiv[T constraints.Float](num, den T) float64 {
	return gomath.Round(float64(num) / float64(den))
}
