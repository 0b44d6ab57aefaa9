// Package clamp restricts a value to a symmetric bound.
package clamp

import "math"

// Clamp restricts x to [-|B|, |B|]. Values already inside the bound are
// returned unchanged.
func Clamp(x, B float64) float64 {
	bound := math.Abs(B)
	if x < -bound {
		return -bound
	}
	if x > bound {
		return bound
	}
	return x
}
