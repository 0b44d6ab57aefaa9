// Package snaplattice rounds a float64 to the nearest multiple of Λ = 2^m
// using only IEEE-754 field manipulation — never a floating-point modulo
// or division — so the result lies exactly on the Λ-lattice as the
// differential-privacy proof requires.
package snaplattice

import "github.com/dpkit/snap/internal/ieee"

// SnapToLambda rounds x to the nearest multiple of 2^m, ties toward +∞.
// x = 0 (of either sign) is returned unchanged before any field
// arithmetic is done.
func SnapToLambda(x float64, m int) float64 {
	d := ieee.Decompose(x)

	if d.IsZero() {
		return x
	}

	// x/2^m underflows the representable exponent range entirely only
	// when |x| is already far below 0.5*2^m (deep subnormal territory),
	// in which case the nearest multiple of 2^m is unambiguously zero —
	// ieee.DivideByPow2 is documented as undefined in that regime, so we
	// short-circuit to the answer RoundToNearestInteger would have given
	// anyway rather than feed it an unrepresentable intermediate value.
	if d.Exp-int64(m) <= 0 {
		return ieee.Decomposed{Sign: d.Sign, Exp: 0, Mantissa: 0}.Recompose()
	}

	divided := d.DivideByPow2(m)
	rounded := divided.RoundToNearestInteger()
	restored := rounded.MultiplyByPow2(m)
	return restored.Recompose()
}
