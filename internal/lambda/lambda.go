// Package lambda computes Λ, the smallest power of two greater than or
// equal to a positive λ, as required by the Mironov snapping construction.
package lambda

import (
	"fmt"
	"math"

	"github.com/dpkit/snap/internal/ieee"
)

// SmallestPowerOfTwoGE returns Λ, the smallest power of two >= lambda, and
// m such that Λ == 2^m. If lambda is itself an exact power of two, Λ ==
// lambda and m is its exponent.
func SmallestPowerOfTwoGE(lambda float64) (bigLambda float64, m int, err error) {
	if lambda <= 0 || math.IsInf(lambda, 0) || math.IsNaN(lambda) {
		return 0, 0, fmt.Errorf("lambda must be finite and positive, got %v", lambda)
	}

	d := ieee.Decompose(lambda)

	if d.Mantissa == 0 {
		// lambda is already a power of two.
		return lambda, int(d.Exp - ieee.ExponentBias), nil
	}

	rounded := ieee.Decomposed{Sign: d.Sign, Exp: d.Exp + 1, Mantissa: 0}
	return rounded.Recompose(), int(rounded.Exp - ieee.ExponentBias), nil
}
