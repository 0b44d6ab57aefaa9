// Package laplace implements the ordinary (non-snapped) Laplace
// mechanism as a comparison baseline for the snapping mechanism: the
// same secure sign-and-uniform draw and correctly-rounded logarithm,
// but with no clamp and no lattice-rounding step. It exists so callers
// can measure what the snapping mechanism's extra machinery buys them;
// nothing in github.com/dpkit/snap depends on it.
package laplace

import (
	"fmt"
	"math"

	"github.com/dpkit/snap/internal/entropy"
	"github.com/dpkit/snap/internal/lnprec"
)

// AddNoise returns the noise the ordinary Laplace mechanism would add to
// a statistic with the given sensitivity and epsilon: sign * (sensitivity
// / epsilon) * ln(u*), with sign drawn uniformly from {-1, +1} and u*
// drawn uniformly on (0, 1) via the same secure, full-binade construction
// the snapping mechanism uses.
func AddNoise(sensitivity, epsilon float64) (float64, error) {
	if !isValidPositive(sensitivity) {
		return 0, fmt.Errorf("laplace: sensitivity must be finite and positive, got %v", sensitivity)
	}
	if !isValidPositive(epsilon) {
		return 0, fmt.Errorf("laplace: epsilon must be finite and positive, got %v", epsilon)
	}

	src := entropy.NewCryptoSource()

	sign, err := entropy.UniformSign(src)
	if err != nil {
		return 0, fmt.Errorf("laplace: drawing sign: %w", err)
	}
	uStar, err := entropy.UniformUnit(src)
	if err != nil {
		return 0, fmt.Errorf("laplace: drawing uniform variate: %w", err)
	}
	logUStar, err := lnprec.Ln(uStar)
	if err != nil {
		return 0, fmt.Errorf("laplace: computing ln: %w", err)
	}

	lambda := sensitivity / epsilon
	return sign * lambda * logUStar, nil
}

func isValidPositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
