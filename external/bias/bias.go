// Package bias computes the closed-form expected bias the snapping
// mechanism introduces at a given true value, bound, and privacy
// parameter, under a continuous approximation that ignores the
// lattice-rounding step's own (much smaller) discretization error and
// models the release as a clamped Laplace draw. It is a collaborator of
// the kernel, not part of it: only the root package's tests import this
// package; no kernel code does.
package bias

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ExpectedBias returns E[release] - fD for a value fD, clamping bound B,
// and privacy parameter epsilon, under the continuous approximation
// described in the package doc comment. fD is typically already within
// [-B, B] (the mechanism clamps before adding noise); values outside
// that range are still accepted; the bound contribution then dominates.
func ExpectedBias(fD, B, epsilon float64) float64 {
	b := 1 / epsilon
	dist := distuv.Laplace{Mu: fD, Scale: b}

	lower := -math.Abs(B)
	upper := math.Abs(B)

	pLower := dist.CDF(lower)
	pUpper := 1 - dist.CDF(upper)

	expectedRelease := lower*pLower + upper*pUpper + partialFirstMoment(dist, lower, upper)
	return expectedRelease - fD
}

// MaxBias returns the symmetric interval [-|bias|, |bias|] the expected
// bias can take, evaluated at the boundary fD = B where the clamp's
// effect (and therefore the bias) is largest.
func MaxBias(B, epsilon float64) (lo, hi float64) {
	b := ExpectedBias(math.Abs(B), B, epsilon)
	return -math.Abs(b), math.Abs(b)
}

// partialFirstMoment returns the unconditional partial first moment
// integral(lb, ub) of x*pdf(x) dx for a Laplace distribution, computed
// in closed form via integration by parts against the CDF: for any
// antiderivative G of the CDF, integral(a,b) x f(x) dx = [x F(x) - G(x)]
// from a to b. distuv.Laplace does not expose this directly, so it is
// hand-derived here from the piecewise Laplace CDF.
func partialFirstMoment(dist distuv.Laplace, lb, ub float64) float64 {
	mu, b := dist.Mu, dist.Scale

	// G below/above mu are two different antiderivatives of the CDF
	// (they differ by a constant); each must only be evaluated at both
	// ends of a single subtraction against itself, never mixed.
	belowAntideriv := func(x float64) float64 {
		return x*dist.CDF(x) - 0.5*b*math.Exp((x-mu)/b)
	}
	aboveAntideriv := func(x float64) float64 {
		return x*dist.CDF(x) - (x + 0.5*b*math.Exp(-(x-mu)/b))
	}

	switch {
	case ub <= mu:
		return belowAntideriv(ub) - belowAntideriv(lb)
	case lb >= mu:
		return aboveAntideriv(ub) - aboveAntideriv(lb)
	default:
		left := belowAntideriv(mu) - belowAntideriv(lb)
		right := aboveAntideriv(ub) - aboveAntideriv(mu)
		return left + right
	}
}
