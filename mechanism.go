package snap

import (
	"math"

	"github.com/dpkit/snap/internal/clamp"
	"github.com/dpkit/snap/internal/entropy"
	"github.com/dpkit/snap/internal/lambda"
	"github.com/dpkit/snap/internal/lnprec"
	"github.com/dpkit/snap/internal/snaplattice"
)

// SmallestGEPowerOfTwo is the package's secondary, test-facing export of
// C2: the smallest power of two >= lam. Fails with a *DomainError if lam
// is non-positive or non-finite.
func SmallestGEPowerOfTwo(lam float64) (bigLambda float64, m int, err error) {
	bigLambda, m, err = lambda.SmallestPowerOfTwoGE(lam)
	if err != nil {
		return 0, 0, domainError("snap.SmallestGEPowerOfTwo", err.Error())
	}
	return bigLambda, m, nil
}

// SnapToLambda is the package's secondary, test-facing export of C3:
// round x to the nearest multiple of 2^m, ties toward +infinity.
func SnapToLambda(x float64, m int) float64 {
	return snaplattice.SnapToLambda(x, m)
}

// SecureUniformUnit is the package's secondary, test-facing export of the
// geometric-exponent + random-mantissa uniform draw C4 performs
// internally, backed by the process CSPRNG.
func SecureUniformUnit() (float64, error) {
	src := entropy.NewCryptoSource()
	u, err := entropy.UniformUnit(src)
	if err != nil {
		return 0, entropyError("SecureUniformUnit", err)
	}
	return u, nil
}

// SnapNoise computes the noise the snapping mechanism would add to
// non-private estimate x with the given sensitivity, privacy parameter
// epsilon, and bound B. It runs the full eight-step release algorithm
// and returns private - x, rather than the private estimate itself.
//
// Preconditions: sensitivity > 0, epsilon > 0, B > 0, and x, B finite.
// Violating any of these returns a *DomainError.
func SnapNoise(x, sensitivity, epsilon, B float64) (float64, error) {
	private, err := release(x, sensitivity, epsilon, B, entropy.NewCryptoSource())
	if err != nil {
		return 0, err
	}
	return private - x, nil
}

// SnapRelease computes the differentially private release of x under the
// snapping mechanism with the given sensitivity, epsilon, and bound B.
// See SnapNoise for preconditions.
func SnapRelease(x, sensitivity, epsilon, B float64) (float64, error) {
	return release(x, sensitivity, epsilon, B, entropy.NewCryptoSource())
}

// releaseWithSource is the entropy-injectable form of the release
// algorithm, used by tests that need a deterministic or scripted
// entropy.Source (see internal/testingsupport.TapeSource) instead of the
// live CSPRNG.
func releaseWithSource(x, sensitivity, epsilon, B float64, src entropy.Source) (float64, error) {
	return release(x, sensitivity, epsilon, B, src)
}

// release implements the eight numbered steps of the snapping mechanism:
//
//  1. rescale x and B to unit sensitivity
//  2. lambda = 1/epsilon
//  3. Lambda, m = smallest power of two >= lambda
//  4. clamp the rescaled estimate to [-B', B']
//  5. draw a random sign and a secure uniform variate u* on (0,1)
//  6. inner = clamped + sign*lambda*ln(u*)
//  7. round inner to the nearest multiple of Lambda
//  8. rescale back by sensitivity, then clamp to [-B, B]
func release(x, sensitivity, epsilon, B float64, src entropy.Source) (float64, error) {
	const op = "snap.release"

	if !isValidPositive(sensitivity) {
		return 0, domainError(op, "sensitivity must be finite and positive")
	}
	if !isValidPositive(epsilon) {
		return 0, domainError(op, "epsilon must be finite and positive")
	}
	if !isValidPositive(B) {
		return 0, domainError(op, "B must be finite and positive")
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, domainError(op, "x must be finite")
	}

	// Step 1: rescale to unit sensitivity.
	xPrime := x / sensitivity
	bPrime := B / sensitivity

	// Step 2-3: Lambda, m from 1/epsilon.
	lambdaValue := 1 / epsilon
	_, m, err := lambda.SmallestPowerOfTwoGE(lambdaValue)
	if err != nil {
		return 0, domainError(op, err.Error())
	}

	// Step 4: clamp the rescaled estimate.
	clamped := clamp.Clamp(xPrime, bPrime)

	// Step 5: draw sign and secure uniform variate.
	sign, err := entropy.UniformSign(src)
	if err != nil {
		return 0, entropyError(op, err)
	}
	uStar, err := entropy.UniformUnit(src)
	if err != nil {
		return 0, entropyError(op, err)
	}

	// Step 6: inner = clamped + sign*lambda*ln(u*). inner is bounded below
	// by -bPrime minus a log-scaled term, which for any finite positive B
	// and epsilon stays well clear of the subnormal range, so SnapToLambda
	// never has to special-case a subnormal input here.
	logUStar, err := lnprec.Ln(uStar)
	if err != nil {
		return 0, precisionError(op, err)
	}
	inner := clamped + sign*lambdaValue*logUStar

	// Step 7: round to the nearest multiple of Lambda.
	rounded := snaplattice.SnapToLambda(inner, m)

	// Step 8: rescale back to the original sensitivity and clamp to B, so
	// the release lies in [-B, B] exactly as a double.
	return clamp.Clamp(rounded*sensitivity, B), nil
}

func isValidPositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
