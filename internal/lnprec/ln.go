// Package lnprec computes a correctly-rounded natural logarithm: the
// float64 nearest the true mathematical ln(u), with no tie ever
// resolved the wrong way due to an intermediate rounding error. An
// ordinary math.Log is only faithfully rounded, not correctly rounded —
// Mironov's attack against naive implementations of the snapping
// mechanism exploits exactly that gap, recovering information about an
// input's last bit from which side of a half-ulp boundary an
// imprecisely-rounded log happened to land on.
package lnprec

import (
	"fmt"
	"math"
	"math/big"
)

// minWorkingPrecision is the smallest working precision (in bits) the
// rounding-test loop starts at, chosen to comfortably exceed float64's
// 53-bit mantissa plus the guard bits the reduction and series need.
const minWorkingPrecision = 118

// maxAttempts bounds the number of precision doublings the rounding test
// will attempt before giving up and reporting that the result could not
// be certified.
const maxAttempts = 20

// Ln returns the correctly-rounded float64 value of ln(u) for u in the
// open interval (0, 1), or an error if u is out of domain or a
// correctly-rounded result could not be certified within the precision
// budget.
func Ln(u float64) (float64, error) {
	if math.IsNaN(u) || math.IsInf(u, 0) || u <= 0 || u >= 1 {
		return 0, fmt.Errorf("lnprec: u must be finite and in (0, 1), got %v", u)
	}

	prec := uint(minWorkingPrecision)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		lo := lnAtPrecision(u, prec)
		hi := lnAtPrecision(u, prec*2)

		loFloat, _ := lo.Float64()
		hiFloat, _ := hi.Float64()

		if loFloat == hiFloat {
			// hi was computed at double lo's working precision; both
			// precisions round to the same float64, which is accepted
			// as the result. Otherwise both precisions are doubled and
			// the comparison is repeated.
			return hiFloat, nil
		}

		prec *= 2
	}

	return 0, fmt.Errorf("lnprec: could not certify a correctly-rounded ln(%v) within %d bits of working precision", u, prec)
}

// lnAtPrecision computes ln(u) as a big.Float carried at the given
// working precision, via square-root argument reduction followed by the
// atanh series, which converges quickly once the reduced argument is
// close to 1.
func lnAtPrecision(u float64, prec uint) *big.Float {
	x := new(big.Float).SetPrec(prec).SetFloat64(u)
	one := new(big.Float).SetPrec(prec).SetInt64(1)

	lowBound := new(big.Float).SetPrec(prec).SetFloat64(0.7071067811865476)  // 1/sqrt(2)
	highBound := new(big.Float).SetPrec(prec).SetFloat64(1.4142135623730951) // sqrt(2)

	k := 0
	for (x.Cmp(lowBound) < 0 || x.Cmp(highBound) > 0) && k < 4096 {
		x.Sqrt(x)
		k++
	}

	// y = (x-1)/(x+1); ln(x) = 2*atanh(y) = 2*(y + y^3/3 + y^5/5 + ...)
	num := new(big.Float).SetPrec(prec).Sub(x, one)
	den := new(big.Float).SetPrec(prec).Add(x, one)
	y := new(big.Float).SetPrec(prec).Quo(num, den)
	ySquared := new(big.Float).SetPrec(prec).Mul(y, y)

	sum := new(big.Float).SetPrec(prec).Set(y)
	term := new(big.Float).SetPrec(prec).Set(y)

	epsilon := new(big.Float).SetPrec(prec).SetMantExp(one, -int(prec)-16)

	for i := 1; i < 100000; i++ {
		term = new(big.Float).SetPrec(prec).Mul(term, ySquared)
		denom := new(big.Float).SetPrec(prec).SetInt64(int64(2*i + 1))
		contribution := new(big.Float).SetPrec(prec).Quo(term, denom)
		sum.Add(sum, contribution)

		if new(big.Float).Abs(contribution).Cmp(epsilon) < 0 {
			break
		}
	}

	lnx := new(big.Float).SetPrec(prec).Mul(sum, new(big.Float).SetPrec(prec).SetInt64(2))

	// ln(u) = ln(x^(2^k)) = 2^k * ln(x), since x = u^(1/2^k).
	result := new(big.Float).SetPrec(prec)
	result.SetMantExp(lnx, k)
	return result
}
