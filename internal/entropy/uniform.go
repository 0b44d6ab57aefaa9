package entropy

import "github.com/dpkit/snap/internal/ieee"

// maxLeadingZeros caps the geometric exponent draw at 1021, so the
// capped biasedExp (ExponentBias-1-leadingZeros) never drops below 1 —
// biasedExp == 0 is the subnormal/zero encoding, which the sampled value
// must never produce. The probability of the cap ever triggering is
// 2^-1021; it exists only to bound the loop and keep the result
// representable.
const maxLeadingZeros = ieee.ExponentBias - 2

// UniformUnit draws a value uniformly distributed on (0, 1) with full
// binade resolution: the number of leading zero bits is sampled
// geometrically (by counting independent fair coin flips up to
// maxLeadingZeros), fixing which binade the result falls in, and the
// mantissa is then filled with 52 independent uniform bits. This is
// deliberately not built from a single library Float64()-style call,
// which would only ever sample uniformly within the top binade
// [0.5, 1) and never produce a value from a lower one.
func UniformUnit(src Source) (float64, error) {
	leadingZeros := 0
	for leadingZeros < maxLeadingZeros {
		bit, err := src.Bool()
		if err != nil {
			return 0, err
		}
		if bit {
			break
		}
		leadingZeros++
	}

	mantissa, err := src.UniformBits(52)
	if err != nil {
		return 0, err
	}

	biasedExp := ieee.ExponentBias - 1 - leadingZeros

	d := ieee.Decomposed{Sign: 0, Exp: int64(biasedExp), Mantissa: mantissa}
	return d.Recompose(), nil
}

// UniformSign draws a uniformly random sign, returned as +1 or -1.
func UniformSign(src Source) (float64, error) {
	bit, err := src.Bool()
	if err != nil {
		return 0, err
	}
	if bit {
		return 1, nil
	}
	return -1, nil
}
