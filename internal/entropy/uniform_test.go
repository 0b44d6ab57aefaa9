package entropy

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedSource replays a fixed sequence of bits, then a fixed mantissa
// value, so the geometric-exponent construction in UniformUnit can be
// checked against a hand-computed expectation.
type scriptedSource struct {
	bits     []bool
	bitPos   int
	mantissa uint64
}

func (s *scriptedSource) Bool() (bool, error) {
	if s.bitPos >= len(s.bits) {
		return false, errors.New("scriptedSource: out of scripted bits")
	}
	b := s.bits[s.bitPos]
	s.bitPos++
	return b, nil
}

func (s *scriptedSource) UniformBits(n int) (uint64, error) {
	if n > 52 {
		panic("scriptedSource only scripts the 52-bit mantissa draw")
	}
	return s.mantissa & ((uint64(1) << uint(n)) - 1), nil
}

// allZerosSource never terminates the leading-zero count on its own: Bool
// always returns false, so UniformUnit runs the loop out to its cap.
type allZerosSource struct {
	mantissa uint64
}

func (s *allZerosSource) Bool() (bool, error) {
	return false, nil
}

func (s *allZerosSource) UniformBits(n int) (uint64, error) {
	return s.mantissa & ((uint64(1) << uint(n)) - 1), nil
}

func TestUniformUnit_NoLeadingZeros(t *testing.T) {
	// First bit is 1: leadingZeros = 0, value in [0.5, 1).
	src := &scriptedSource{bits: []bool{true}, mantissa: 0}
	got, err := UniformUnit(src)
	require.NoError(t, err)
	require.Equal(t, 0.5, got)
}

func TestUniformUnit_TwoLeadingZeros(t *testing.T) {
	// Two leading zero bits then a 1: leadingZeros = 2, value in
	// [2^-3, 2^-2).
	src := &scriptedSource{bits: []bool{false, false, true}, mantissa: 0}
	got, err := UniformUnit(src)
	require.NoError(t, err)
	require.Equal(t, 0.125, got)
}

func TestUniformUnit_MantissaIsHonored(t *testing.T) {
	// With leadingZeros = 0 (binade [0.5, 1)) and the mantissa's top bit
	// set, the result should be 0.5 + 2^-2 = 0.75.
	src := &scriptedSource{bits: []bool{true}, mantissa: uint64(1) << 51}
	got, err := UniformUnit(src)
	require.NoError(t, err)
	require.Equal(t, 0.75, got)
}

func TestUniformUnit_PropagatesEntropyError(t *testing.T) {
	src := &scriptedSource{bits: nil, mantissa: 0}
	_, err := UniformUnit(src)
	require.Error(t, err)
}

func TestUniformUnit_CappedLeadingZerosStaysNormal(t *testing.T) {
	// A source that never flips a true bit drives leadingZeros to its cap
	// (maxLeadingZeros = 1021), which must produce the smallest normal
	// double (biasedExp == 1), never the subnormal/zero encoding
	// (biasedExp == 0) ieee.Decomposed forbids.
	src := &allZerosSource{mantissa: 0}
	got, err := UniformUnit(src)
	require.NoError(t, err)
	require.Equal(t, math.SmallestNonzeroFloat64*(1<<52), got)
	require.False(t, math.IsInf(got, 0))
	require.Greater(t, got, 0.0)
}

func TestUniformUnit_LiveSourceStaysInUnitInterval(t *testing.T) {
	src := NewCryptoSourceSize(4096)
	for i := 0; i < 1000; i++ {
		got, err := UniformUnit(src)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got, 0.0)
		require.Less(t, got, 1.0)
	}
}

func TestUniformSign_ReturnsPlusOrMinusOne(t *testing.T) {
	trueSrc := &scriptedSource{bits: []bool{true}}
	got, err := UniformSign(trueSrc)
	require.NoError(t, err)
	require.Equal(t, 1.0, got)

	falseSrc := &scriptedSource{bits: []bool{false}}
	got, err = UniformSign(falseSrc)
	require.NoError(t, err)
	require.Equal(t, -1.0, got)
}
