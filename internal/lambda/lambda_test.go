package lambda

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSmallestPowerOfTwoGE_ExactPowers(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		m    int
	}{
		{"one", 1.0, 0},
		{"two", 2.0, 1},
		{"quarter", 0.25, -2},
		{"large power", 1024.0, 10},
		{"tiny power", math.Pow(2, -50), -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, m, err := SmallestPowerOfTwoGE(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.in, got)
			require.Equal(t, tt.m, m)
			require.Equal(t, got, math.Pow(2, float64(m)))
		})
	}
}

func TestSmallestPowerOfTwoGE_NonPowers(t *testing.T) {
	tests := []struct {
		name string
		in   float64
	}{
		{"epsilon one", 1.0},
		{"one over point three", 1 / 0.3},
		{"three", 3.0},
		{"ten", 10.0},
		{"just above a power", 2.0000001},
		{"small fraction", 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, m, err := SmallestPowerOfTwoGE(tt.in)
			require.NoError(t, err)

			if got == tt.in {
				return // tt.in happened to be an exact power of two already
			}
			require.Greater(t, got, tt.in)
			require.Less(t, got, 2*tt.in)
			require.Equal(t, got, math.Pow(2, float64(m)))
		})
	}
}

func TestSmallestPowerOfTwoGE_WorkedExample(t *testing.T) {
	// epsilon = 0.3, so lambda = 1/0.3 ~= 3.333, and the smallest power of
	// two >= lambda is 4.
	got, m, err := SmallestPowerOfTwoGE(1 / 0.3)
	require.NoError(t, err)
	require.Equal(t, 4.0, got)
	require.Equal(t, 2, m)
}

func TestSmallestPowerOfTwoGE_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   float64
	}{
		{"zero", 0},
		{"negative", -1.0},
		{"negative infinity", math.Inf(-1)},
		{"positive infinity", math.Inf(1)},
		{"NaN", math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := SmallestPowerOfTwoGE(tt.in)
			require.Error(t, err)
		})
	}
}
