package wadln

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLnRejectsNonPositive(t *testing.T) {
	_, err := Ln(big.NewInt(0))
	assert.ErrorIs(t, err, ErrInputNotPositive)

	_, err = Ln(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrInputNotPositive)
}

func TestLnOfOneIsZero(t *testing.T) {
	got, err := Ln(big.NewInt(wad))
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Int64())
}

func TestLnOfTenIsPreciseConstant(t *testing.T) {
	got, err := Ln(bigTenWad)
	require.NoError(t, err)
	assert.Equal(t, ln10Wad, got)
}

func TestLnTailRecursionMatchesShiftedTable(t *testing.T) {
	// ln(100) = ln(10) + ln(10) via the tail-recursion branch.
	hundredWad := new(big.Int).Mul(big.NewInt(100), big.NewInt(wad))
	got, err := Ln(hundredWad)
	require.NoError(t, err)
	want := new(big.Int).Mul(ln10Wad, big.NewInt(2))
	assert.Equal(t, want, got)
}

func TestLnHeadRecursionBoundary(t *testing.T) {
	// ln(0.0001) = ln(0.001) + ln(0.1), both known table/constant values.
	pointOOOOne := big.NewInt(wad / 10000)
	got, err := Ln(pointOOOOne)
	require.NoError(t, err)

	approxWant := math.Log(0.0001) * wad
	gotFloat := new(big.Float).SetInt(got)
	f, _ := gotFloat.Float64()
	assert.InDelta(t, approxWant, f, 5e13, "head-recursion result must track math.log within table precision")
}

func TestLnMatchesMathLogAcrossRange(t *testing.T) {
	samples := []float64{0.0015, 0.05, 0.2, 0.5, 0.9, 1.0, 1.1, 2.0, 5.0, 9.9}
	for _, s := range samples {
		xWad := new(big.Int)
		bf := new(big.Float).Mul(big.NewFloat(s), big.NewFloat(wad))
		bf.Int(xWad)

		got, err := Ln(xWad)
		require.NoError(t, err)

		want := math.Log(s) * wad
		gotF := new(big.Float).SetInt(got)
		f, _ := gotF.Float64()
		assert.InDelta(t, want, f, 5e14, "ln(%v) deviates from math.log beyond table tolerance", s)
	}
}

func TestLnIsMonotonic(t *testing.T) {
	prev, err := Ln(big.NewInt(threshold))
	require.NoError(t, err)
	xs := []*big.Int{big.NewInt(threshold * 2), big.NewInt(wad / 2), big.NewInt(wad), big.NewInt(2 * wad), bigTenWad}
	for _, x := range xs {
		got, err := Ln(x)
		require.NoError(t, err)
		assert.True(t, got.Cmp(prev) >= 0, "ln must be non-decreasing in x")
		prev = got
	}
}
