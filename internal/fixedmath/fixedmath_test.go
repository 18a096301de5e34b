package fixedmath

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponentLiteralVectors(t *testing.T) {
	assert.Equal(t, uint64(1_000_000_000_000), Exponent(big.NewInt(0)))
	assert.Equal(t, uint64(2_718_281_718_281), Exponent(big.NewInt(ExpOne)))
	assert.Equal(t, uint64(7_388_888_888_888), Exponent(big.NewInt(2*ExpOne)))
}

func TestGetContinuousIndexLiteralVectors(t *testing.T) {
	assert.Equal(t, uint64(1_002_743_482_506), GetContinuousIndex(uint64(ExpOne), 86_400))
	assert.Equal(t, uint64(2_718_281_718_281), GetContinuousIndex(uint64(ExpOne), SecondsPerYear))
}

func TestExponentFoldPointPeak(t *testing.T) {
	fold := big.NewInt(6_101_171_897_009)
	peak := uint64(196_691_035_579_298)

	assert.Equal(t, peak, Exponent(fold))
	assert.Equal(t, peak, Exponent(new(big.Int).Sub(fold, big.NewInt(1))))
	assert.Less(t, Exponent(new(big.Int).Add(fold, big.NewInt(1))), peak,
		"the (4,4) Padé approximation folds over past its peak and must not be fed larger arguments")
}

func TestConvertToBasisPoints(t *testing.T) {
	assert.Equal(t, uint64(10_000), ConvertToBasisPoints(1_000_000_000_000))
	assert.Equal(t, uint64(5_000), ConvertToBasisPoints(500_000_000_000))
}

func TestConvertFromBasisPointsRoundTrip(t *testing.T) {
	for _, bp := range []uint32{0, 1, 500, 1_000, 10_000, 40_000} {
		scaled := ConvertFromBasisPoints(bp)
		assert.Equal(t, uint64(bp), ConvertToBasisPoints(scaled))
	}
}

func TestDivideDownAndUpRoundingDirection(t *testing.T) {
	index := big.NewInt(2 * ExpOne) // 2.0
	x := big.NewInt(3)

	down, err := DivideDown(x, index)
	require.NoError(t, err)
	up, err := DivideUp(x, index)
	require.NoError(t, err)

	assert.True(t, down.Cmp(up) <= 0, "divide_down must never exceed divide_up")
}

func TestDivideByZero(t *testing.T) {
	_, err := DivideDown(big.NewInt(1), big.NewInt(0))
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = DivideUp(big.NewInt(1), big.NewInt(0))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestMultiplyDownNeverExceedsMultiplyUp(t *testing.T) {
	principal := big.NewInt(1_234_567)
	index := big.NewInt(1_500_000_000_000)

	down := MultiplyDown(principal, index)
	up := MultiplyUp(principal, index)
	assert.True(t, down.Cmp(up) <= 0)
}

func TestFitsBits(t *testing.T) {
	assert.True(t, FitsBits(MaxUint128(), 128))
	over := new(big.Int).Add(MaxUint128(), big.NewInt(1))
	assert.False(t, FitsBits(over, 128))
	assert.False(t, FitsBits(big.NewInt(-1), 8))
}
