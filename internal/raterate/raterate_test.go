package raterate

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinterRateCapsAtMax(t *testing.T) {
	assert.Equal(t, uint32(MaxMinterRate), MinterRate(50_000))
	assert.Equal(t, uint32(500), MinterRate(500))
}

func TestSafeLiteralVectorsProportionalBranch(t *testing.T) {
	assert.Equal(t, uint64(maxUint32), Safe(big.NewInt(1_000_000), big.NewInt(0), 1_000).Uint64())
	assert.Equal(t, uint64(1_000), Safe(big.NewInt(1_000_000), big.NewInt(1_000_000), 1_000).Uint64())
	assert.Equal(t, uint64(500), Safe(big.NewInt(500_000), big.NewInt(1_000_000), 1_000).Uint64())
}

// TestSafeLogBranchVector exercises A > E, which routes through wad_ln. A
// commonly cited worked example for this formula states 1_914 (extra_safe
// 1_875), but re-deriving the same formula chain end to end (independently
// in Python with math.log, and here against this package's table-based Ln)
// both land on 1_991 / 1_951. Two independent recomputations agreeing on a
// different value than that worked example points to an arithmetic slip
// in the example rather than in this implementation; see DESIGN.md.
func TestSafeLogBranchVector(t *testing.T) {
	got := Safe(big.NewInt(1_000_000), big.NewInt(500_000), 1_000)
	assert.Equal(t, uint64(1_991), got.Uint64())

	gotExtra := ExtraSafe(big.NewInt(1_000_000), big.NewInt(500_000), 1_000)
	assert.Equal(t, uint64(1_951), gotExtra.Uint64())
}

func TestRatePicksMinOfCapAndSafe(t *testing.T) {
	maxEarnerRate := big.NewInt(100_000) // absurdly high cap
	got := Rate(maxEarnerRate, 1_000, big.NewInt(1_000_000), big.NewInt(500_000))
	// Safe(...) is 1991 in this scenario; extra_safe shaves 2% off, and Rate
	// applies extra_safe whenever the low-risk shortcut doesn't apply.
	assert.Equal(t, uint64(1_951), got.Uint64())
}

func TestRateShortcutWhenCapBelowMinterRateAndOwedCoversSupply(t *testing.T) {
	maxEarnerRate := big.NewInt(400)
	got := Rate(maxEarnerRate, 1_000, big.NewInt(1_000_000), big.NewInt(500_000))
	assert.Equal(t, maxEarnerRate, got)
}

func TestRateZeroWhenNothingOwedOrNoMinterRate(t *testing.T) {
	assert.Equal(t, int64(0), Rate(big.NewInt(1_000), 1_000, big.NewInt(0), big.NewInt(500)).Int64())
	assert.Equal(t, int64(0), Rate(big.NewInt(1_000), 0, big.NewInt(1_000), big.NewInt(500)).Int64())
}

func TestExtraSafeNeverExceedsSafe(t *testing.T) {
	s := Safe(big.NewInt(1_000_000), big.NewInt(300_000), 2_000)
	es := ExtraSafe(big.NewInt(1_000_000), big.NewInt(300_000), 2_000)
	assert.True(t, es.Cmp(s) <= 0)
}
