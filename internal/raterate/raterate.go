// Package raterate implements the earner-rate safety calculator and the
// pure minter-rate model. Together they choose the basis-point rate that
// ContinuousIndexing.Update advances the index by, bounded by what
// minters can be proven to owe over the confidence window.
package raterate

import (
	"math/big"

	"github.com/lumera-labs/yieldtoken/internal/fixedmath"
	"github.com/lumera-labs/yieldtoken/internal/wadln"
)

const (
	// RateConfidenceWindow is the 30-day look-ahead horizon (in seconds)
	// over which the earner rate is proven safe.
	RateConfidenceWindow = 2_592_000
	// RateSafetyMultiplier shaves 2% off the safe rate as headroom (98% in bp).
	RateSafetyMultiplier = 9_800
	// MaxMinterRate caps the minter rate model's output at 400% APY.
	MaxMinterRate = 40_000
)

const maxUint32 = ^uint32(0)

var bp10000 = big.NewInt(10_000)

// MinterRate returns min(baseMinterRate, MaxMinterRate).
func MinterRate(baseMinterRate uint32) uint32 {
	if baseMinterRate > MaxMinterRate {
		return MaxMinterRate
	}
	return baseMinterRate
}

// Rate is the top-level earner-rate safety calculation.
//
// maxEarnerRate is the registrar-configured cap (256-bit bp, represented
// here as *big.Int); minterRate is the gateway-reported minter rate;
// totalActiveOwed and totalEarningSupply are present-value totals.
func Rate(maxEarnerRate *big.Int, minterRate uint32, totalActiveOwed, totalEarningSupply *big.Int) *big.Int {
	if totalActiveOwed.Sign() == 0 || minterRate == 0 {
		return big.NewInt(0)
	}
	if maxEarnerRate.Cmp(bigFromU32(minterRate)) <= 0 && totalActiveOwed.Cmp(totalEarningSupply) >= 0 {
		return new(big.Int).Set(maxEarnerRate)
	}
	es := extraSafe(totalActiveOwed, totalEarningSupply, minterRate)
	if maxEarnerRate.Cmp(es) < 0 {
		return new(big.Int).Set(maxEarnerRate)
	}
	return es
}

// extraSafe returns floor(safe(A,E,m) * 9800 / 10000), clamped at u32::MAX.
func extraSafe(a, e *big.Int, m uint32) *big.Int {
	s := safe(a, e, m)
	v := new(big.Int).Mul(s, big.NewInt(RateSafetyMultiplier))
	v.Quo(v, bp10000)
	return clampU32(v)
}

// ExtraSafe exposes extraSafe for callers/tests that need the intermediate
// value directly.
func ExtraSafe(a, e *big.Int, m uint32) *big.Int { return extraSafe(a, e, m) }

// Safe implements the safe(A,E,m) bound on the earner rate.
func Safe(a, e *big.Int, m uint32) *big.Int { return safe(a, e, m) }

func safe(a, e *big.Int, m uint32) *big.Int {
	if a.Sign() == 0 || m == 0 {
		return big.NewInt(0)
	}
	if e.Sign() == 0 {
		return bigFromU32(maxUint32)
	}
	if a.Cmp(e) <= 0 {
		r := new(big.Int).Mul(a, bigFromU32(m))
		r.Quo(r, e)
		return clampU32(r)
	}
	return safeLogBranch(a, e, m)
}

func safeLogBranch(a, e *big.Int, m uint32) *big.Int {
	mScaled := fixedmath.ConvertFromBasisPoints(m)
	delta := fixedmath.GetContinuousIndex(mScaled, RateConfidenceWindow)

	deltaMinusOne := new(big.Int).Sub(new(big.Int).SetUint64(delta), big.NewInt(fixedmath.ExpOne))
	argExp := new(big.Int).Mul(a, deltaMinusOne)
	argExp.Quo(argExp, e)
	argExp.Add(argExp, big.NewInt(fixedmath.ExpOne))

	argWad := new(big.Int).Mul(argExp, big.NewInt(fixedmath.WadToExp))

	lnWad, err := wadln.Ln(argWad)
	if err != nil {
		// argWad is EXP_ONE*WAD_TO_EXP at minimum (== WAD) when A>E, so this
		// is unreachable; treat defensively as the safest (zero) rate.
		return big.NewInt(0)
	}
	if lnWad.Sign() < 0 {
		lnWad = new(big.Int).Neg(lnWad)
	}

	lnExp := new(big.Int).Quo(lnWad, big.NewInt(fixedmath.WadToExp))

	annualExp := new(big.Int).Mul(lnExp, big.NewInt(fixedmath.SecondsPerYear))
	annualExp.Quo(annualExp, big.NewInt(RateConfidenceWindow))

	if !fixedmath.FitsBits(annualExp, 64) {
		return bigFromU32(maxUint32)
	}

	bp := fixedmath.ConvertToBasisPoints(annualExp.Uint64())
	return clampU32(new(big.Int).SetUint64(bp))
}

func bigFromU32(v uint32) *big.Int { return new(big.Int).SetUint64(uint64(v)) }

func clampU32(v *big.Int) *big.Int {
	max := bigFromU32(maxUint32)
	if v.Cmp(max) > 0 {
		return max
	}
	return v
}
