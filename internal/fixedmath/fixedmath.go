// Package fixedmath implements the deterministic fixed-point primitives the
// continuous-indexing token relies on: rounded multiply/divide against the
// EXP_ONE scale, basis-point conversions, and a rational Padé approximation
// of e^x used to advance the index over elapsed time.
//
// All intermediate products are carried in math/big to stay clear of the
// 256-bit envelope required before any truncation happens.
package fixedmath

import (
	"errors"
	"math/big"
)

// Scale constants.
const (
	ExpOne         = 1_000_000_000_000         // 10^12, exponent/index scale
	BpOne          = 10_000                    // 100% in basis points
	Wad            = 1_000_000_000_000_000_000 // 10^18
	WadToExp       = 1_000_000                 // WAD / EXP_ONE
	SecondsPerYear = 31_536_000
)

// ErrDivisionByZero is returned by divide_down/divide_up when the divisor is zero.
var ErrDivisionByZero = errors.New("fixedmath: division by zero")

var (
	bigExpOne  = big.NewInt(ExpOne)
	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	maxUint64  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))
)

// MaxUint128 returns 2^128-1, the envelope for indices and principals.
func MaxUint128() *big.Int { return new(big.Int).Set(maxUint128) }

// FitsBits reports whether v is non-negative and fits in the given bit width.
func FitsBits(v *big.Int, bits uint) bool {
	if v.Sign() < 0 {
		return false
	}
	return v.BitLen() <= int(bits)
}

// DivideDown returns floor(x * EXP_ONE / index).
func DivideDown(x, index *big.Int) (*big.Int, error) {
	if index.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	num := new(big.Int).Mul(x, bigExpOne)
	q := new(big.Int).Quo(num, index)
	return q, nil
}

// DivideUp returns ceil(x * EXP_ONE / index) = (x*EXP_ONE + index - 1) / index.
func DivideUp(x, index *big.Int) (*big.Int, error) {
	if index.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	num := new(big.Int).Mul(x, bigExpOne)
	num.Add(num, index)
	num.Sub(num, big.NewInt(1))
	q := new(big.Int).Quo(num, index)
	return q, nil
}

// MultiplyDown returns floor(x * index / EXP_ONE).
func MultiplyDown(x, index *big.Int) *big.Int {
	num := new(big.Int).Mul(x, index)
	return num.Quo(num, bigExpOne)
}

// MultiplyUp returns ceil(x * index / EXP_ONE).
func MultiplyUp(x, index *big.Int) *big.Int {
	num := new(big.Int).Mul(x, index)
	num.Add(num, bigExpOne)
	num.Sub(num, big.NewInt(1))
	return num.Quo(num, bigExpOne)
}

// MultiplyIndicesDown is MultiplyDown with a 64-bit delta index operand.
func MultiplyIndicesDown(index *big.Int, delta uint64) *big.Int {
	return MultiplyDown(index, new(big.Int).SetUint64(delta))
}

// MultiplyIndicesUp is MultiplyUp with a 64-bit delta index operand.
func MultiplyIndicesUp(index *big.Int, delta uint64) *big.Int {
	return MultiplyUp(index, new(big.Int).SetUint64(delta))
}

// ConvertFromBasisPoints returns bp * EXP_ONE / BP_ONE. Exact: BP_ONE divides EXP_ONE evenly.
func ConvertFromBasisPoints(bp uint32) uint64 {
	return uint64(bp) * (ExpOne / BpOne)
}

// ConvertToBasisPoints returns floor(scaled * BP_ONE / EXP_ONE), computed in
// big.Int space since scaled can approach the full 64-bit range.
func ConvertToBasisPoints(scaled uint64) uint64 {
	num := new(big.Int).Mul(new(big.Int).SetUint64(scaled), big.NewInt(BpOne))
	num.Quo(num, bigExpOne)
	if !num.IsUint64() {
		return maxUint64Val()
	}
	return num.Uint64()
}

func maxUint64Val() uint64 { return ^uint64(0) }

// Shared scaling factor for the Padé approximation, 84 * 10^27.
var padeScale = func() *big.Int {
	v := new(big.Int).SetInt64(84)
	v.Mul(v, pow10(27))
	return v
}()

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

var (
	nine000         = big.NewInt(9_000)
	twoE11          = new(big.Int).Mul(big.NewInt(2), pow10(11))
	oneE11          = pow10(11)
	oneE9           = pow10(9)
	fourPointTwoE16 = new(big.Int).Mul(big.NewInt(42), pow10(15))
)

// Exponent computes e^x for x scaled by EXP_ONE, returning a value also
// scaled by EXP_ONE and truncated to 64 bits. Uses the rational (4,4) Padé
// approximation:
//
//	e(x) ≈ (1 + x/2 + 3x²/28 + x³/84 + x⁴/1680) / (1 − x/2 + 3x²/28 − x³/84 + x⁴/1680)
//
// The approximation is only monotonic up to x ≈ 6.1e12 (e^6.1 ≈ 196.7);
// callers must not feed larger arguments.
func Exponent(x *big.Int) uint64 {
	x2 := new(big.Int).Mul(x, x)

	term9000 := new(big.Int).Mul(nine000, x2)

	half := new(big.Int).Quo(x2, twoE11)
	quarter := new(big.Int).Quo(x2, oneE11)
	termA := new(big.Int).Mul(half, quarter)

	addTerms := new(big.Int).Add(padeScale, term9000)
	addTerms.Add(addTerms, termA)

	inner := new(big.Int).Quo(x2, oneE9)
	inner.Add(inner, fourPointTwoE16)
	diffTerms := new(big.Int).Mul(x, inner)

	numerator := new(big.Int).Add(addTerms, diffTerms)
	numerator.Mul(numerator, bigExpOne)
	denominator := new(big.Int).Sub(addTerms, diffTerms)

	result := new(big.Int).Quo(numerator, denominator)
	result.And(result, maxUint64)
	return result.Uint64()
}

// GetContinuousIndex returns e^{yearlyRateScaled * seconds / SECONDS_PER_YEAR}.
func GetContinuousIndex(yearlyRateScaled uint64, seconds uint32) uint64 {
	arg := new(big.Int).SetUint64(yearlyRateScaled)
	arg.Mul(arg, big.NewInt(int64(seconds)))
	arg.Quo(arg, big.NewInt(SecondsPerYear))
	return Exponent(arg)
}
