// Package wadln computes the natural logarithm of a positive wad-scaled
// (10^18) unsigned quantity, returning a signed wad-scaled result.
package wadln

import (
	"errors"
	"math/big"
	"sort"
)

const (
	wad       = 1_000_000_000_000_000_000
	tenWad    = 10 * wad
	threshold = wad / 1000 // 0.001 * WAD
)

// ErrInputNotPositive is returned when Ln is called with a zero input.
var ErrInputNotPositive = errors.New("wadln: input not positive")

var (
	bigWad       = big.NewInt(wad)
	bigTenWad    = new(big.Int).Mul(big.NewInt(10), bigWad)
	bigThreshold = big.NewInt(threshold)
	ln10Wad      = big.NewInt(2_302_585_092_994_046_000) // ln(10) in wad
	ln0001Abs    = big.NewInt(6_907_755_278_982_137_000) // |ln(0.001)| in wad
	thousand     = big.NewInt(1000)
)

// Ln returns the signed wad-scaled natural log of x (also wad-scaled).
//
// Branches:
//   - x == 0: ErrInputNotPositive.
//   - x >= 10*WAD: ln(x) = ln(10) + ln(x/10) (tail recursion).
//   - x < 0.001*WAD: ln(x) = ln(0.001) + ln(x/0.001) (head recursion),
//     the reciprocal-symmetric counterpart of the tail case.
//   - otherwise: linear interpolation over the precomputed monotone table.
func Ln(x *big.Int) (*big.Int, error) {
	if x.Sign() <= 0 {
		return nil, ErrInputNotPositive
	}
	return lnRec(x)
}

func lnRec(x *big.Int) (*big.Int, error) {
	if x.Cmp(bigTenWad) >= 0 {
		xDiv10 := new(big.Int).Quo(x, big.NewInt(10))
		rest, err := lnRec(xDiv10)
		if err != nil {
			return nil, err
		}
		return new(big.Int).Add(ln10Wad, rest), nil
	}
	if x.Cmp(bigThreshold) < 0 {
		// arg = x / 0.001, wad-scaled: (x * WAD) / thresholdWad == x * 1000.
		arg := new(big.Int).Mul(x, thousand)
		rest, err := lnRec(arg)
		if err != nil {
			return nil, err
		}
		neg0001 := new(big.Int).Neg(ln0001Abs)
		return new(big.Int).Add(neg0001, rest), nil
	}
	return interpolate(x), nil
}

// interpolate performs the table lookup and linear interpolation for
// x in [threshold, 10*WAD).
func interpolate(x *big.Int) *big.Int {
	xu := x.Uint64()

	n := len(table)
	// Find i such that table[i].x <= xu <= table[i+1].x.
	i := sort.Search(n, func(i int) bool { return table[i].x >= xu })
	var lo, hi tableEntry
	switch {
	case i == 0:
		lo, hi = table[0], table[0]
	case i >= n:
		lo, hi = table[n-1], table[n-1]
	case table[i].x == xu:
		lo, hi = table[i], table[i]
	default:
		lo, hi = table[i-1], table[i]
	}

	var absLn *big.Int
	if lo.x == hi.x {
		absLn = new(big.Int).SetUint64(lo.ln)
	} else {
		x1 := new(big.Int).SetUint64(lo.x)
		x2 := new(big.Int).SetUint64(hi.x)
		y1 := new(big.Int).SetUint64(lo.ln)
		y2 := new(big.Int).SetUint64(hi.ln)
		dx := new(big.Int).Sub(x, x1)
		if y2.Cmp(y1) >= 0 {
			num := new(big.Int).Mul(dx, new(big.Int).Sub(y2, y1))
			den := new(big.Int).Sub(x2, x1)
			absLn = new(big.Int).Add(y1, num.Quo(num, den))
		} else {
			num := new(big.Int).Mul(dx, new(big.Int).Sub(y1, y2))
			den := new(big.Int).Sub(x2, x1)
			absLn = new(big.Int).Sub(y1, num.Quo(num, den))
			if absLn.Sign() < 0 {
				absLn.SetInt64(0)
			}
		}
	}

	if x.Cmp(bigWad) < 0 {
		return absLn.Neg(absLn)
	}
	return absLn
}
