// Package indexing implements ContinuousIndexing, the time-varying index
// accumulator. It is the single piece of mutable state a token's yield
// accrual is defined against.
package indexing

import (
	"errors"
	"math/big"

	"github.com/lumera-labs/yieldtoken/internal/fixedmath"
)

// ErrNegativeTimeElapsed is a fatal caller-contract violation: now must
// never precede the last recorded update timestamp.
var ErrNegativeTimeElapsed = errors.New("indexing: negative time elapsed")

// InitialIndex is the starting value of latest_index, EXP_ONE.
func InitialIndex() *big.Int { return big.NewInt(fixedmath.ExpOne) }

// ContinuousIndexing is the (index, rate, timestamp) triple. It is not
// safe for concurrent use; the token layer above serializes access.
type ContinuousIndexing struct {
	latestIndex           *big.Int
	latestRate            uint32
	latestUpdateTimestamp int64
}

// New creates the accumulator with index=EXP_ONE, rate=0, timestamp=now.
func New(now int64) *ContinuousIndexing {
	return &ContinuousIndexing{
		latestIndex:           InitialIndex(),
		latestRate:            0,
		latestUpdateTimestamp: now,
	}
}

// LatestIndex returns the last committed index, uncorrected for elapsed time.
func (c *ContinuousIndexing) LatestIndex() *big.Int { return new(big.Int).Set(c.latestIndex) }

// LatestRate returns the last committed rate in basis points.
func (c *ContinuousIndexing) LatestRate() uint32 { return c.latestRate }

// LatestUpdateTimestamp returns the last committed update time.
func (c *ContinuousIndexing) LatestUpdateTimestamp() int64 { return c.latestUpdateTimestamp }

// CurrentIndex projects the index forward to now without committing state,
// used by read-only balance queries.
func (c *ContinuousIndexing) CurrentIndex(now int64) (*big.Int, error) {
	return CalculateCurrentIndex(c.latestIndex, c.latestRate, c.latestUpdateTimestamp, now)
}

// Update advances the index to now under new_rate and commits the result.
// Idempotent when now and new_rate both match the last commit.
func (c *ContinuousIndexing) Update(newRate uint32, now int64) (*big.Int, error) {
	if now == c.latestUpdateTimestamp && newRate == c.latestRate {
		return c.LatestIndex(), nil
	}
	newIndex, err := CalculateCurrentIndex(c.latestIndex, c.latestRate, c.latestUpdateTimestamp, now)
	if err != nil {
		return nil, err
	}
	c.latestIndex = newIndex
	c.latestRate = newRate
	c.latestUpdateTimestamp = now
	return new(big.Int).Set(newIndex), nil
}

// CalculateCurrentIndex advances i0 at rate r (bp) from t0 to t1 and caps
// the result at 2^128-1.
func CalculateCurrentIndex(i0 *big.Int, r uint32, t0, t1 int64) (*big.Int, error) {
	if t1 < t0 {
		return nil, ErrNegativeTimeElapsed
	}
	dt := t1 - t0
	if dt == 0 {
		return new(big.Int).Set(i0), nil
	}
	rScaled := fixedmath.ConvertFromBasisPoints(r)
	delta := fixedmath.GetContinuousIndex(rScaled, uint32(dt))
	newIndex := fixedmath.MultiplyIndicesDown(i0, delta)
	if cap := fixedmath.MaxUint128(); newIndex.Cmp(cap) > 0 {
		return cap, nil
	}
	return newIndex, nil
}

// PrincipalFromPresentDown rounds principal down, favoring the protocol on
// mints and deposits.
func PrincipalFromPresentDown(present, index *big.Int) (*big.Int, error) {
	return fixedmath.DivideDown(present, index)
}

// PrincipalFromPresentUp rounds principal up, favoring the protocol on
// burns and withdrawals.
func PrincipalFromPresentUp(present, index *big.Int) (*big.Int, error) {
	return fixedmath.DivideUp(present, index)
}

// PresentFromPrincipalDown is the only present-from-principal direction the
// spec requires; it is used whenever present value is read or paid out.
func PresentFromPrincipalDown(principal, index *big.Int) *big.Int {
	return fixedmath.MultiplyDown(principal, index)
}
