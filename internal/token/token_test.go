package token

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allowAll(string) bool { return true }
func denyAll(string) bool  { return false }

func TestMintToNonEarnerIncreasesNonEarningSupply(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	require.NoError(t, s.Mint("alice", big.NewInt(1_000), 0))
	assert.Equal(t, big.NewInt(1_000), s.TotalNonEarningSupply())
}

func TestMintRejectsZeroAmountAndZeroAddress(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	err := s.Mint("alice", big.NewInt(0), 0)
	assert.ErrorIs(t, err, ErrCode(CodeInsufficientAmount))

	err = s.Mint("", big.NewInt(1), 0)
	assert.ErrorIs(t, err, ErrCode(CodeInvalidRecipient))
}

func TestBurnRejectsInsufficientBalance(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	require.NoError(t, s.Mint("alice", big.NewInt(100), 0))
	err := s.Burn("alice", big.NewInt(200), 0)
	assert.ErrorIs(t, err, ErrCode(CodeInsufficientBalance))
}

func TestStartEarningConvertsNonEarningToPrincipal(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	require.NoError(t, s.Mint("alice", big.NewInt(1_000_000), 0))
	require.NoError(t, s.StartEarning("alice", big.NewInt(1_000_000), 0))

	assert.True(t, s.IsEarning("alice"))
	assert.Equal(t, big.NewInt(0).String(), s.TotalNonEarningSupply().String())
	assert.True(t, s.PrincipalOfTotalEarningSupply().Sign() > 0)
}

func TestStartEarningRejectsUnapprovedAddress(t *testing.T) {
	s := New("r1", 0, denyAll, nil)
	err := s.StartEarning("alice", big.NewInt(100), 0)
	assert.ErrorIs(t, err, ErrCode(CodeNotApprovedEarner))
}

func TestStartEarningIsNoOpWhenAlreadyEarning(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	require.NoError(t, s.Mint("alice", big.NewInt(1_000), 0))
	require.NoError(t, s.StartEarning("alice", big.NewInt(1_000), 0))
	principalBefore := s.PrincipalBalance("alice")

	require.NoError(t, s.StartEarning("alice", big.NewInt(1_000), 1_000))
	assert.Equal(t, principalBefore, s.PrincipalBalance("alice"))
}

func TestStopEarningIsNoOpWhenNotEarning(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	present, principal, err := s.StopEarning("nobody", 0)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0), present)
	assert.Equal(t, big.NewInt(0), principal)
}

func TestStopEarningRejectsStillApprovedEarner(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	require.NoError(t, s.Mint("alice", big.NewInt(1_000), 0))
	require.NoError(t, s.StartEarning("alice", big.NewInt(1_000), 0))

	_, _, err := s.StopEarning("alice", 1_000)
	assert.ErrorIs(t, err, ErrCode(CodeIsApprovedEarner))
}

func TestStopEarningRoundTripDoesNotManufactureValue(t *testing.T) {
	s := New("r1", 0, denyAll, nil)
	// Enroll alice manually via StartEarning with a permissive predicate,
	// then switch to a denying one to exercise the exit path.
	s.approvedEarner = allowAll
	require.NoError(t, s.Mint("alice", big.NewInt(1_000_000), 0))
	require.NoError(t, s.StartEarning("alice", big.NewInt(1_000_000), 0))
	s.approvedEarner = denyAll

	present, _, err := s.StopEarning("alice", 0)
	require.NoError(t, err)
	assert.True(t, present.Cmp(big.NewInt(1_000_000)) <= 0)
	assert.False(t, s.IsEarning("alice"))
}

func TestTransferBetweenNonEarnersIsANoOpOnCoreState(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	require.NoError(t, s.Mint("alice", big.NewInt(1_000), 0))
	require.NoError(t, s.Transfer("alice", "bob", big.NewInt(1_000), 0))
	// Non-earning balances live outside token.State; only totals matter here.
	assert.Equal(t, big.NewInt(1_000), s.TotalNonEarningSupply())
}

func TestTransferFromEarningToNonEarningMovesPrincipalToNonEarning(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	require.NoError(t, s.Mint("alice", big.NewInt(1_000_000), 0))
	require.NoError(t, s.StartEarning("alice", big.NewInt(1_000_000), 0))

	err := s.Transfer("alice", "bob", big.NewInt(500_000), 1_000)
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(500_000), s.TotalNonEarningSupply())
}

func TestTransferFromNonEarningToEarningMovesNonEarningToPrincipal(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	require.NoError(t, s.Mint("bob", big.NewInt(1_000_000), 0))
	require.NoError(t, s.StartEarning("alice", big.NewInt(0), 0))

	err := s.Transfer("bob", "alice", big.NewInt(1_000_000), 1_000)
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(0).String(), s.TotalNonEarningSupply().String())
	assert.True(t, s.PrincipalBalance("alice").Sign() > 0)
}

func TestTransferInsufficientBalanceFromEarner(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	require.NoError(t, s.Mint("alice", big.NewInt(100), 0))
	require.NoError(t, s.StartEarning("alice", big.NewInt(100), 0))

	err := s.Transfer("alice", "bob", big.NewInt(1_000_000), 0)
	assert.ErrorIs(t, err, ErrCode(CodeInsufficientBalance))
}

func TestClaimRealizesInterestWithoutTouchingPrincipal(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	require.NoError(t, s.Mint("alice", big.NewInt(1_000_000_000), 0))
	require.NoError(t, s.StartEarning("alice", big.NewInt(1_000_000_000), 0))
	principalAfterEnroll := s.PrincipalBalance("alice")

	_, err := s.UpdateIndexWithExternalRate(1_000, 0) // commit a 10% APY rate at t=0
	require.NoError(t, err)

	// Advance a full year at the 10% APY rate committed above.
	interest, err := s.Claim("alice", 31_536_000)
	require.NoError(t, err)

	assert.True(t, interest.Sign() > 0, "a year of positive rate must accrue positive interest")
	assert.Equal(t, principalAfterEnroll, s.PrincipalBalance("alice"), "claim must never change principal")

	idxAfterClaim, ok := s.LastClaimIndex("alice")
	require.True(t, ok)
	current, err := s.CurrentIndex(31_536_000)
	require.NoError(t, err)
	assert.Equal(t, current.String(), idxAfterClaim.String(), "claim must advance last_claim_index to the current index")
}

func TestLastClaimIndexAbsentForNonEarner(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	_, ok := s.LastClaimIndex("nobody")
	assert.False(t, ok)
}

type countingObserver struct {
	ops    []string
	errors []string
}

func (c *countingObserver) ObserveOp(op, errCode string) {
	c.ops = append(c.ops, op)
	if errCode != "" {
		c.errors = append(c.errors, errCode)
	}
}

func TestSetObserverReceivesOneCallPerOperation(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	obs := &countingObserver{}
	s.SetObserver(obs)

	require.NoError(t, s.Mint("alice", big.NewInt(1_000), 0))
	err := s.Mint("alice", big.NewInt(0), 0)
	assert.Error(t, err)

	assert.Equal(t, []string{"mint", "mint"}, obs.ops)
	assert.Equal(t, []string{string(CodeInsufficientAmount)}, obs.errors)
}

func TestAccountingClosureAcrossOperations(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	require.NoError(t, s.Mint("alice", big.NewInt(10_000_000), 0))
	require.NoError(t, s.Mint("bob", big.NewInt(5_000_000), 0))
	require.NoError(t, s.StartEarning("alice", big.NewInt(10_000_000), 0))

	_, err := s.UpdateIndexWithExternalRate(2_000, 1_000)
	require.NoError(t, err)

	require.NoError(t, s.Transfer("alice", "bob", big.NewInt(1_000_000), 2_000))
	require.NoError(t, s.Burn("bob", big.NewInt(500_000), 2_000))

	total, err := s.TotalSupply(2_000)
	require.NoError(t, err)
	earning, err := s.TotalEarningSupply(2_000)
	require.NoError(t, err)
	nonEarning := s.TotalNonEarningSupply()

	assert.Equal(t, total.String(), new(big.Int).Add(earning, nonEarning).String())

	sumPrincipal := s.SumPrincipal()
	assert.Equal(t, s.PrincipalOfTotalEarningSupply().String(), sumPrincipal.String())
}

func TestMintOverflowGuardOnEarningPrincipal(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	require.NoError(t, s.StartEarning("alice", big.NewInt(0), 0))

	huge := new(big.Int).Lsh(big.NewInt(1), 128) // one past the 128-bit envelope
	err := s.Mint("alice", huge, 0)
	assert.ErrorIs(t, err, ErrCode(CodeOverflowsPrincipalOfTotalSupply))
}

func TestFailedBurnDoesNotAdvanceIndexTimestamp(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	require.NoError(t, s.Mint("alice", big.NewInt(100), 0))
	require.NoError(t, s.StartEarning("alice", big.NewInt(100), 0))

	err := s.Burn("alice", big.NewInt(1_000), 500)
	assert.ErrorIs(t, err, ErrCode(CodeInsufficientBalance))
	assert.Equal(t, int64(0), s.indexing.LatestUpdateTimestamp(),
		"a rejected burn must not commit the index it only needed to read")

	// A later legitimate call at a timestamp between the account's
	// enrollment and the failed burn's now must still succeed: the failed
	// call must not have poisoned the non-decreasing-timestamp contract.
	require.NoError(t, s.Burn("alice", big.NewInt(10), 250))
}

func TestFailedTransferEarningToNonEarningDoesNotAdvanceIndexTimestamp(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	require.NoError(t, s.Mint("alice", big.NewInt(100), 0))
	require.NoError(t, s.StartEarning("alice", big.NewInt(100), 0))

	err := s.Transfer("alice", "bob", big.NewInt(1_000), 500)
	assert.ErrorIs(t, err, ErrCode(CodeInsufficientBalance))
	assert.Equal(t, int64(0), s.indexing.LatestUpdateTimestamp())

	require.NoError(t, s.Transfer("alice", "bob", big.NewInt(10), 250))
}

func TestFailedTransferNonEarningToEarningDoesNotAdvanceIndexTimestamp(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	require.NoError(t, s.StartEarning("alice", big.NewInt(0), 0))
	require.NoError(t, s.Mint("bob", big.NewInt(100), 0))

	err := s.Transfer("bob", "alice", big.NewInt(1_000), 500)
	assert.ErrorIs(t, err, ErrCode(CodeInsufficientBalance))
	assert.Equal(t, int64(0), s.indexing.LatestUpdateTimestamp())

	require.NoError(t, s.Transfer("bob", "alice", big.NewInt(10), 250))
}

func TestFailedStartEarningDoesNotAdvanceIndexTimestamp(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	require.NoError(t, s.Mint("alice", big.NewInt(100), 0))

	err := s.StartEarning("alice", big.NewInt(1_000), 500)
	assert.ErrorIs(t, err, ErrCode(CodeInsufficientBalance))
	assert.Equal(t, int64(0), s.indexing.LatestUpdateTimestamp())

	require.NoError(t, s.StartEarning("alice", big.NewInt(100), 250))
}

func TestFailedMintOverflowDoesNotAdvanceIndexTimestamp(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	require.NoError(t, s.StartEarning("alice", big.NewInt(0), 0))
	_, err := s.UpdateIndexWithExternalRate(1_000, 0)
	require.NoError(t, err)

	// 2^129: at t=500 the index is above 1.0, so 2^128 would convert to a
	// principal just under the envelope; 2^129 still overflows it.
	huge := new(big.Int).Lsh(big.NewInt(1), 129)
	err = s.Mint("alice", huge, 500)
	assert.ErrorIs(t, err, ErrCode(CodeOverflowsPrincipalOfTotalSupply))
	assert.Equal(t, int64(0), s.indexing.LatestUpdateTimestamp(),
		"a mint rejected on overflow must not have committed the index at the rejected now")

	require.NoError(t, s.Mint("alice", big.NewInt(1), 250))
}

func TestCheckRegistrar(t *testing.T) {
	s := New("r1", 0, allowAll, nil)
	assert.NoError(t, s.CheckRegistrar("r1"))
	assert.ErrorIs(t, s.CheckRegistrar("r2"), ErrCode(CodeInvalidRegistrar))
}
