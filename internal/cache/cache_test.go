package cache

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumera-labs/yieldtoken/internal/clock"
	"github.com/lumera-labs/yieldtoken/internal/token"
)

func allowAll(string) bool { return true }

func TestAccountReportsRealLastClaimIndexNotCurrentIndex(t *testing.T) {
	s := token.New("r1", 0, allowAll, nil)
	require.NoError(t, s.Mint("alice", big.NewInt(1_000_000_000), 0))
	require.NoError(t, s.StartEarning("alice", big.NewInt(1_000_000_000), 0))
	indexAtEnroll, err := s.CurrentIndex(0)
	require.NoError(t, err)

	_, err = s.UpdateIndexWithExternalRate(1_000, 0)
	require.NoError(t, err)

	clk := clock.NewFake(31_536_000) // a year later; alice never calls Claim again
	c := New(s, clk, Options{})

	resp, err := c.Account("alice")
	require.NoError(t, err)
	require.NotNil(t, resp.LastClaimIndex)

	assert.Equal(t, indexAtEnroll.String(), *resp.LastClaimIndex,
		"last_claim_index must reflect the account's own last Claim, not a freshly projected current index")

	currentIndex, err := s.CurrentIndex(31_536_000)
	require.NoError(t, err)
	assert.NotEqual(t, currentIndex.String(), *resp.LastClaimIndex,
		"a year of accrual with no Claim call must leave last_claim_index stale relative to the current index")
}

func TestAccountOmitsPrincipalAndLastClaimForNonEarner(t *testing.T) {
	s := token.New("r1", 0, allowAll, nil)
	require.NoError(t, s.Mint("bob", big.NewInt(500), 0))

	clk := clock.NewFake(0)
	c := New(s, clk, Options{})

	resp, err := c.Account("bob")
	require.NoError(t, err)
	assert.False(t, resp.Earning)
	assert.Nil(t, resp.Principal)
	assert.Nil(t, resp.LastClaimIndex)
	// token.State keeps no per-address non-earning balances, so a
	// non-earner's balance reads as zero.
	assert.Equal(t, "0", resp.Balance)
}

func TestRefreshPurgesAccountCache(t *testing.T) {
	s := token.New("r1", 0, allowAll, nil)
	require.NoError(t, s.Mint("alice", big.NewInt(1_000_000_000), 0))
	require.NoError(t, s.StartEarning("alice", big.NewInt(1_000_000_000), 0))
	require.NoError(t, s.Mint("carol", big.NewInt(1), 0))

	clk := clock.NewFake(0)
	c := New(s, clk, Options{})

	_, err := c.Account("alice")
	require.NoError(t, err)

	_, err = s.UpdateIndexWithExternalRate(1_000, 0)
	require.NoError(t, err)
	clk.Set(31_536_000)

	_, _, err = c.Refresh()
	require.NoError(t, err)

	resp, err := c.Account("alice")
	require.NoError(t, err)

	expectedBalance, err := s.Balance("alice", 31_536_000)
	require.NoError(t, err)
	assert.Equal(t, expectedBalance.String(), resp.Balance,
		"a stale cached account response must not survive a snapshot refresh")
}
