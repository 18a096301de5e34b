// Package cache wraps the token core's read path in a TTL'd snapshot cache:
// recomputation is coalesced behind a short-lived snapshot, and each
// response carries a content hash callers can round-trip through
// If-None-Match. A bounded LRU caches individual account responses between
// snapshot refreshes.
package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lumera-labs/yieldtoken/internal/clock"
	"github.com/lumera-labs/yieldtoken/internal/token"
	"github.com/lumera-labs/yieldtoken/pkg/types"
)

const accountCacheSize = 4096

// Options configures a SnapshotCache.
type Options struct {
	TTL time.Duration
}

// SnapshotCache serves SupplyResponse/IndexResponse pairs computed from a
// token.State, refreshing at most once per TTL.
type SnapshotCache struct {
	mu    sync.RWMutex
	snap  *types.SupplyResponse
	index *types.IndexResponse
	etag  string
	ttl   time.Duration

	state  *token.State
	clock  clock.Source
	byAddr *lru.Cache[string, *types.AccountResponse]
}

// New creates a SnapshotCache over state, using clockSrc for "as of" and
// refresh-age tracking.
func New(state *token.State, clockSrc clock.Source, opt Options) *SnapshotCache {
	if opt.TTL <= 0 {
		opt.TTL = 5 * time.Second
	}
	byAddr, _ := lru.New[string, *types.AccountResponse](accountCacheSize)
	return &SnapshotCache{
		ttl:    opt.TTL,
		state:  state,
		clock:  clockSrc,
		byAddr: byAddr,
	}
}

// Get returns the last computed snapshot and whether it is still fresh.
func (c *SnapshotCache) Get() (*types.SupplyResponse, *types.IndexResponse, string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snap == nil {
		return nil, nil, "", false
	}
	fresh := time.Unix(c.clock.Now(), 0).Sub(c.snap.AsOf) <= c.ttl
	return c.snap, c.index, c.etag, fresh
}

// Refresh recomputes the snapshot from the underlying token state and
// invalidates the per-account cache, since every account's present value
// depends on the same index.
func (c *SnapshotCache) Refresh() (*types.SupplyResponse, *types.IndexResponse, error) {
	now := c.clock.Now()

	idx, err := c.state.CurrentIndex(now)
	if err != nil {
		return nil, nil, err
	}
	total, err := c.state.TotalSupply(now)
	if err != nil {
		return nil, nil, err
	}
	earning, err := c.state.TotalEarningSupply(now)
	if err != nil {
		return nil, nil, err
	}

	asOf := time.Unix(now, 0).UTC()
	nonEarning := c.state.TotalNonEarningSupply()
	principal := c.state.PrincipalOfTotalEarningSupply()

	supply := &types.SupplyResponse{
		RegistrarID:      c.state.RegistrarID,
		TotalSupply:      total.String(),
		NonEarningSupply: nonEarning.String(),
		EarningSupply:    earning.String(),
		EarningPrincipal: principal.String(),
		Index:            idx.String(),
		AsOf:             asOf,
	}
	indexResp := &types.IndexResponse{
		RegistrarID: c.state.RegistrarID,
		Index:       idx.String(),
		RateBP:      c.state.LatestRate(),
		AsOf:        asOf,
	}

	etag := computeETag(c.state.RegistrarID, supply.TotalSupply, supply.Index)

	c.mu.Lock()
	c.snap = supply
	c.index = indexResp
	c.etag = etag
	c.byAddr.Purge()
	c.mu.Unlock()

	return supply, indexResp, nil
}

// Account returns the cached AccountResponse for addr, computing it from
// the token state at the clock's current time and caching it if absent.
// Cached entries are dropped on the next Refresh.
func (c *SnapshotCache) Account(addr string) (*types.AccountResponse, error) {
	if v, ok := c.byAddr.Get(addr); ok {
		return v, nil
	}

	now := c.clock.Now()
	earning := c.state.IsEarning(addr)

	balance, err := c.state.Balance(addr, now)
	if err != nil {
		return nil, err
	}

	var resp *types.AccountResponse
	if earning {
		lastClaim, _ := c.state.LastClaimIndex(addr)
		principalStr := c.state.PrincipalBalance(addr).String()
		lastClaimStr := lastClaim.String()
		resp = &types.AccountResponse{
			Address:        addr,
			Earning:        true,
			Balance:        balance.String(),
			Principal:      &principalStr,
			LastClaimIndex: &lastClaimStr,
		}
	} else {
		resp = &types.AccountResponse{
			Address: addr,
			Earning: false,
			Balance: balance.String(),
		}
	}

	c.byAddr.Add(addr, resp)
	return resp, nil
}

func computeETag(registrarID, total, index string) string {
	h := sha1.New()
	h.Write([]byte(registrarID))
	h.Write([]byte{0})
	h.Write([]byte(total))
	h.Write([]byte{0})
	h.Write([]byte(index))
	return hex.EncodeToString(h.Sum(nil))
}
