// Package registrar adapts the read-only registrar collaborator: a
// key/value configuration store the token consults for the earner-rate
// cap, the base minter rate, and earner approval. It follows the same
// HTTP-GET-and-decode shape as an LCD-style client, since it talks to an
// external service the token core has no write access to.
package registrar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	// KeyMaxEarnerRate is the registrar key for the earner rate cap, in bp.
	KeyMaxEarnerRate = "max_earner_rate"
	// KeyBaseMinterRate is the registrar key for the base minter rate, in bp.
	KeyBaseMinterRate = "base_minter_rate"

	defaultMaxEarnerRate  = 1000
	defaultBaseMinterRate = 500
)

// Client reads registrar key/value pairs and the approved-earner list over
// HTTP from a Cosmos-style LCD-shaped REST API.
type Client struct {
	base   string
	client *http.Client
}

// New creates a Client against base, trimming any trailing slash.
func New(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: strings.TrimRight(base, "/"), client: httpClient}
}

// GetUint32 fetches a single registrar key and parses it as a bp value,
// falling back to def when the key is absent. A key present but not a
// valid uint32 reads as zero rather than failing the request.
func (c *Client) GetUint32(ctx context.Context, key string, def uint32) (uint32, error) {
	u := c.base + "/registrar/v1/values/" + url.PathEscape(key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return def, nil
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("registrar get %s: %s", key, string(b))
	}

	var out struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}
	if out.Value == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(out.Value, 10, 32)
	if err != nil {
		return 0, nil
	}
	return uint32(v), nil
}

// MaxEarnerRate reads KeyMaxEarnerRate, defaulting to 10% APY in bp.
func (c *Client) MaxEarnerRate(ctx context.Context) (uint32, error) {
	return c.GetUint32(ctx, KeyMaxEarnerRate, defaultMaxEarnerRate)
}

// BaseMinterRate reads KeyBaseMinterRate, defaulting to 5% APY in bp.
func (c *Client) BaseMinterRate(ctx context.Context) (uint32, error) {
	return c.GetUint32(ctx, KeyBaseMinterRate, defaultBaseMinterRate)
}

// IsApprovedEarner checks the approved-earner set membership for address.
func (c *Client) IsApprovedEarner(ctx context.Context, address string) (bool, error) {
	u := c.base + "/registrar/v1/earners/" + url.PathEscape(address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("registrar earner %s: %s", address, string(b))
	}
	var out struct {
		Approved bool `json:"approved"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, err
	}
	return out.Approved, nil
}

// ApprovedEarnerFunc adapts IsApprovedEarner to the predicate signature the
// token package's StartEarning/StopEarning gating expects. Network errors
// are treated as "not approved", which is the fail-safe direction for a
// permissioned enrollment gate.
func (c *Client) ApprovedEarnerFunc() func(address string) bool {
	return func(address string) bool {
		ok, err := c.IsApprovedEarner(context.Background(), address)
		if err != nil {
			return false
		}
		return ok
	}
}
