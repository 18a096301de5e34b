// Package gateway adapts the read-only minter-gateway collaborator: the
// source of truth for the current minter rate and the total amount
// minters currently owe. Same HTTP-GET-and-decode shape as the registrar
// client.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
)

// Client reads minter-side figures over HTTP.
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

// MinterRate returns the gateway's current minter rate in basis points.
func (c *Client) MinterRate(ctx context.Context) (uint32, error) {
	u := c.base + "/minter-gateway/v1/rate"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("gateway rate: %s", string(b))
	}
	var out struct {
		RateBP uint32 `json:"rate_bp"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}
	return out.RateBP, nil
}

// TotalActiveOwed returns the total principal minters currently owe,
// present-valued at the gateway's own index, as a *big.Int.
func (c *Client) TotalActiveOwed(ctx context.Context) (*big.Int, error) {
	u := c.base + "/minter-gateway/v1/total-active-owed"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gateway total active owed: %s", string(b))
	}
	var out struct {
		Amount string `json:"amount"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	v, ok := new(big.Int).SetString(out.Amount, 10)
	if !ok {
		return nil, fmt.Errorf("gateway total active owed: malformed amount %q", out.Amount)
	}
	return v, nil
}
