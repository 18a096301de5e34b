// Package types holds the wire-format JSON types the yield token service
// exposes over HTTP and prints from the CLI. Every amount and index field
// crossing the wire is a decimal string, never a JSON number, so that
// clients never round a 128-bit or 256-bit value through float64; the
// 32-bit basis-point rate is a plain JSON integer.
package types

import "time"

// IndexResponse describes the current continuous index and the rate it is
// advancing under.
type IndexResponse struct {
	RegistrarID string    `json:"registrar_id"`
	Index       string    `json:"index"`
	RateBP      uint32    `json:"rate_bp"`
	AsOf        time.Time `json:"as_of"`
}

// SupplyResponse breaks total supply into the earning and non-earning
// cohorts, per the accounting closure invariant.
type SupplyResponse struct {
	RegistrarID       string    `json:"registrar_id"`
	TotalSupply       string    `json:"total_supply"`
	NonEarningSupply  string    `json:"non_earning_supply"`
	EarningSupply     string    `json:"earning_supply"`
	EarningPrincipal  string    `json:"earning_principal"`
	Index             string    `json:"index"`
	AsOf              time.Time `json:"as_of"`
}

// AccountResponse reports a single holder's balance and, if earning, its
// principal and last-claim index.
type AccountResponse struct {
	Address        string  `json:"address"`
	Earning        bool    `json:"earning"`
	Balance        string  `json:"balance"`
	Principal      *string `json:"principal,omitempty"`
	LastClaimIndex *string `json:"last_claim_index,omitempty"`
}

// ErrorResponse is the JSON body returned alongside non-2xx statuses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Address string `json:"address,omitempty"`
}
