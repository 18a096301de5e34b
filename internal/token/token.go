// Package token implements the earning/non-earning accounting layer:
// mint, burn, transfer, start-earning, stop-earning, and claim, all
// expressed against a ContinuousIndexing accumulator so that present
// value grows continuously for the earning cohort without ever rebasing
// an individual balance.
package token

import (
	"math/big"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lumera-labs/yieldtoken/internal/fixedmath"
	"github.com/lumera-labs/yieldtoken/internal/indexing"
)

const zeroAddress = ""

const presentCacheSize = 512

// EarningAccount is the per-holder state for the earning cohort.
type EarningAccount struct {
	Principal      *big.Int
	LastClaimIndex *big.Int
}

// ApprovedEarnerFunc gates start/stop-earning transitions. It is optional;
// a nil predicate makes both transitions unconditionally available.
type ApprovedEarnerFunc func(address string) bool

// State is the aggregate token state: the earning/non-earning supply
// totals plus the per-earner principal table. It holds no per-address
// non-earning balances — those live in the host ledger's coin objects.
type State struct {
	RegistrarID string

	totalNonEarningSupply         *big.Int
	principalOfTotalEarningSupply *big.Int
	indexing                      *indexing.ContinuousIndexing
	earning                       map[string]*EarningAccount

	approvedEarner ApprovedEarnerFunc
	events         EventSink
	observer       OpObserver
	presentCache   *lru.Cache[string, *big.Int]
}

// New creates an empty TokenState bound to registrarID, with the index
// initialized at EXP_ONE (1.0 in the index's fixed-point scale).
func New(registrarID string, now int64, approved ApprovedEarnerFunc, events EventSink) *State {
	cache, _ := lru.New[string, *big.Int](presentCacheSize)
	if events == nil {
		events = NopEventSink{}
	}
	return &State{
		RegistrarID:                   registrarID,
		totalNonEarningSupply:         big.NewInt(0),
		principalOfTotalEarningSupply: big.NewInt(0),
		indexing:                      indexing.New(now),
		earning:                       make(map[string]*EarningAccount),
		approvedEarner:                approved,
		events:                        events,
		observer:                      nopObserver{},
		presentCache:                  cache,
	}
}

// SetObserver wires an OpObserver (typically *metrics.Registry) to receive
// one call per accounting operation. A nil observer restores the no-op.
func (s *State) SetObserver(o OpObserver) {
	if o == nil {
		o = nopObserver{}
	}
	s.observer = o
}

// observe reports op's outcome to the wired OpObserver.
func (s *State) observe(op string, err error) {
	code := ""
	if err != nil {
		if te, ok := err.(*Error); ok {
			code = string(te.Code)
		} else {
			code = "unknown"
		}
	}
	s.observer.ObserveOp(op, code)
}

// CheckRegistrar validates the registrar id an external caller presents
// against the one this token instance was constructed with.
func (s *State) CheckRegistrar(id string) error {
	if id != s.RegistrarID {
		return &Error{Code: CodeInvalidRegistrar}
	}
	return nil
}

// PrincipalBalance is a table lookup; zero for absent addresses.
func (s *State) PrincipalBalance(addr string) *big.Int {
	if a, ok := s.earning[addr]; ok {
		return new(big.Int).Set(a.Principal)
	}
	return big.NewInt(0)
}

// IsEarning reports table membership.
func (s *State) IsEarning(addr string) bool {
	_, ok := s.earning[addr]
	return ok
}

// LastClaimIndex returns the index value at which addr last realized
// interest via Claim, and whether addr is an earning account at all.
func (s *State) LastClaimIndex(addr string) (*big.Int, bool) {
	a, ok := s.earning[addr]
	if !ok {
		return nil, false
	}
	return new(big.Int).Set(a.LastClaimIndex), true
}

// TotalNonEarningSupply returns the stored non-earning total.
func (s *State) TotalNonEarningSupply() *big.Int {
	return new(big.Int).Set(s.totalNonEarningSupply)
}

// PrincipalOfTotalEarningSupply returns the sum of earning principals.
func (s *State) PrincipalOfTotalEarningSupply() *big.Int {
	return new(big.Int).Set(s.principalOfTotalEarningSupply)
}

// CurrentIndex projects the index to now without mutating state.
func (s *State) CurrentIndex(now int64) (*big.Int, error) {
	return s.indexing.CurrentIndex(now)
}

// LatestRate returns the last committed rate in basis points.
func (s *State) LatestRate() uint32 { return s.indexing.LatestRate() }

// TotalEarningSupply is present_from_principal_down(principal total, index(now)).
func (s *State) TotalEarningSupply(now int64) (*big.Int, error) {
	idx, err := s.CurrentIndex(now)
	if err != nil {
		return nil, err
	}
	return s.presentFromPrincipalDownCached(s.principalOfTotalEarningSupply, idx), nil
}

// Balance returns addr's present-value balance: principal converted
// through the current index for earners, and zero for non-earners, whose
// individual balances State does not track. This never mutates state.
func (s *State) Balance(addr string, now int64) (*big.Int, error) {
	account, ok := s.earning[addr]
	if !ok {
		return big.NewInt(0), nil
	}
	idx, err := s.CurrentIndex(now)
	if err != nil {
		return nil, err
	}
	return s.presentFromPrincipalDownCached(account.Principal, idx), nil
}

// TotalSupply is the sum of the non-earning and earning totals.
func (s *State) TotalSupply(now int64) (*big.Int, error) {
	earning, err := s.TotalEarningSupply(now)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Add(s.totalNonEarningSupply, earning), nil
}

// UpdateIndexWithExternalRate is the host-driven index advance: the token
// never computes its own rate, to avoid a circular dependency on the
// current supply it would need to derive that rate. It only accepts a
// rate from the caller.
func (s *State) UpdateIndexWithExternalRate(newRate uint32, now int64) (*big.Int, error) {
	idx, err := s.indexing.Update(newRate, now)
	if err != nil {
		return nil, translateIndexingError(err)
	}
	s.events.IndexUpdated(idx, newRate)
	return idx, nil
}

// updateIndex advances the index to now at the currently committed rate,
// used internally by accounting operations that must observe a fresh
// index before converting present/principal amounts.
func (s *State) updateIndex(now int64) (*big.Int, error) {
	idx, err := s.indexing.Update(s.indexing.LatestRate(), now)
	if err != nil {
		return nil, translateIndexingError(err)
	}
	s.events.IndexUpdated(idx, s.indexing.LatestRate())
	return idx, nil
}

func translateIndexingError(err error) error {
	if err == indexing.ErrNegativeTimeElapsed {
		return &Error{Code: CodeNegativeTimeElapsed}
	}
	return err
}

func (s *State) presentFromPrincipalDownCached(principal, index *big.Int) *big.Int {
	key := principal.String() + ":" + index.String()
	if v, ok := s.presentCache.Get(key); ok {
		return new(big.Int).Set(v)
	}
	v := indexing.PresentFromPrincipalDown(principal, index)
	s.presentCache.Add(key, new(big.Int).Set(v))
	return v
}

// Mint credits to with present_amount present-value tokens.
func (s *State) Mint(to string, present *big.Int, now int64) (err error) {
	defer func() { s.observe("mint", err) }()

	if present.Sign() == 0 {
		return &Error{Code: CodeInsufficientAmount}
	}
	if to == zeroAddress {
		return &Error{Code: CodeInvalidRecipient}
	}

	// Project the index read-only and validate everything that can fail
	// before committing anything, so a rejected mint never leaves a
	// mutated ContinuousIndexing timestamp behind.
	var idx *big.Int
	if len(s.earning) > 0 {
		idx, err = s.CurrentIndex(now)
		if err != nil {
			return err
		}
	}

	account, toEarning := s.earning[to]
	var principalToAdd, newEarningTotal, newNonEarningTotal *big.Int
	if toEarning {
		principalToAdd, err = indexing.PrincipalFromPresentDown(present, idx)
		if err != nil {
			return translateFixedmathError(err)
		}
		newEarningTotal = new(big.Int).Add(s.principalOfTotalEarningSupply, principalToAdd)
		if !fixedmath.FitsBits(newEarningTotal, 128) {
			return &Error{Code: CodeOverflowsPrincipalOfTotalSupply, Address: to}
		}
	} else {
		newNonEarningTotal = new(big.Int).Add(s.totalNonEarningSupply, present)
		if !fixedmath.FitsBits(newNonEarningTotal, 240) {
			return &Error{Code: CodeOverflowsPrincipalOfTotalSupply, Address: to}
		}
	}

	if len(s.earning) > 0 {
		if _, err = s.updateIndex(now); err != nil {
			return err
		}
	}

	if toEarning {
		account.Principal.Add(account.Principal, principalToAdd)
		s.principalOfTotalEarningSupply = newEarningTotal
	} else {
		s.totalNonEarningSupply = newNonEarningTotal
	}

	s.events.Transfer(zeroAddress, to, present)
	return nil
}

// Burn debits from present_amount present-value tokens.
func (s *State) Burn(from string, present *big.Int, now int64) (err error) {
	defer func() { s.observe("burn", err) }()

	if present.Sign() == 0 {
		return &Error{Code: CodeInsufficientAmount}
	}

	if account, ok := s.earning[from]; ok {
		// Validate against a read-only index projection first: committing
		// the index via updateIndex before this check would leave the
		// timestamp advanced even though the whole burn is about to abort.
		idx, err := s.CurrentIndex(now)
		if err != nil {
			return err
		}
		principalToRemove, err := indexing.PrincipalFromPresentUp(present, idx)
		if err != nil {
			return translateFixedmathError(err)
		}
		if account.Principal.Cmp(principalToRemove) < 0 {
			return &Error{Code: CodeInsufficientBalance, Address: from}
		}
		if _, err := s.updateIndex(now); err != nil {
			return err
		}
		account.Principal.Sub(account.Principal, principalToRemove)
		s.principalOfTotalEarningSupply.Sub(s.principalOfTotalEarningSupply, principalToRemove)
	} else {
		if s.totalNonEarningSupply.Cmp(present) < 0 {
			return &Error{Code: CodeInsufficientBalance, Address: from}
		}
		s.totalNonEarningSupply.Sub(s.totalNonEarningSupply, present)
	}

	s.events.Transfer(from, zeroAddress, present)
	return nil
}

// Transfer moves present-value tokens between two holders, converting
// through principal whenever either side is earning. Debits round up,
// credits round down, so the protocol always keeps the fractional
// remainder.
func (s *State) Transfer(from, to string, present *big.Int, now int64) (err error) {
	defer func() { s.observe("transfer", err) }()

	if present.Sign() == 0 {
		return &Error{Code: CodeInsufficientAmount}
	}
	if to == zeroAddress {
		return &Error{Code: CodeInvalidRecipient}
	}

	fromAccount, fromEarning := s.earning[from]
	toAccount, toEarning := s.earning[to]

	switch {
	case !fromEarning && !toEarning:
		// No core state to update; the ledger-level coin move happens
		// outside this package.

	case fromEarning && toEarning:
		idx, err := s.CurrentIndex(now)
		if err != nil {
			return err
		}
		principal, err := indexing.PrincipalFromPresentUp(present, idx)
		if err != nil {
			return translateFixedmathError(err)
		}
		if fromAccount.Principal.Cmp(principal) < 0 {
			return &Error{Code: CodeInsufficientBalance, Address: from}
		}
		fromAccount.Principal.Sub(fromAccount.Principal, principal)
		toAccount.Principal.Add(toAccount.Principal, principal)

	case fromEarning && !toEarning:
		// Validate against a read-only projection before committing the
		// index: an insufficient-balance abort must leave no trace.
		idx, err := s.CurrentIndex(now)
		if err != nil {
			return err
		}
		principal, err := indexing.PrincipalFromPresentUp(present, idx)
		if err != nil {
			return translateFixedmathError(err)
		}
		if fromAccount.Principal.Cmp(principal) < 0 {
			return &Error{Code: CodeInsufficientBalance, Address: from}
		}
		if _, err := s.updateIndex(now); err != nil {
			return err
		}
		fromAccount.Principal.Sub(fromAccount.Principal, principal)
		s.principalOfTotalEarningSupply.Sub(s.principalOfTotalEarningSupply, principal)
		s.totalNonEarningSupply.Add(s.totalNonEarningSupply, present)

	case !fromEarning && toEarning:
		idx, err := s.CurrentIndex(now)
		if err != nil {
			return err
		}
		if s.totalNonEarningSupply.Cmp(present) < 0 {
			return &Error{Code: CodeInsufficientBalance, Address: from}
		}
		principal, err := indexing.PrincipalFromPresentDown(present, idx)
		if err != nil {
			return translateFixedmathError(err)
		}
		if _, err := s.updateIndex(now); err != nil {
			return err
		}
		s.totalNonEarningSupply.Sub(s.totalNonEarningSupply, present)
		toAccount.Principal.Add(toAccount.Principal, principal)
		s.principalOfTotalEarningSupply.Add(s.principalOfTotalEarningSupply, principal)
	}

	s.events.Transfer(from, to, present)
	return nil
}

// StartEarning enrolls addr in the earning cohort, converting its current
// non-earning balance to principal rounded down. No-op if already earning.
func (s *State) StartEarning(addr string, currentNonEarningBalance *big.Int, now int64) (err error) {
	defer func() { s.observe("start_earning", err) }()

	if _, ok := s.earning[addr]; ok {
		return nil
	}
	if s.approvedEarner != nil && !s.approvedEarner(addr) {
		return &Error{Code: CodeNotApprovedEarner, Address: addr}
	}

	idx, err := s.CurrentIndex(now)
	if err != nil {
		return err
	}
	if s.totalNonEarningSupply.Cmp(currentNonEarningBalance) < 0 {
		return &Error{Code: CodeInsufficientBalance, Address: addr}
	}
	principal, err := indexing.PrincipalFromPresentDown(currentNonEarningBalance, idx)
	if err != nil {
		return translateFixedmathError(err)
	}
	if _, err := s.updateIndex(now); err != nil {
		return err
	}

	s.totalNonEarningSupply.Sub(s.totalNonEarningSupply, currentNonEarningBalance)
	s.earning[addr] = &EarningAccount{
		Principal:      principal,
		LastClaimIndex: new(big.Int).Set(idx),
	}
	s.principalOfTotalEarningSupply.Add(s.principalOfTotalEarningSupply, principal)

	s.events.StartedEarning(addr)
	return nil
}

// StopEarning removes addr from the earning cohort, converting its
// principal back to present value rounded down. No-op if not earning.
func (s *State) StopEarning(addr string, now int64) (present *big.Int, principal *big.Int, err error) {
	defer func() { s.observe("stop_earning", err) }()

	account, ok := s.earning[addr]
	if !ok {
		return big.NewInt(0), big.NewInt(0), nil
	}
	if s.approvedEarner != nil && s.approvedEarner(addr) {
		return nil, nil, &Error{Code: CodeIsApprovedEarner, Address: addr}
	}

	idx, err := s.updateIndex(now)
	if err != nil {
		return nil, nil, err
	}

	principal = new(big.Int).Set(account.Principal)
	present = indexing.PresentFromPrincipalDown(principal, idx)

	delete(s.earning, addr)
	s.principalOfTotalEarningSupply.Sub(s.principalOfTotalEarningSupply, principal)
	s.totalNonEarningSupply.Add(s.totalNonEarningSupply, present)

	s.events.StoppedEarning(addr)
	return present, principal, nil
}

// Claim realizes accrued present value since the account's last claim
// without touching its principal, which keeps growing against the index.
func (s *State) Claim(addr string, now int64) (interest *big.Int, err error) {
	defer func() { s.observe("claim", err) }()

	account, ok := s.earning[addr]
	if !ok {
		return big.NewInt(0), nil
	}

	idx, err := s.updateIndex(now)
	if err != nil {
		return nil, err
	}

	current := s.presentFromPrincipalDownCached(account.Principal, idx)
	last := s.presentFromPrincipalDownCached(account.Principal, account.LastClaimIndex)
	interest = new(big.Int).Sub(current, last)
	if interest.Sign() < 0 {
		interest.SetInt64(0)
	}
	account.LastClaimIndex = new(big.Int).Set(idx)
	return interest, nil
}

// SumPrincipal recomputes Σ EarningAccount.principal directly from the
// table; used by tests to verify accounting closure.
func (s *State) SumPrincipal() *big.Int {
	sum := big.NewInt(0)
	for _, a := range s.earning {
		sum.Add(sum, a.Principal)
	}
	return sum
}

func translateFixedmathError(err error) error {
	if err == fixedmath.ErrDivisionByZero {
		return &Error{Code: CodeDivisionByZero}
	}
	return err
}
