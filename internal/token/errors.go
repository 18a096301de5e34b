package token

import (
	"fmt"
	"math/big"
)

// Code is the abort-code taxonomy for the token core. Every failure in the
// math kernel or accounting layer is fatal to the in-flight operation:
// callers see the code and a small structured payload, never a free-form
// string.
type Code string

const (
	CodeInvalidRegistrar                Code = "InvalidRegistrar"
	CodeNotApprovedEarner               Code = "NotApprovedEarner"
	CodeIsApprovedEarner                Code = "IsApprovedEarner"
	CodeInsufficientBalance             Code = "InsufficientBalance"
	CodeInsufficientAmount              Code = "InsufficientAmount"
	CodeInvalidRecipient                Code = "InvalidRecipient"
	CodeOverflowsPrincipalOfTotalSupply Code = "OverflowsPrincipalOfTotalSupply"
	CodeDivisionByZero                  Code = "DivisionByZero"
	CodeInputNotPositive                Code = "InputNotPositive"
	CodeNegativeTimeElapsed             Code = "NegativeTimeElapsed"
)

// Error carries a Code plus whatever structured context the operation had
// on hand; Address and Amount are populated when relevant, never both for
// every code.
type Error struct {
	Code    Code
	Address string
	Amount  *big.Int
}

func (e *Error) Error() string {
	switch {
	case e.Address != "" && e.Amount != nil:
		return fmt.Sprintf("token: %s (address=%s amount=%s)", e.Code, e.Address, e.Amount.String())
	case e.Address != "":
		return fmt.Sprintf("token: %s (address=%s)", e.Code, e.Address)
	case e.Amount != nil:
		return fmt.Sprintf("token: %s (amount=%s)", e.Code, e.Amount.String())
	default:
		return fmt.Sprintf("token: %s", e.Code)
	}
}

// Is allows errors.Is(err, ErrCode(CodeInsufficientBalance)) style matching.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ErrCode builds a bare sentinel for errors.Is comparisons.
func ErrCode(c Code) error { return &Error{Code: c} }
