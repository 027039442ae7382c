package payments

import "errors"

// Rule violations. A transaction failing one of these is recorded in the
// ledger rejected log and the run continues.
var (
	ErrAccountLocked         = errors.New("account is locked")
	ErrInsufficientFunds     = errors.New("insufficient available funds")
	ErrNoDisputeFound        = errors.New("no dispute found")
	ErrInsufficientHeldFunds = errors.New("insufficient held funds")
)

// Fatal errors. The input stream or the caller is broken, the run stops.
var (
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	ErrMalformedTransaction   = errors.New("malformed transaction")
	ErrClientMismatch         = errors.New("transaction routed to the wrong account")
)

// IsRuleViolation reports whether err is a business rule rejection rather than
// a fatal error.
func IsRuleViolation(err error) bool {
	return errors.Is(err, ErrAccountLocked) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrNoDisputeFound) ||
		errors.Is(err, ErrInsufficientHeldFunds)
}
