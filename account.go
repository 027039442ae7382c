package payments

import (
	"fmt"
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// Outcome tells what Apply did with a transaction.
type Outcome int

const (
	// Applied means the balances changed and the transaction joined the account history.
	Applied Outcome = iota
	// Ignored means the transaction referenced nothing it could act on. It is
	// not an error, the account is unchanged.
	Ignored
	// Rejected means a rule was violated and the account is unchanged.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Ignored:
		return "ignored"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Account holds the balances of a single client.
//
// Total is always Available + Held. Held funds are the amounts of deposits under
// dispute. Once Locked by a chargeback, an account refuses every transaction.
type Account struct {
	ID        ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool

	history []Transaction // transactions applied to this account, in order
}

// NewAccount creates an empty, unlocked account.
func NewAccount(id ClientID) *Account {
	return &Account{ID: id}
}

// History returns an iterator over the transactions applied to the account, in
// the order they were applied.
func (a *Account) History() iter.Seq[Transaction] {
	return slices.Values(a.history)
}

// Snapshot returns a copy of the account that shares nothing with it.
func (a *Account) Snapshot() Account {
	s := *a
	s.history = slices.Clone(a.history)
	return s
}

// Apply applies tx to the account.
//
// It returns a rule violation error (see IsRuleViolation) when tx is refused,
// and any other error when tx was not meant for this account at all. In both
// cases the account is left unchanged. Disputes and resolves that reference no
// known transaction are Ignored without error.
func (a *Account) Apply(tx Transaction) (Outcome, error) {
	if tx.Client != a.ID {
		return Rejected, fmt.Errorf("%w: %v sent to account %d", ErrClientMismatch, tx, a.ID)
	}
	if tx.Type.HasAmount() && !tx.Amount.Valid {
		return Rejected, fmt.Errorf("%w: %s tx %d has no amount", ErrMalformedTransaction, tx.Type, tx.TX)
	}
	if a.Locked {
		return Rejected, fmt.Errorf("%w: client %d refuses %s tx %d", ErrAccountLocked, a.ID, tx.Type, tx.TX)
	}

	switch tx.Type {
	case Deposit:
		amount := tx.Amount.Decimal
		a.Available = a.Available.Add(amount)
		a.Total = a.Total.Add(amount)

	case Withdrawal:
		amount := tx.Amount.Decimal
		if amount.GreaterThan(a.Available) {
			return Rejected, fmt.Errorf("%w: cannot withdraw %s, available is %s", ErrInsufficientFunds, amount, a.Available)
		}
		a.Available = a.Available.Sub(amount)
		a.Total = a.Total.Sub(amount)

	case Dispute:
		deposit, ok := a.antecedent(tx.TX, tx.Type)
		if !ok {
			return Ignored, nil
		}
		amount := deposit.Amount.Decimal
		a.Available = a.Available.Sub(amount)
		a.Held = a.Held.Add(amount)

	case Resolve:
		deposit, ok := a.disputed(tx)
		if !ok {
			return Ignored, nil
		}
		amount := deposit.Amount.Decimal
		a.Available = a.Available.Add(amount)
		a.Held = a.Held.Sub(amount)

	case Chargeback:
		deposit, ok := a.disputed(tx)
		if !ok {
			return Rejected, fmt.Errorf("%w: chargeback of tx %d", ErrNoDisputeFound, tx.TX)
		}
		amount := deposit.Amount.Decimal
		if a.Held.LessThan(amount) {
			return Rejected, fmt.Errorf("%w: cannot charge back %s, held is %s", ErrInsufficientHeldFunds, amount, a.Held)
		}
		a.Held = a.Held.Sub(amount)
		a.Total = a.Total.Sub(amount)
		a.Locked = true

	default:
		return Rejected, fmt.Errorf("%w: %q", ErrUnknownTransactionType, tx.Type)
	}

	a.history = append(a.history, tx)
	return Applied, nil
}

// antecedent finds in the history the transaction with id tx that a
// transaction of type t can act upon. The first match wins.
func (a *Account) antecedent(tx TxID, t TransactionType) (Transaction, bool) {
	want, ok := Antecedent(t)
	if !ok {
		return Transaction{}, false
	}
	for _, h := range a.history {
		if h.TX == tx && h.Type == want {
			return h, true
		}
	}
	return Transaction{}, false
}

// disputed returns the deposit behind the dispute that tx (a resolve or a
// chargeback) refers to.
func (a *Account) disputed(tx Transaction) (Transaction, bool) {
	dispute, ok := a.antecedent(tx.TX, tx.Type)
	if !ok {
		return Transaction{}, false
	}
	// a dispute only enters the history when its deposit was found.
	return a.antecedent(dispute.TX, dispute.Type)
}
