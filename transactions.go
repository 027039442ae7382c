package payments

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionType is a typed string for identifying transaction kinds.
type TransactionType string

// Transaction types, as they appear in the input stream.
const (
	Deposit    TransactionType = "deposit"
	Withdrawal TransactionType = "withdrawal"
	Dispute    TransactionType = "dispute"
	Resolve    TransactionType = "resolve"
	Chargeback TransactionType = "chargeback"
)

// ParseTransactionType parses a string into a TransactionType.
// The match is exact and case-sensitive.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(s); t {
	case Deposit, Withdrawal, Dispute, Resolve, Chargeback:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTransactionType, s)
	}
}

// antecedents maps a transaction type to the type of the prior transaction it
// must reference. Only deposits can be disputed.
var antecedents = map[TransactionType]TransactionType{
	Dispute:    Deposit,
	Resolve:    Dispute,
	Chargeback: Dispute,
}

// Antecedent returns the type of transaction that t must reference in the
// account history, or false if t stands on its own.
func Antecedent(t TransactionType) (TransactionType, bool) {
	a, ok := antecedents[t]
	return a, ok
}

// HasAmount reports whether transactions of this type carry their own amount.
func (t TransactionType) HasAmount() bool {
	return t == Deposit || t == Withdrawal
}

func (t TransactionType) String() string { return string(t) }

// ClientID identifies a client, and therefore its unique account.
type ClientID uint16

// TxID identifies a transaction. Ids are unique across the whole stream.
type TxID uint32

// Transaction is a single operation on a client account.
//
// Amount is only valid for deposits and withdrawals. Disputes, resolves and
// chargebacks reference a previous transaction by TX and take the amount from
// it.
type Transaction struct {
	Type   TransactionType
	Client ClientID
	TX     TxID
	Amount decimal.NullDecimal
}

// NewDeposit creates a new Deposit transaction.
func NewDeposit(client ClientID, tx TxID, amount decimal.Decimal) Transaction {
	return Transaction{Type: Deposit, Client: client, TX: tx, Amount: decimal.NewNullDecimal(amount)}
}

// NewWithdrawal creates a new Withdrawal transaction.
func NewWithdrawal(client ClientID, tx TxID, amount decimal.Decimal) Transaction {
	return Transaction{Type: Withdrawal, Client: client, TX: tx, Amount: decimal.NewNullDecimal(amount)}
}

// NewDispute creates a Dispute of the transaction tx.
func NewDispute(client ClientID, tx TxID) Transaction {
	return Transaction{Type: Dispute, Client: client, TX: tx}
}

// NewResolve creates a Resolve of the dispute on transaction tx.
func NewResolve(client ClientID, tx TxID) Transaction {
	return Transaction{Type: Resolve, Client: client, TX: tx}
}

// NewChargeback creates a Chargeback of the dispute on transaction tx.
func NewChargeback(client ClientID, tx TxID) Transaction {
	return Transaction{Type: Chargeback, Client: client, TX: tx}
}

// Equal reports whether t and o describe the same operation.
func (t Transaction) Equal(o Transaction) bool {
	if t.Type != o.Type || t.Client != o.Client || t.TX != o.TX || t.Amount.Valid != o.Amount.Valid {
		return false
	}
	return !t.Amount.Valid || t.Amount.Decimal.Equal(o.Amount.Decimal)
}

func (t Transaction) String() string {
	if t.Amount.Valid {
		return fmt.Sprintf("%s client=%d tx=%d amount=%s", t.Type, t.Client, t.TX, t.Amount.Decimal)
	}
	return fmt.Sprintf("%s client=%d tx=%d", t.Type, t.Client, t.TX)
}
