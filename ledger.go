package payments

import (
	"iter"
	"maps"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Rejection is a transaction refused by its account, with the reason why.
type Rejection struct {
	Transaction Transaction
	Reason      error
}

// Ledger represents the accounts of all clients for one processing run.
//
// Every transaction added to the ledger ends up in exactly one of its two logs:
// accepted or rejected. Accepted means no rule was violated, not that the
// transaction had an effect: a dispute of an unknown transaction is accepted
// and changes nothing.
//
// A Ledger is not safe for concurrent use.
type Ledger struct {
	id       uuid.UUID
	accounts map[ClientID]*Account
	accepted []Transaction
	rejected []Rejection

	logger  *zap.Logger
	metrics *Metrics
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger used to report rejected transactions.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// WithMetrics sets the metrics updated for every transaction.
func WithMetrics(m *Metrics) Option {
	return func(l *Ledger) { l.metrics = m }
}

// NewLedger creates an empty ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		id:       uuid.New(),
		accounts: make(map[ClientID]*Account),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = zap.NewNop()
	}
	l.logger = l.logger.With(zap.String("run", l.id.String()))
	return l
}

// ID returns the unique id of this processing run.
func (l *Ledger) ID() uuid.UUID { return l.id }

// Add routes tx to its client account, creating the account if needed.
//
// A rule violation is not an error for Add: tx goes to the rejected log and
// Add returns nil. The error is only set when tx could not be routed at all,
// and then the run must stop.
func (l *Ledger) Add(tx Transaction) (*Ledger, error) {
	account, exists := l.accounts[tx.Client]
	if !exists {
		account = NewAccount(tx.Client)
	}

	outcome, err := account.Apply(tx)
	switch {
	case err == nil:
		// a new account only joins the ledger once a transaction was accepted.
		if !exists {
			l.accounts[tx.Client] = account
			l.metrics.RecordAccountOpened()
		}
		if outcome == Applied && tx.Type == Chargeback {
			l.metrics.RecordAccountLocked()
		}
		if outcome == Ignored {
			l.logger.Debug("transaction ignored", txFields(tx)...)
		}
		l.accepted = append(l.accepted, tx)

	case IsRuleViolation(err):
		l.rejected = append(l.rejected, Rejection{Transaction: tx, Reason: err})
		l.logger.Warn("transaction rejected", append(txFields(tx), zap.NamedError("reason", err))...)

	default:
		return l, err
	}

	l.metrics.RecordTransaction(tx.Type, outcome)
	return l, nil
}

func txFields(tx Transaction) []zap.Field {
	fields := []zap.Field{
		zap.String("type", string(tx.Type)),
		zap.Uint16("client", uint16(tx.Client)),
		zap.Uint32("tx", uint32(tx.TX)),
	}
	if tx.Amount.Valid {
		fields = append(fields, zap.Stringer("amount", tx.Amount.Decimal))
	}
	return fields
}

// Account returns a snapshot of the client account, or false if the client has
// no account in the ledger.
func (l *Ledger) Account(id ClientID) (Account, bool) {
	a, ok := l.accounts[id]
	if !ok {
		return Account{}, false
	}
	return a.Snapshot(), true
}

// Accounts returns a snapshot of all accounts, sorted by client id.
func (l *Ledger) Accounts() []Account {
	ids := slices.Sorted(maps.Keys(l.accounts))
	accounts := make([]Account, 0, len(ids))
	for _, id := range ids {
		accounts = append(accounts, l.accounts[id].Snapshot())
	}
	return accounts
}

// Accepted returns an iterator over the accepted transactions, in the order
// they were added.
func (l *Ledger) Accepted() iter.Seq2[int, Transaction] {
	return slices.All(l.accepted)
}

// Rejected returns an iterator over the rejected transactions and the reason
// for their rejection, in the order they were added.
func (l *Ledger) Rejected() iter.Seq2[Transaction, error] {
	return func(yield func(Transaction, error) bool) {
		for _, r := range l.rejected {
			if !yield(r.Transaction, r.Reason) {
				return
			}
		}
	}
}

// Len returns the number of transactions added to the ledger, accepted or
// rejected.
func (l *Ledger) Len() int { return len(l.accepted) + len(l.rejected) }

// Stats summarizes a ledger.
type Stats struct {
	Accepted int
	Rejected int
	Accounts int
	Locked   int
}

// Stats returns the current counts of the ledger.
func (l *Ledger) Stats() Stats {
	s := Stats{
		Accepted: len(l.accepted),
		Rejected: len(l.rejected),
		Accounts: len(l.accounts),
	}
	for _, a := range l.accounts {
		if a.Locked {
			s.Locked++
		}
	}
	return s
}
