package payments

import (
	"iter"

	"go.uber.org/zap"
)

// Process adds tx to the ledger l and returns it. If l is nil a new, empty
// ledger is created first.
//
// It lets callers fold a sequence of transactions into a ledger without
// managing its construction.
func Process(l *Ledger, tx Transaction) (*Ledger, error) {
	if l == nil {
		l = NewLedger()
	}
	return l.Add(tx)
}

// Fold processes every transaction of txs in order into l (a new ledger if nil).
//
// It stops at the first error, either yielded by txs (malformed input) or
// returned by Process (misrouted transaction); the ledger is then returned as
// it was before the failing transaction, and must not be trusted as a complete
// result.
func Fold(l *Ledger, txs iter.Seq2[Transaction, error]) (*Ledger, error) {
	if l == nil {
		l = NewLedger()
	}
	for tx, err := range txs {
		if err != nil {
			return l, err
		}
		if l, err = Process(l, tx); err != nil {
			return l, err
		}
	}
	s := l.Stats()
	l.logger.Info("transactions processed",
		zap.Int("accepted", s.Accepted),
		zap.Int("rejected", s.Rejected),
		zap.Int("accounts", s.Accounts),
		zap.Int("locked", s.Locked),
	)
	return l, nil
}
