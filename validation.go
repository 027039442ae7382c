package payments

import "fmt"

// Validate checks that tx is well formed before it reaches the ledger.
//
// A failure here is fatal: the record cannot be interpreted and the run must
// stop. Business rules (funds, locks, disputes) are not checked here, they are
// the account's job.
func Validate(tx Transaction) error {
	if _, err := ParseTransactionType(string(tx.Type)); err != nil {
		return err
	}
	if !tx.Type.HasAmount() {
		// the amount of a dispute, resolve or chargeback comes from the history.
		return nil
	}
	if !tx.Amount.Valid {
		return fmt.Errorf("%w: %s tx %d has no amount", ErrMalformedTransaction, tx.Type, tx.TX)
	}
	if tx.Amount.Decimal.IsNegative() {
		return fmt.Errorf("%w: %s tx %d has a negative amount %s", ErrMalformedTransaction, tx.Type, tx.TX, tx.Amount.Decimal)
	}
	return nil
}
