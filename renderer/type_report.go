package renderer

import (
	"github.com/etnz/payments"
)

// Report is the final state of a processing run, ready to be rendered.
type Report struct {
	Run        string
	Currency   string
	Stats      payments.Stats
	Accounts   []AccountRow
	Rejections []RejectionRow
}

// AccountRow is one client account in a Report.
type AccountRow struct {
	Client    payments.ClientID
	Available payments.Money
	Held      payments.Money
	Total     payments.Money
	Locked    bool
}

// RejectionRow is one rejected transaction in a Report.
type RejectionRow struct {
	TX     payments.TxID
	Client payments.ClientID
	Type   payments.TransactionType
	Amount string // empty when the transaction has no amount of its own
	Reason string
}

// NewReport builds the Report of a ledger. Amounts are formatted in currency,
// or as plain decimals if currency is empty.
func NewReport(l *payments.Ledger, currency string) *Report {
	r := &Report{
		Run:      l.ID().String(),
		Currency: currency,
		Stats:    l.Stats(),
	}
	for _, a := range l.Accounts() {
		r.Accounts = append(r.Accounts, AccountRow{
			Client:    a.ID,
			Available: payments.M(a.Available, currency),
			Held:      payments.M(a.Held, currency),
			Total:     payments.M(a.Total, currency),
			Locked:    a.Locked,
		})
	}
	for tx, reason := range l.Rejected() {
		row := RejectionRow{TX: tx.TX, Client: tx.Client, Type: tx.Type, Reason: reason.Error()}
		if tx.Amount.Valid {
			row.Amount = payments.M(tx.Amount.Decimal, currency).String()
		}
		r.Rejections = append(r.Rejections, row)
	}
	return r
}
