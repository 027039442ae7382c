package payments

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		tx      Transaction
		wantErr error
	}{
		{name: "deposit", tx: NewDeposit(1, 1, D("1"))},
		{name: "zero deposit", tx: NewDeposit(1, 1, D("0"))},
		{name: "withdrawal", tx: NewWithdrawal(1, 1, D("0.0001"))},
		{name: "dispute", tx: NewDispute(1, 1)},
		{
			name: "resolve with an amount",
			tx:   Transaction{Type: Resolve, Client: 1, TX: 1, Amount: decimal.NewNullDecimal(D("-1"))},
		},
		{name: "chargeback", tx: NewChargeback(1, 1)},
		{
			name:    "unknown type",
			tx:      Transaction{Type: "transfer", Client: 1, TX: 1},
			wantErr: ErrUnknownTransactionType,
		},
		{
			name:    "deposit without amount",
			tx:      Transaction{Type: Deposit, Client: 1, TX: 1},
			wantErr: ErrMalformedTransaction,
		},
		{
			name:    "negative deposit",
			tx:      NewDeposit(1, 1, D("-0.01")),
			wantErr: ErrMalformedTransaction,
		},
		{
			name:    "negative withdrawal",
			tx:      NewWithdrawal(1, 1, D("-5")),
			wantErr: ErrMalformedTransaction,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := Validate(tc.tx); !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate(%v) = %v, want %v", tc.tx, err, tc.wantErr)
			}
		})
	}
}
