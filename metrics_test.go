package payments

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	l := NewLedger(WithMetrics(m))

	for _, tx := range []Transaction{
		NewDeposit(1, 1, D("10")),
		NewDeposit(2, 2, D("1")),
		NewWithdrawal(2, 3, D("2")),
		NewDispute(1, 1),
		NewDispute(1, 8),
		NewChargeback(1, 1),
		NewWithdrawal(3, 4, D("1")),
	} {
		if _, err := l.Add(tx); err != nil {
			t.Fatalf("Add(%v) unexpected error: %v", tx, err)
		}
	}

	testCases := []struct {
		name string
		got  prometheus.Collector
		want float64
	}{
		{"applied deposits", m.transactionsTotal.WithLabelValues("deposit", "applied"), 2},
		{"rejected withdrawals", m.transactionsTotal.WithLabelValues("withdrawal", "rejected"), 2},
		{"applied disputes", m.transactionsTotal.WithLabelValues("dispute", "applied"), 1},
		{"ignored disputes", m.transactionsTotal.WithLabelValues("dispute", "ignored"), 1},
		{"applied chargebacks", m.transactionsTotal.WithLabelValues("chargeback", "applied"), 1},
		{"accounts", m.accounts, 2},
		{"locked accounts", m.lockedAccounts, 1},
	}
	for _, tc := range testCases {
		if got := testutil.ToFloat64(tc.got); got != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	m.RecordTransaction(Deposit, Applied)
	m.RecordAccountOpened()
	m.RecordAccountLocked()
}
