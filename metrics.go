package payments

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of a processing run.
// A nil *Metrics records nothing.
type Metrics struct {
	transactionsTotal *prometheus.CounterVec
	accounts          prometheus.Gauge
	lockedAccounts    prometheus.Gauge
}

// NewMetrics creates a new Metrics instance and registers all collectors.
// If registry is nil, prometheus.DefaultRegisterer is used.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		transactionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_transactions_total",
				Help: "Total number of transactions processed by type and outcome",
			},
			[]string{"type", "outcome"},
		),
		accounts: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "payments_accounts",
				Help: "Number of client accounts in the ledger",
			},
		),
		lockedAccounts: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "payments_locked_accounts",
				Help: "Number of client accounts locked by a chargeback",
			},
		),
	}
}

// RecordTransaction records a processed transaction.
func (m *Metrics) RecordTransaction(t TransactionType, outcome Outcome) {
	if m == nil {
		return
	}
	m.transactionsTotal.WithLabelValues(string(t), outcome.String()).Inc()
}

// RecordAccountOpened records the creation of an account.
func (m *Metrics) RecordAccountOpened() {
	if m == nil {
		return
	}
	m.accounts.Inc()
}

// RecordAccountLocked records an account getting locked.
func (m *Metrics) RecordAccountLocked() {
	if m == nil {
		return
	}
	m.lockedAccounts.Inc()
}
