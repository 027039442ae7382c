package payments

import (
	"testing"

	"github.com/shopspring/decimal"
)

// D is a helper for test to create a decimal from a const.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// balances is the observable state of an account, as strings for readable diffs.
type balances struct {
	Available string
	Held      string
	Total     string
	Locked    bool
}

func balancesOf(a Account) balances {
	return balances{
		Available: a.Available.String(),
		Held:      a.Held.String(),
		Total:     a.Total.String(),
		Locked:    a.Locked,
	}
}

// newTestAccount creates an account and applies setup to it, failing the test
// if any of them is refused.
func newTestAccount(t *testing.T, id ClientID, setup ...Transaction) *Account {
	t.Helper()
	a := NewAccount(id)
	for _, tx := range setup {
		if _, err := a.Apply(tx); err != nil {
			t.Fatalf("setup Apply(%v) failed: %v", tx, err)
		}
	}
	return a
}

// checkInvariant fails the test if total is not available + held.
func checkInvariant(t *testing.T, a Account) {
	t.Helper()
	if !a.Total.Equal(a.Available.Add(a.Held)) {
		t.Errorf("account %d: total %s != available %s + held %s", a.ID, a.Total, a.Available, a.Held)
	}
}
