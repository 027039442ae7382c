package payments

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount to display in a given currency.
//
// Balances are single decimal amounts with no currency; Money only exists to
// present them in reports.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates Money from an amount in major units. The currency can be empty.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, formatted for
// its currency, or as a plain decimal when it has none.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(DefaultPrecision)
	}
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	if !minor.BigInt().IsInt64() {
		// go-money formats int64 minor units only.
		return m.value.StringFixed(int32(cur.Fraction)) + " " + cur.Code
	}
	return cur.Formatter().Format(minor.IntPart())
}
