package payments

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// This file contains the conversion of raw input records, whatever their
// source format, into validated transactions.
//
// Every source decodes its records into the same rawRecord of trimmed strings,
// so that the parsing rules (exact type keywords, integer ids, optional
// decimal amount) are shared.

// rawRecord is a transaction record as read from a source, before parsing.
type rawRecord struct {
	Type   string
	Client string
	TX     string
	Amount string
}

// transaction parses and validates the record. Any error is fatal to the run.
func (r rawRecord) transaction() (Transaction, error) {
	t, err := ParseTransactionType(r.Type)
	if err != nil {
		return Transaction{}, err
	}

	client, err := strconv.ParseUint(r.Client, 10, 16)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: invalid client %q: %v", ErrMalformedTransaction, r.Client, err)
	}

	tx, err := strconv.ParseUint(r.TX, 10, 32)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: invalid tx %q: %v", ErrMalformedTransaction, r.TX, err)
	}

	// the amount of a dispute, resolve or chargeback comes from the history.
	var amount decimal.NullDecimal
	if t.HasAmount() && r.Amount != "" {
		d, err := decimal.NewFromString(r.Amount)
		if err != nil {
			return Transaction{}, fmt.Errorf("%w: invalid amount %q: %v", ErrMalformedTransaction, r.Amount, err)
		}
		amount = decimal.NewNullDecimal(d)
	}

	result := Transaction{Type: t, Client: ClientID(client), TX: TxID(tx), Amount: amount}
	if err := Validate(result); err != nil {
		return Transaction{}, err
	}
	return result, nil
}

// trimmed returns r without surrounding whitespace in its fields.
func (r rawRecord) trimmed() rawRecord {
	return rawRecord{
		Type:   strings.TrimSpace(r.Type),
		Client: strings.TrimSpace(r.Client),
		TX:     strings.TrimSpace(r.TX),
		Amount: strings.TrimSpace(r.Amount),
	}
}

// columns locates the record fields in a header row.
type columns struct {
	typ, client, tx, amount int
}

// newColumns reads a header row. Column names are trimmed; the amount column
// is optional, the others are required.
func newColumns(header []string) (columns, error) {
	c := columns{typ: -1, client: -1, tx: -1, amount: -1}
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case "type", "transaction_type":
			c.typ = i
		case "client":
			c.client = i
		case "tx":
			c.tx = i
		case "amount":
			c.amount = i
		}
	}
	for name, i := range map[string]int{"type": c.typ, "client": c.client, "tx": c.tx} {
		if i < 0 {
			return c, fmt.Errorf("%w: header %q has no %q column", ErrMalformedTransaction, strings.Join(header, ","), name)
		}
	}
	return c, nil
}

// record extracts the record from a row. Missing trailing fields are empty.
func (c columns) record(fields []string) rawRecord {
	get := func(i int) string {
		if i < 0 || i >= len(fields) {
			return ""
		}
		return fields[i]
	}
	return rawRecord{
		Type:   get(c.typ),
		Client: get(c.client),
		TX:     get(c.tx),
		Amount: get(c.amount),
	}.trimmed()
}
