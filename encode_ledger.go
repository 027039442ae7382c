package payments

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
)

// DefaultPrecision is the number of decimal places of encoded amounts.
const DefaultPrecision = 4

// DecodeTransactions decodes transactions from a stream of CSV data.
//
// The first row is a header naming the columns type, client, tx and amount, in
// any order. Surrounding whitespace is ignored and the amount may be empty or
// missing for disputes, resolves and chargebacks.
//
// The iterator yields transactions in the order of the stream. It yields a
// non-nil error, and then stops, on the first record that cannot be decoded.
func DecodeTransactions(r io.Reader) iter.Seq2[Transaction, error] {
	return func(yield func(Transaction, error) bool) {
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1 // the amount column is often left out of dispute rows
		cr.TrimLeadingSpace = true
		cr.ReuseRecord = true

		header, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			yield(Transaction{}, fmt.Errorf("could not read header: %w", err))
			return
		}
		cols, err := newColumns(header)
		if err != nil {
			yield(Transaction{}, err)
			return
		}

		for {
			fields, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Transaction{}, fmt.Errorf("error reading from input: %w", err))
				return
			}
			line, _ := cr.FieldPos(0)
			tx, err := cols.record(fields).transaction()
			if err != nil {
				yield(Transaction{}, fmt.Errorf("line %d: %w", line, err))
				return
			}
			if !yield(tx, nil) {
				return
			}
		}
	}
}

// EncodeAccounts writes the accounts as CSV, sorted by client id, with amounts
// fixed to precision decimal places.
func EncodeAccounts(w io.Writer, accounts []Account, precision int32) error {
	accounts = slices.SortedFunc(slices.Values(accounts), func(a, b Account) int {
		return int(a.ID) - int(b.ID)
	})

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, a := range accounts {
		row := []string{
			strconv.FormatUint(uint64(a.ID), 10),
			a.Available.StringFixed(precision),
			a.Held.StringFixed(precision),
			a.Total.StringFixed(precision),
			strconv.FormatBool(a.Locked),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write account %d: %w", a.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
