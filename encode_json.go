package payments

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultSelector selects every element of a top level JSON array.
const DefaultSelector = "$[*]"

// DecodeTransactionsJSON decodes transactions from a JSON document.
//
// The selector is a JSONPath expression locating the transaction records in
// the document, for instance "$.data.transactions[*]" for a payment provider
// export. Each record is an object with the fields type, client, tx and
// amount; numbers may be given as JSON numbers or strings.
//
// Like DecodeTransactions, the iterator stops after yielding the first error.
func DecodeTransactionsJSON(r io.Reader, selector string) iter.Seq2[Transaction, error] {
	return func(yield func(Transaction, error) bool) {
		if selector == "" {
			selector = DefaultSelector
		}

		dec := json.NewDecoder(r)
		dec.UseNumber() // keep amounts exact
		var doc any
		if err := dec.Decode(&doc); err != nil {
			yield(Transaction{}, fmt.Errorf("could not decode JSON document: %w", err))
			return
		}

		selected, err := jsonpath.Get(selector, doc)
		if err != nil {
			yield(Transaction{}, fmt.Errorf("could not select %q: %w", selector, err))
			return
		}
		// because jsonpath returns a single value for non wildcard paths.
		records, ok := selected.([]any)
		if !ok {
			records = []any{selected}
		}

		for i, rec := range records {
			obj, ok := rec.(map[string]any)
			if !ok {
				yield(Transaction{}, fmt.Errorf("record %d: %w: not an object", i, ErrMalformedTransaction))
				return
			}
			tx, err := jsonRecord(obj).transaction()
			if err != nil {
				yield(Transaction{}, fmt.Errorf("record %d: %w", i, err))
				return
			}
			if !yield(tx, nil) {
				return
			}
		}
	}
}

// jsonRecord converts a decoded JSON object into a raw record.
func jsonRecord(obj map[string]any) rawRecord {
	get := func(keys ...string) string {
		for _, k := range keys {
			switch v := obj[k].(type) {
			case string:
				return v
			case json.Number:
				return v.String()
			case nil:
				continue
			default:
				return fmt.Sprint(v)
			}
		}
		return ""
	}
	return rawRecord{
		Type:   get("type", "transaction_type"),
		Client: get("client"),
		TX:     get("tx"),
		Amount: get("amount"),
	}.trimmed()
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", t.Type)
	w.Append("client", t.Client)
	w.Append("tx", t.TX)
	if t.Amount.Valid {
		w.Append("amount", t.Amount.Decimal)
	}
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Account.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("client", a.ID)
	w.Append("available", a.Available)
	w.Append("held", a.Held)
	w.Append("total", a.Total)
	w.Append("locked", a.Locked)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Rejection.
func (r Rejection) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(r.Transaction)
	var reason string
	if r.Reason != nil {
		reason = r.Reason.Error()
	}
	w.Optional("reason", reason)
	return w.MarshalJSON()
}

// EncodeAccountsJSON writes one JSON object per account, in JSONL format.
func EncodeAccountsJSON(w io.Writer, accounts []Account) error {
	for _, a := range accounts {
		if err := encodeLine(w, a); err != nil {
			return fmt.Errorf("failed to write account %d: %w", a.ID, err)
		}
	}
	return nil
}

// EncodeRejections writes one JSON object per rejected transaction, with the
// reason of the rejection, in JSONL format.
func EncodeRejections(w io.Writer, rejected iter.Seq2[Transaction, error]) error {
	for tx, reason := range rejected {
		if err := encodeLine(w, Rejection{Transaction: tx, Reason: reason}); err != nil {
			return fmt.Errorf("failed to write rejected tx %d: %w", tx.TX, err)
		}
	}
	return nil
}

func encodeLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
