// Package payments provides the types and functions to replay a stream of
// client payment transactions into a set of account balances.
//
// The core functionalities include:
//   - Transactions: deposits, withdrawals, and the dispute lifecycle
//     (dispute, then resolve or chargeback) keyed by client and transaction id.
//   - Accounts: a per-client state machine holding available, held and total
//     funds and a lock flag set by chargebacks.
//   - Ledger: the collection of accounts for one run, with the audit logs of
//     accepted and rejected transactions.
//   - Codecs: streaming CSV and JSON decoders for incoming records and CSV or
//     JSONL encoders for the final account snapshot.
//
// Transactions are applied strictly in the order they are received. Business
// rule violations (a locked account, insufficient funds, a chargeback without a
// dispute) never stop a run: the transaction is recorded as rejected and the
// next one is processed. Malformed input stops the run.
//
// This package serves as the foundational logic for the `pay` command-line
// tool.
package payments
