// Package cmd implements the CLI application to replay payment transactions.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/etnz/payments"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&processCmd{}, "ledger")
	c.Register(&reportCmd{}, "ledger")
	c.Register(&rejectedCmd{}, "ledger")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var logLevel = flag.String("log-level", "warn", "Minimum level of the logs written to stderr (debug, info, warn, error)")
var inputFormat = flag.String("input-format", "csv", "Format of the transactions file (csv, json)")
var jsonSelector = flag.String("jsonpath", payments.DefaultSelector, "JSONPath expression selecting the transaction records of a JSON input")

// newLogger builds the structured logger writing to stderr.
func newLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(*logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// transactions returns the decoder for the configured input format.
func transactions(r io.Reader) (iter.Seq2[payments.Transaction, error], error) {
	switch *inputFormat {
	case "csv":
		return payments.DecodeTransactions(r), nil
	case "json":
		return payments.DecodeTransactionsJSON(r, *jsonSelector), nil
	default:
		return nil, fmt.Errorf("unknown input format %q", *inputFormat)
	}
}

// DecodeLedger replays every transaction of the file into a new ledger.
// The filename "-" reads from the standard input.
func DecodeLedger(filename string, opts ...payments.Option) (*payments.Ledger, error) {
	var r io.Reader = os.Stdin
	if filename != "-" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("could not open transactions file %q: %w", filename, err)
		}
		defer f.Close()
		r = f
	}

	txs, err := transactions(r)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger()
	if err != nil {
		return nil, err
	}
	defer logger.Sync()
	logger = logger.With(zap.String("file", filename))

	opts = append([]payments.Option{payments.WithLogger(logger)}, opts...)
	ledger, err := payments.Fold(payments.NewLedger(opts...), txs)
	if err != nil {
		return nil, fmt.Errorf("could not process transactions file %q: %w", filename, err)
	}
	return ledger, nil
}

// nopCloser keeps the standard output open.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// createOutput opens the output file, or the standard output if filename is empty.
func createOutput(filename string) (io.WriteCloser, error) {
	if filename == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening output file %q for writing: %w", filename, err)
	}
	return f, nil
}

// transactionsFile returns the single positional argument of a subcommand.
func transactionsFile(f *flag.FlagSet) (string, bool) {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transactions file, use - for the standard input.")
		return "", false
	}
	return f.Arg(0), true
}
