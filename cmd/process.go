package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/payments"
	"github.com/google/subcommands"
	"github.com/prometheus/client_golang/prometheus"
)

type processCmd struct {
	output      string
	format      string
	precision   int
	metricsFile string
}

func (*processCmd) Name() string { return "process" }
func (*processCmd) Synopsis() string {
	return "replay a transactions file and print the final account balances"
}
func (*processCmd) Usage() string {
	return `pay process [-o <file>] [-format csv|json] [-precision <n>] [-metrics-file <file>] <transactions>

  Applies every transaction of the file, in order, to the client accounts and
  writes the final state of each account: available, held and total funds, and
  whether the account is locked.

  Transactions breaking a rule (insufficient funds, locked account, chargeback
  without dispute) are skipped and logged. Malformed input stops the run and
  nothing is written.

Usage Examples:
# Prints the balances as CSV.
$ pay process transactions.csv

`
}

func (p *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file. Defaults to the standard output.")
	f.StringVar(&p.format, "format", "csv", "Output format (csv, json).")
	f.IntVar(&p.precision, "precision", payments.DefaultPrecision, "Number of decimal places of CSV amounts.")
	f.StringVar(&p.metricsFile, "metrics-file", "", "Write the run metrics to this file, in Prometheus text format.")
}

func (p *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filename, ok := transactionsFile(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	if p.precision < 0 {
		fmt.Fprintf(os.Stderr, "Error: precision must not be negative, got %d\n", p.precision)
		return subcommands.ExitUsageError
	}
	if p.format != "csv" && p.format != "json" {
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", p.format)
		return subcommands.ExitUsageError
	}

	var registry *prometheus.Registry
	var opts []payments.Option
	if p.metricsFile != "" {
		registry = prometheus.NewRegistry()
		opts = append(opts, payments.WithMetrics(payments.NewMetrics(registry)))
	}

	ledger, err := DecodeLedger(filename, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	w, err := createOutput(p.output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer w.Close()

	switch p.format {
	case "json":
		err = payments.EncodeAccountsJSON(w, ledger.Accounts())
	default:
		err = payments.EncodeAccounts(w, ledger.Accounts(), int32(p.precision))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing accounts: %v\n", err)
		return subcommands.ExitFailure
	}

	if registry != nil {
		if err := prometheus.WriteToTextfile(p.metricsFile, registry); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing metrics file %q: %v\n", p.metricsFile, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
