package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/payments/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	output   string
	format   string
	currency string
	raw      bool
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "replay a transactions file and display a report of the accounts"
}
func (*reportCmd) Usage() string {
	return `pay report [-format markdown|table|html] [-c <currency>] [-raw] [-o <file>] <transactions>

  Replays the transactions file and displays the accounts and the rejected
  transactions. Amounts are formatted in the given currency, if any.

Usage Examples:
# Displays the report in the terminal, amounts in euros.
$ pay report -c EUR transactions.csv

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to the standard output.")
	f.StringVar(&c.format, "format", "markdown", "Report format (markdown, table, html).")
	f.StringVar(&c.currency, "c", "", "Currency code used to format amounts (e.g. EUR, USD).")
	f.BoolVar(&c.raw, "raw", false, "Print the markdown source instead of rendering it for the terminal.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filename, ok := transactionsFile(f)
	if !ok {
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	report := renderer.NewReport(ledger, c.currency)

	w, err := createOutput(c.output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer w.Close()

	switch c.format {
	case "markdown":
		md := renderer.RenderReport(report)
		if c.raw || c.output != "" {
			fmt.Fprint(w, md)
		} else {
			printMarkdown(w, md)
		}
	case "table":
		renderer.Table(w, report)
	case "html":
		html, err := renderer.HTML(renderer.RenderReport(report))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Fprint(w, html)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown report format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
