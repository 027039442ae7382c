package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/payments"
	"github.com/etnz/payments/renderer"
	"github.com/google/subcommands"
)

type rejectedCmd struct {
	output string
	format string
}

func (*rejectedCmd) Name() string     { return "rejected" }
func (*rejectedCmd) Synopsis() string { return "list the transactions refused during a replay" }
func (*rejectedCmd) Usage() string {
	return `pay rejected [-format markdown|json] [-o <file>] <transactions>

  Replays the transactions file and lists every transaction that was refused,
  in the order they were received, with the reason of the refusal.
`
}

func (c *rejectedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to the standard output.")
	f.StringVar(&c.format, "format", "markdown", "Output format (markdown, json).")
}

func (c *rejectedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filename, ok := transactionsFile(f)
	if !ok {
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	w, err := createOutput(c.output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer w.Close()

	switch c.format {
	case "json":
		if err := payments.EncodeRejections(w, ledger.Rejected()); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing rejections: %v\n", err)
			return subcommands.ExitFailure
		}
	case "markdown":
		md := renderer.RenderRejections(renderer.NewReport(ledger, ""))
		if c.output != "" {
			fmt.Fprint(w, md)
		} else {
			printMarkdown(w, md)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
