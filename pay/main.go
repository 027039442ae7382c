package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/payments/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// exits when invoked by the shell completion, does nothing otherwise.
	cmd.Completion().Complete("pay")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
