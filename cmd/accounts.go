package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/supramk4h/PersonalCashbook/renderer"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list all accounts" }
func (*accountsCmd) Usage() string {
	return `pcb accounts

  Lists the chart of accounts in serial order.

`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Accounts(session.Ledger(), Currency()))
	return subcommands.ExitSuccess
}
