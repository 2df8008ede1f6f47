package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/supramk4h/PersonalCashbook/renderer"
)

type balancesCmd struct{}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "show account balances" }
func (*balancesCmd) Usage() string {
	return `pcb balances

  Shows each account balance: opening balance plus the posted debits minus
  the posted credits. Drafts are ignored.

`
}

func (c *balancesCmd) SetFlags(f *flag.FlagSet) {}

func (c *balancesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger := session.Ledger()
	printMarkdown(renderer.Balances(ledger, ledger.Balances(), Currency()))
	return subcommands.ExitSuccess
}
