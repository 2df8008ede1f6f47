package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/supramk4h/PersonalCashbook/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "dashboard overview of the cashbook" }
func (*summaryCmd) Usage() string {
	return `pcb summary

  Shows the cash and bank totals and the voucher counts.

`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Summary(session.Ledger().Summarize(), Currency()))
	return subcommands.ExitSuccess
}
