package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	cashbook "github.com/supramk4h/PersonalCashbook"
	"github.com/supramk4h/PersonalCashbook/renderer"
)

type reportCmd struct {
	account string
	start   string
	end     string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "statement of posted voucher lines" }
func (*reportCmd) Usage() string {
	return `pcb report [-a <account>] [-s <start>] [-e <end>]

  Prints posted voucher lines, ordered by date then voucher number. With -a
  the report covers a single account and carries a running balance whose
  opening value reconstructs all activity before the start date. Date bounds
  are inclusive.

Usage Examples:
$ pcb report -a Cash -s 2025-01-01 -e 2025-03-31

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Restrict to one account (name or id).")
	f.StringVar(&c.start, "s", "", "Start date YYYY-MM-DD, inclusive.")
	f.StringVar(&c.end, "e", "", "End date YYYY-MM-DD, inclusive.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger := session.Ledger()

	var filter cashbook.ReportFilter
	if c.account != "" {
		acc, err := resolveAccount(ledger, c.account)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		filter.AccountID = acc.ID
	}
	if c.start != "" {
		filter.Start, err = cashbook.ParseDate(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date '%s': %v\n", c.start, err)
			return subcommands.ExitUsageError
		}
	}
	if c.end != "" {
		filter.End, err = cashbook.ParseDate(c.end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date '%s': %v\n", c.end, err)
			return subcommands.ExitUsageError
		}
	}

	printMarkdown(renderer.Statement(ledger.BuildReport(filter), Currency()))
	return subcommands.ExitSuccess
}
