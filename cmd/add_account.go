package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	cashbook "github.com/supramk4h/PersonalCashbook"
)

type addAccountCmd struct {
	name      string
	accType   string
	narration string
	opening   string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "create a new account" }
func (*addAccountCmd) Usage() string {
	return `pcb add-account -name <name> [-type <type>] [-m <narration>] [-opening <amount>]

  Creates an account and assigns it the next serial number.

Usage Examples:
$ pcb add-account -name "Cash" -type Cash -opening 100.00

`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account display name (required).")
	f.StringVar(&c.accType, "type", "", "Free-text classification, e.g. Cash or Bank.")
	f.StringVar(&c.narration, "m", "", "Optional description.")
	f.StringVar(&c.opening, "opening", "0", "Opening balance before any transaction.")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name flag is required.")
		return subcommands.ExitUsageError
	}
	opening, err := decimal.NewFromString(c.opening)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing opening balance '%s': %v\n", c.opening, err)
		return subcommands.ExitUsageError
	}

	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}

	acc, err := session.CreateAccount(cashbook.AccountSpec{
		Name:           c.name,
		Type:           c.accType,
		Narration:      c.narration,
		OpeningBalance: opening,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating account: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created account %q (No %d)\n", acc.Name, acc.Serial)
	return subcommands.ExitSuccess
}
