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

type updateAccountCmd struct {
	account   string
	name      string
	accType   string
	narration string
	opening   string
}

func (*updateAccountCmd) Name() string     { return "update-account" }
func (*updateAccountCmd) Synopsis() string { return "edit an existing account" }
func (*updateAccountCmd) Usage() string {
	return `pcb update-account -a <account> [-name <name>] [-type <type>] [-m <narration>] [-opening <amount>]

  Updates the given fields of an account; omitted flags are left untouched.
  The account serial number never changes.

Usage Examples:
$ pcb update-account -a Cash -opening 250.00

`
}

func (c *updateAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account name or id (required).")
	f.StringVar(&c.name, "name", "", "New display name.")
	f.StringVar(&c.accType, "type", "", "New classification.")
	f.StringVar(&c.narration, "m", "", "New description.")
	f.StringVar(&c.opening, "opening", "", "New opening balance.")
}

func (c *updateAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "Error: -a flag is required.")
		return subcommands.ExitUsageError
	}

	var patch cashbook.AccountPatch
	if c.name != "" {
		patch.Name = &c.name
	}
	if c.accType != "" {
		patch.Type = &c.accType
	}
	if c.narration != "" {
		patch.Narration = &c.narration
	}
	if c.opening != "" {
		opening, err := decimal.NewFromString(c.opening)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing opening balance '%s': %v\n", c.opening, err)
			return subcommands.ExitUsageError
		}
		patch.OpeningBalance = &opening
	}

	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}

	acc, err := resolveAccount(session.Ledger(), c.account)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	updated, err := session.UpdateAccount(acc.ID, patch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating account: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated account %q (No %d)\n", updated.Name, updated.Serial)
	return subcommands.ExitSuccess
}
