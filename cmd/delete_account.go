package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteAccountCmd struct {
	account string
}

func (*deleteAccountCmd) Name() string     { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string { return "delete an unused account" }
func (*deleteAccountCmd) Usage() string {
	return `pcb delete-account -a <account>

  Deletes an account. Refused when any voucher, draft or posted, still
  references it.

`
}

func (c *deleteAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account name or id (required).")
}

func (c *deleteAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "Error: -a flag is required.")
		return subcommands.ExitUsageError
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
	if err := session.DeleteAccount(acc.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting account: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted account %q (No %d)\n", acc.Name, acc.Serial)
	return subcommands.ExitSuccess
}
