package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteVoucherCmd struct {
	id string
}

func (*deleteVoucherCmd) Name() string     { return "delete-voucher" }
func (*deleteVoucherCmd) Synopsis() string { return "delete a voucher" }
func (*deleteVoucherCmd) Usage() string {
	return `pcb delete-voucher -id <id>

  Deletes a voucher, draft or posted. Its number is not reused.

`
}

func (c *deleteVoucherCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Voucher id (required, see 'pcb vouchers').")
}

func (c *deleteVoucherCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := session.DeleteTransaction(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting voucher: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted voucher %s\n", c.id)
	return subcommands.ExitSuccess
}
