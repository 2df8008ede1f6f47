package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a cashbook from JSON" }
func (*importCmd) Usage() string {
	return `pcb import [-i <file>]

  Replaces the cashbook with the JSON document read from stdin, or from the
  given file. The document is validated first and the current state is
  backed up before being overwritten.

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Source file (default stdin).")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}

	in := os.Stdin
	if c.input != "" {
		in, err = os.Open(c.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer in.Close()
	}
	if err := session.Import(in); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	l := session.Ledger()
	fmt.Printf("Imported %d account(s) and %d voucher(s)\n", len(l.Accounts), len(l.Transactions))
	return subcommands.ExitSuccess
}
