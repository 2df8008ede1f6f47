package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "wipe the cashbook" }
func (*resetCmd) Usage() string {
	return `pcb reset -force

  Replaces the cashbook with an empty one. The current state is backed up
  first and can be brought back with 'pcb restore'.

`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Confirm the reset.")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "Error: reset wipes the cashbook; pass -force to confirm.")
		return subcommands.ExitUsageError
	}

	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := session.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Cashbook reset; previous state backed up.")
	return subcommands.ExitSuccess
}
