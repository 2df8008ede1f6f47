package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type restoreCmd struct {
	key string
}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "restore the cashbook from a backup" }
func (*restoreCmd) Usage() string {
	return `pcb restore -key <key>

  Replaces the cashbook with the named backup. The current state is backed
  up first, so a mistaken restore can itself be undone.

`
}

func (c *restoreCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.key, "key", "", "Backup key (required, see 'pcb backups').")
}

func (c *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.key == "" {
		fmt.Fprintln(os.Stderr, "Error: -key flag is required.")
		return subcommands.ExitUsageError
	}

	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := session.Restore(c.key); err != nil {
		fmt.Fprintf(os.Stderr, "Error restoring backup: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Restored backup %s\n", c.key)
	return subcommands.ExitSuccess
}
