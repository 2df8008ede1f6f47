package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type backupCmd struct{}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "take a manual backup" }
func (*backupCmd) Usage() string {
	return `pcb backup

  Writes a timestamped backup of the cashbook. Only the 20 most recent
  backups are retained; older ones are pruned.

`
}

func (c *backupCmd) SetFlags(f *flag.FlagSet) {}

func (c *backupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	key, err := session.Backup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating backup: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created backup %s\n", key)
	return subcommands.ExitSuccess
}
