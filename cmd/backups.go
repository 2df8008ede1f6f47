package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/supramk4h/PersonalCashbook/renderer"
)

type backupsCmd struct{}

func (*backupsCmd) Name() string     { return "backups" }
func (*backupsCmd) Synopsis() string { return "list retained backups" }
func (*backupsCmd) Usage() string {
	return `pcb backups

  Lists the retained backups, newest first.

`
}

func (c *backupsCmd) SetFlags(f *flag.FlagSet) {}

func (c *backupsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	infos, err := session.Backups()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing backups: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BackupList(infos))
	return subcommands.ExitSuccess
}
