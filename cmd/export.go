package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the cashbook as JSON" }
func (*exportCmd) Usage() string {
	return `pcb export [-o <file>]

  Writes the whole cashbook as a JSON document to stdout, or to the given
  file. The document round-trips through 'pcb import'.

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Destination file (default stdout).")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}
	if err := session.Export(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
