package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/supramk4h/PersonalCashbook/cmd"
)

// completion builds the shell completion tree from the registered commands.
func completion() *complete.Command {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	sub["export"].Flags = map[string]complete.Predictor{"o": predict.Files("*")}
	sub["import"].Flags = map[string]complete.Predictor{"i": predict.Files("*")}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data":     predict.Dirs("*"),
			"currency": predict.Something,
			"v":        predict.Nothing,
		},
	}
}

func main() {
	// No-op unless the shell invoked us for completion.
	completion().Complete("pcb")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
