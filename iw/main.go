package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/investwise/investwise/cmd"
)

// completion describes the CLI for shell completion. It returns immediately
// when not running in completion mode.
func completion() {
	report := &complete.Command{
		Flags: map[string]complete.Predictor{
			"user": predict.Something,
		},
	}
	export := &complete.Command{
		Flags: map[string]complete.Predictor{
			"user": predict.Something,
			"o":    predict.Dirs("*"),
		},
	}
	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"show":     report,
			"preview":  report,
			"export":   export,
			"insights": report,
		},
		Flags: map[string]complete.Predictor{
			"goals-file":    predict.Files("*.jsonl"),
			"accounts-file": predict.Files("*.txt"),
		},
	}
	root.Complete("iw")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(subcommands.HelpCommand(), "")
	commander.Register(subcommands.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
