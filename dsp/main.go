package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/dispersion/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. It exits the
// process when invoked by the shell's completion hook.
func completion() {
	window := map[string]complete.Predictor{
		"from": predict.Nothing,
		"to":   predict.Nothing,
	}
	day := map[string]complete.Predictor{
		"d": predict.Nothing,
	}
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"summary":   {Flags: window},
			"pnl":       {Flags: window},
			"exposure":  {Flags: window},
			"changes":   {Flags: day},
			"positions": {Flags: day},
			"chart": {Flags: map[string]complete.Predictor{
				"from": predict.Nothing,
				"to":   predict.Nothing,
				"kind": predict.Set{"equity", "exposure"},
				"o":    predict.Files("*.png"),
			}},
			"topic":  {Args: predict.Set{"readme", "position-log", "pnl", "hedging", "metrics", "*"}},
			"assist": {},
		},
		Flags: map[string]complete.Predictor{
			"log":             predict.Files("*"),
			"currency":        predict.Nothing,
			"json-path":       predict.Nothing,
			"hedge-ticker":    predict.Nothing,
			"vega-underlying": predict.Nothing,
		},
	}
	c.Complete("dsp")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
