package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dispersion"
	"github.com/etnz/dispersion/renderer"
	"github.com/google/subcommands"
)

// exposureCmd holds the flags for the 'exposure' subcommand.
type exposureCmd struct {
	from string
	to   string
}

func (*exposureCmd) Name() string     { return "exposure" }
func (*exposureCmd) Synopsis() string { return "display daily net greeks and hedge activity" }
func (*exposureCmd) Usage() string {
	return `dsp exposure [-from <date>] [-to <date>]

  Displays the daily net delta and net vega of the book, and flags the
  days on which delta or vega hedging trades occurred.
`
}

func (c *exposureCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start of the window. Defaults to the first date of the log.")
	f.StringVar(&c.to, "to", "", "End of the window. Defaults to the last date of the log.")
}

func (c *exposureCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading position log: %v\n", err)
		return subcommands.ExitFailure
	}

	r, err := parseWindow(book, c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing window: %v\n", err)
		return subcommands.ExitUsageError
	}

	g := dispersion.NewGreeksSeries(book, HedgeConfig()).Slice(r)
	printMarkdown(renderer.ExposureMarkdown(g))
	return subcommands.ExitSuccess
}
