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

// positionsCmd holds the flags for the 'positions' subcommand.
type positionsCmd struct {
	date string
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display the raw positions of a date" }
func (*positionsCmd) Usage() string {
	return `dsp positions [-d <date>]

  Displays the positions held on a date, with side, quantity, price,
  market value and signed greeks. The date defaults to the last date of
  the log.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date to inspect. Defaults to the last date of the log.")
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading position log: %v\n", err)
		return subcommands.ExitFailure
	}

	on, err := parseDay(book, c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.PositionsMarkdown(dispersion.NewSnapshot(book, on)))
	return subcommands.ExitSuccess
}
