package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dispersion"
	"github.com/etnz/dispersion/renderer"
	"github.com/google/subcommands"
)

// changesCmd holds the flags for the 'changes' subcommand.
type changesCmd struct {
	date string
}

func (*changesCmd) Name() string     { return "changes" }
func (*changesCmd) Synopsis() string { return "display per-ticker day-over-day changes" }
func (*changesCmd) Usage() string {
	return `dsp changes [-d <date>]

  Displays the per-ticker changes between a date and the previous
  recorded date: quantity, price, greek and value changes. The date
  defaults to the last date of the log.
`
}

func (c *changesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date to inspect. Defaults to the last date of the log.")
}

func (c *changesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	r, err := dispersion.NewChangeReport(book, on)
	if errors.Is(err, dispersion.ErrNoPredecessor) {
		fmt.Printf("No earlier date than %s in the log: nothing to compare against.\n", on)
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing changes: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ChangesMarkdown(r))
	return subcommands.ExitSuccess
}
