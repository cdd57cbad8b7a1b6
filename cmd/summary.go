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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	from string
	to   string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the book's performance over a window" }
func (*summaryCmd) Usage() string {
	return `dsp summary [-from <date>] [-to <date>]

  Displays the performance of the book over a date window: equity,
  total return, Sharpe ratio, max drawdown and cumulative PnL by leg.
  The window defaults to the full history.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start of the window. Defaults to the first date of the log.")
	f.StringVar(&c.to, "to", "", "End of the window. Defaults to the last date of the log.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, status := windowReport(c.from, c.to)
	if status != subcommands.ExitSuccess {
		return status
	}

	printMarkdown(renderer.SummaryMarkdown(w))
	return subcommands.ExitSuccess
}

// windowReport loads the book and computes the window report shared by
// the summary, pnl and chart commands.
func windowReport(from, to string) (*dispersion.WindowReport, subcommands.ExitStatus) {
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading position log: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	r, err := parseWindow(book, from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing window: %v\n", err)
		return nil, subcommands.ExitUsageError
	}

	s, err := dispersion.NewPnLSeries(book)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing PnL: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	w, err := dispersion.NewWindowReport(s, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing window %s: %v\n", r, err)
		return nil, subcommands.ExitFailure
	}
	return w, subcommands.ExitSuccess
}
