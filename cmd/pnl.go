package cmd

import (
	"context"
	"flag"

	"github.com/etnz/dispersion/renderer"
	"github.com/google/subcommands"
)

// pnlCmd holds the flags for the 'pnl' subcommand.
type pnlCmd struct {
	from string
	to   string
}

func (*pnlCmd) Name() string     { return "pnl" }
func (*pnlCmd) Synopsis() string { return "display the daily PnL table of a window" }
func (*pnlCmd) Usage() string {
	return `dsp pnl [-from <date>] [-to <date>]

  Displays the daily long, short and total PnL of each date of the
  window, together with the equity curve.
`
}

func (c *pnlCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start of the window. Defaults to the first date of the log.")
	f.StringVar(&c.to, "to", "", "End of the window. Defaults to the last date of the log.")
}

func (c *pnlCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, status := windowReport(c.from, c.to)
	if status != subcommands.ExitSuccess {
		return status
	}

	printMarkdown(renderer.PnLMarkdown(w))
	return subcommands.ExitSuccess
}
