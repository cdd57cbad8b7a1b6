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

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	from   string
	to     string
	kind   string
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the equity or exposure curve as a PNG" }
func (*chartCmd) Usage() string {
	return `dsp chart [-kind equity|exposure] [-from <date>] [-to <date>] [-o <file.png>]

  Renders a PNG line chart of the window: the equity curve with its
  headline statistics, or the daily net delta and vega.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start of the window. Defaults to the first date of the log.")
	f.StringVar(&c.to, "to", "", "End of the window. Defaults to the last date of the log.")
	f.StringVar(&c.kind, "kind", "equity", "Chart to render: equity or exposure.")
	f.StringVar(&c.output, "o", "chart.png", "Output PNG file.")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var buf []byte

	switch c.kind {
	case "equity":
		w, status := windowReport(c.from, c.to)
		if status != subcommands.ExitSuccess {
			return status
		}
		var err error
		buf, err = renderer.EquityChart(w)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
			return subcommands.ExitFailure
		}

	case "exposure":
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
		buf, err = renderer.ExposureChart(g)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
			return subcommands.ExitFailure
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown chart kind %q, want equity or exposure.\n", c.kind)
		return subcommands.ExitUsageError
	}

	if err := os.WriteFile(c.output, buf, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s\n", c.output)
	return subcommands.ExitSuccess
}
