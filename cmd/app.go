// Package cmd implements the CLI application to analyze a daily
// position log.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/dispersion"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&pnlCmd{},
	&exposureCmd{},
	&changesCmd{},
	&positionsCmd{},
	&chartCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var logFile = flag.String("log", "positions.csv", "Path to the daily position log (CSV, or JSON with -json-path)")
var currency = flag.String("currency", dispersion.DefaultCurrency, "Reporting currency of the position log")
var jsonPath = flag.String("json-path", dispersion.DefaultPositionsPath, "JSONPath locating the rows in a JSON position log")
var hedgeTicker = flag.String("hedge-ticker", dispersion.DefaultHedgeConfig().DeltaHedgeTicker, "Ticker of the designated delta-hedge instrument")
var vegaUnderlying = flag.String("vega-underlying", dispersion.DefaultHedgeConfig().VegaUnderlying, "Underlying whose option quantity increases count as vega hedges")

// HedgeConfig returns the hedge identification configured by the app flags.
func HedgeConfig() dispersion.HedgeConfig {
	cfg := dispersion.DefaultHedgeConfig()
	cfg.DeltaHedgeTicker = *hedgeTicker
	cfg.VegaUnderlying = *vegaUnderlying
	return cfg
}

// LoadBook reads the position log named by the app flags into a Book.
// A ".json" extension selects the JSON loader, anything else reads CSV.
func LoadBook() (*dispersion.Book, error) {
	var records []dispersion.Position
	var err error
	if strings.HasSuffix(*logFile, ".json") {
		f, oerr := os.Open(*logFile)
		if oerr != nil {
			return nil, fmt.Errorf("could not open position log %q: %w", *logFile, oerr)
		}
		defer f.Close()
		records, err = dispersion.LoadJSON(f, *jsonPath, *currency)
	} else {
		records, err = dispersion.LoadCSVFile(*logFile, *currency)
	}
	if err != nil {
		return nil, err
	}
	return dispersion.NewBook(records, *currency), nil
}

// parseWindow resolves the -from/-to flags of a report command against
// the book's history: empty values default to the full history.
func parseWindow(b *dispersion.Book, from, to string) (dispersion.Range, error) {
	first, ok := b.First()
	if !ok {
		return dispersion.Range{}, dispersion.ErrEmptyHistory
	}
	last, _ := b.Last()

	r := dispersion.NewRange(first, last)
	if from != "" {
		d, err := dispersion.ParseDate(from)
		if err != nil {
			return r, err
		}
		r.From = d
	}
	if to != "" {
		d, err := dispersion.ParseDate(to)
		if err != nil {
			return r, err
		}
		r.To = d
	}
	return r, nil
}

// parseDay resolves a -d flag against the book's history: an empty
// value defaults to the latest date, any other value snaps to the
// nearest recorded day.
func parseDay(b *dispersion.Book, date string) (dispersion.Date, error) {
	if date == "" {
		last, ok := b.Last()
		if !ok {
			return dispersion.Date{}, dispersion.ErrEmptyHistory
		}
		return last, nil
	}
	d, err := dispersion.ParseDate(date)
	if err != nil {
		return dispersion.Date{}, err
	}
	nearest, ok := dispersion.NearestDate(b.Days(), d)
	if !ok {
		return dispersion.Date{}, dispersion.ErrEmptyHistory
	}
	return nearest, nil
}
