package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/dispersion"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the window performance report to a markdown string.
func SummaryMarkdown(r *dispersion.WindowReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Performance Summary")
	doc.PlainTextf("Window: %s (%d days)", r.Range, r.Equity.Len())
	doc.LF()

	_, endEquity := r.Equity.Latest()
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Equity at Window End"),
			md.Bold(endEquity.String()),
		},
		Rows: [][]string{
			{"Equity at Window Start", r.StartEquity.String()},
			{"Total Return", r.TotalReturn.SignedString()},
			{"Sharpe (annualized)", r.Sharpe.String()},
			{"Max Drawdown", r.MaxDrawdown.PercentString()},
		},
	})

	doc.H2("Cumulative PnL by Leg")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Leg", "PnL", "% of Start Equity"},
		Rows: [][]string{
			{"Long", r.CumLong.SignedString(), r.CumLongPct.SignedString()},
			{"Short", r.CumShort.SignedString(), r.CumShortPct.SignedString()},
			{md.Bold("Total"), md.Bold(r.CumTotal.SignedString()), md.Bold(r.CumTotalPct.SignedString())},
		},
	})

	return doc.String()
}

// PnLMarkdown renders the daily PnL table of a window to a markdown string.
func PnLMarkdown(r *dispersion.WindowReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Daily PnL")
	doc.PlainTextf("Window: %s", r.Range)
	doc.LF()

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Long PnL", "Short PnL", "Total PnL", "Equity"},
	}
	for day, total := range r.DailyTotal.Values() {
		long, _ := r.DailyLong.Get(day)
		short, _ := r.DailyShort.Get(day)
		equity, _ := r.Equity.Get(day)
		table.Rows = append(table.Rows, []string{
			day.String(),
			long.SignedString(),
			short.SignedString(),
			total.SignedString(),
			equity.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// ExposureMarkdown renders the net greeks series with its hedge-activity
// flags to a markdown string.
func ExposureMarkdown(g *dispersion.GreeksSeries) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Net Exposure")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignCenter,
			md.AlignCenter,
		},
		Header: []string{"Date", "Net Delta", "Net Vega", "Delta Hedge", "Vega Hedge"},
	}
	for _, p := range g.Points() {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			fmt.Sprintf("%.4f", p.NetDelta),
			fmt.Sprintf("%.4f", p.NetVega),
			flag(p.DeltaHedge),
			flag(p.VegaHedge),
		})
	}
	doc.Table(table)

	return doc.String()
}

func flag(b bool) string {
	if b {
		return "X"
	}
	return ""
}
