package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/dispersion"
	md "github.com/nao1215/markdown"
)

// ChangesMarkdown renders the day-over-day change report to a markdown string.
func ChangesMarkdown(r *dispersion.ChangeReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Daily Changes")
	doc.PlainTextf("%s vs %s", r.Date, r.PrevDate)
	doc.LF()

	if len(r.Rows) == 0 {
		doc.PlainText("No positions on this date.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Underlying", "Direction", "Net Qty", "Price Chg", "Qty Chg", "Delta Chg", "Value Chg"},
	}
	for _, row := range r.Rows {
		table.Rows = append(table.Rows, []string{
			row.Ticker,
			row.Underlying,
			row.Direction.String(),
			row.NetQty.String(),
			row.PriceChange.SignedString(),
			row.QuantityChange.String(),
			fmt.Sprintf("%+.4f", row.DeltaChange),
			row.ValueChange.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// PositionsMarkdown renders the raw positions of a single day to a
// markdown string.
func PositionsMarkdown(s *dispersion.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Positions")
	doc.PlainTextf("As of %s", s.Date)
	doc.LF()

	if len(s.Positions) == 0 {
		doc.PlainText("No positions on this date.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Underlying", "Side", "Quantity", "Price", "Market Value", "Delta", "Vega"},
	}
	for _, p := range s.Positions {
		table.Rows = append(table.Rows, []string{
			p.Ticker,
			p.Underlying,
			p.Side.String(),
			p.Quantity.String(),
			p.Price.String(),
			p.MarketValue().String(),
			fmt.Sprintf("%.4f", p.DeltaSigned),
			fmt.Sprintf("%.4f", p.VegaSigned),
		})
	}
	doc.Table(table)

	return doc.String()
}
