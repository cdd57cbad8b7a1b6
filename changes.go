package dispersion

import "sort"

// NetDirection classifies a ticker's net position from its signed net
// quantity.
type NetDirection int

const (
	Flat NetDirection = iota
	NetLong
	NetShort
)

func (d NetDirection) String() string {
	switch d {
	case NetLong:
		return "net_long"
	case NetShort:
		return "net_short"
	default:
		return "flat"
	}
}

// classify returns the net direction of a signed net quantity.
func classify(q Quantity) NetDirection {
	switch {
	case q.IsPositive():
		return NetLong
	case q.IsNegative():
		return NetShort
	default:
		return Flat
	}
}

// ChangeRow is the day-over-day change of one ticker between the
// inspection date and its predecessor. All quantities and greeks are
// signed net values.
type ChangeRow struct {
	Ticker     string
	Underlying string
	Direction  NetDirection

	NetQty    Quantity // today's signed net quantity
	Price     Money    // today's latest observed price
	PrevPrice Money
	Value     Money // today's signed market value
	PrevValue Money

	PriceChange    Money
	QuantityChange Quantity
	DeltaChange    float64
	VegaChange     float64

	// ValueChange marks the previously held size at the new price:
	// prev_quantity x price_change. It deliberately excludes today's
	// quantity change, matching the PnL engine's convention of pricing
	// only the previously held size.
	ValueChange Money
}

// ChangeReport lists per-ticker day-over-day changes for one inspection
// date, ordered by descending ValueChange.
type ChangeReport struct {
	Date     Date
	PrevDate Date
	Rows     []ChangeRow
}

// tickerAgg is one ticker's signed aggregate over a single day.
type tickerAgg struct {
	underlying string
	qty        Quantity
	price      Money
	delta      float64
	vega       float64
	value      Money
}

// aggregateDay sums the signed positions of one day by ticker, keeping
// the latest observed underlying label and price.
func aggregateDay(positions []SignedPosition) map[string]*tickerAgg {
	agg := make(map[string]*tickerAgg)
	for _, p := range positions {
		a, ok := agg[p.Ticker]
		if !ok {
			a = &tickerAgg{}
			agg[p.Ticker] = a
		}
		a.underlying = p.Underlying
		a.price = p.Price
		a.qty = a.qty.Add(p.QtySigned)
		a.delta += p.DeltaSigned
		a.vega += p.VegaSigned
		a.value = a.value.Add(p.MVSigned)
	}
	return agg
}

// NewChangeReport computes per-ticker changes between the inspection
// date and the immediately preceding distinct date present anywhere in
// the log (a global predecessor, not per ticker). It returns
// ErrNoPredecessor when the date has no earlier date in the history.
//
// Tickers absent on the predecessor day read as a change from a null
// baseline: zero prior quantity/greeks/value, and a prior price equal
// to today's, so their price change is 0 rather than a spurious jump.
func NewChangeReport(b *Book, on Date) (*ChangeReport, error) {
	prevDate, err := b.Predecessor(on)
	if err != nil {
		return nil, err
	}

	today := aggregateDay(b.On(on))
	prev := aggregateDay(b.On(prevDate))

	report := &ChangeReport{Date: on, PrevDate: prevDate}
	for ticker, t := range today {
		row := ChangeRow{
			Ticker:     ticker,
			Underlying: t.underlying,
			Direction:  classify(t.qty),
			NetQty:     t.qty,
			Price:      t.price,
			Value:      t.value,
		}

		p, held := prev[ticker]
		if held {
			row.PrevPrice = p.price
			row.PrevValue = p.value
			row.QuantityChange = t.qty.Sub(p.qty)
			row.DeltaChange = t.delta - p.delta
			row.VegaChange = t.vega - p.vega
			row.PriceChange = t.price.Sub(p.price)
			row.ValueChange = row.PriceChange.Mul(p.qty)
		} else {
			// Null baseline: prev price defaults to today's.
			row.PrevPrice = t.price
			row.PrevValue = M(0, b.Currency())
			row.QuantityChange = t.qty
			row.DeltaChange = t.delta
			row.VegaChange = t.vega
			row.PriceChange = M(0, b.Currency())
			row.ValueChange = M(0, b.Currency())
		}
		report.Rows = append(report.Rows, row)
	}

	// Biggest positive value change first; ticker breaks ties for a
	// deterministic table.
	sort.Slice(report.Rows, func(i, j int) bool {
		a, c := report.Rows[i], report.Rows[j]
		if !a.ValueChange.Equal(c.ValueChange) {
			return a.ValueChange.GreaterThan(c.ValueChange)
		}
		return a.Ticker < c.Ticker
	})

	return report, nil
}
