package dispersion

// HedgeConfig identifies the instruments whose activity marks hedging
// trades. These are configuration, not domain constants: another book
// may hedge with different instruments.
type HedgeConfig struct {
	// DeltaHedgeTicker is the designated delta-hedge instrument; its
	// ticker identity distinguishes it from option positions.
	DeltaHedgeTicker string
	// VegaUnderlying marks the option group whose signed quantity
	// increases are read as vega hedges.
	VegaUnderlying string
	// Tolerance guards the vega-hedge comparison against floating-point
	// noise near zero.
	Tolerance float64
}

// DefaultHedgeConfig returns the hedge instruments of the dispersion
// book this package was built for.
func DefaultHedgeConfig() HedgeConfig {
	return HedgeConfig{
		DeltaHedgeTicker: "SPY_HEDGE_STOCK",
		VegaUnderlying:   "SPY",
		Tolerance:        1e-8,
	}
}

// GreeksPoint is one day of net portfolio exposure, annotated with the
// hedge-activity flags. The flags are informational only; PnL never
// consumes them.
type GreeksPoint struct {
	Date       Date
	NetDelta   float64
	NetVega    float64
	DeltaHedge bool
	VegaHedge  bool
}

// GreeksSeries is the date-indexed net delta/vega exposure of the book.
type GreeksSeries struct {
	points []GreeksPoint
}

// Len returns the number of days in the series.
func (g *GreeksSeries) Len() int { return len(g.points) }

// Points returns the chronological exposure points. The returned slice
// is shared and must not be modified.
func (g *GreeksSeries) Points() []GreeksPoint { return g.points }

// Slice returns a new series restricted to the dates within r, inclusive.
func (g *GreeksSeries) Slice(r Range) *GreeksSeries {
	s := &GreeksSeries{}
	for _, p := range g.points {
		if r.Contains(p.Date) {
			s.points = append(s.points, p)
		}
	}
	return s
}

// NewGreeksSeries aggregates signed delta and vega exposure per day and
// flags the days on which hedging trades occurred.
//
// The delta-hedge flag is true on any day the signed quantity of the
// configured hedge instrument differs from its own previous recorded
// value; the instrument's first record is never a hedge event.
//
// The vega-hedge flag is true on any day the total signed quantity of
// option positions on the configured underlying (the hedge instrument
// excluded) strictly increases by more than the tolerance. When no such
// options exist anywhere in the history, every day is false.
func NewGreeksSeries(b *Book, cfg HedgeConfig) *GreeksSeries {
	var netDelta, netVega History[float64]
	var hedgeQty, optQty History[float64]

	for p := range b.Positions() {
		// DeltaSigned/VegaSigned are per-unit and already signed, so the
		// exposure scales by the quantity magnitude.
		netDelta.AppendAdd(p.Date, p.DeltaSigned*p.Quantity.AsFloat())
		netVega.AppendAdd(p.Date, p.VegaSigned*p.Quantity.AsFloat())

		if p.Ticker == cfg.DeltaHedgeTicker {
			hedgeQty.AppendAdd(p.Date, p.QtySigned.AsFloat())
		}
		if p.Underlying == cfg.VegaUnderlying && p.Ticker != cfg.DeltaHedgeTicker {
			optQty.AppendAdd(p.Date, p.QtySigned.AsFloat())
		}
	}

	deltaFlags := changedDays(&hedgeQty, func(prev, cur float64) bool {
		return cur != prev
	})
	vegaFlags := changedDays(&optQty, func(prev, cur float64) bool {
		return cur-prev > cfg.Tolerance
	})

	g := &GreeksSeries{points: make([]GreeksPoint, 0, netDelta.Len())}
	for day, delta := range netDelta.Values() {
		vega, _ := netVega.Get(day)
		g.points = append(g.points, GreeksPoint{
			Date:       day,
			NetDelta:   delta,
			NetVega:    vega,
			DeltaHedge: deltaFlags[day],
			VegaHedge:  vegaFlags[day],
		})
	}
	return g
}

// changedDays walks a per-day series and marks the days on which the
// value changed versus the previous recorded day, according to changed.
// The first recorded day is never marked.
func changedDays(h *History[float64], changed func(prev, cur float64) bool) map[Date]bool {
	flags := make(map[Date]bool, h.Len())
	first := true
	var prev float64
	for day, cur := range h.Values() {
		if !first && changed(prev, cur) {
			flags[day] = true
		}
		first = false
		prev = cur
	}
	return flags
}
