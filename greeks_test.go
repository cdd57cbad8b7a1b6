package dispersion

import (
	"math"
	"testing"
)

func TestNewGreeksSeries_NetExposure(t *testing.T) {
	// Net greeks sum signed per-unit greeks scaled by quantity: the short
	// leg subtracts.
	book := newTestBook(
		pos("2025-01-01", "SPY_C100", "SPY", Long, 10, 5, 0.5, 0.2),
		pos("2025-01-01", "AAPL_C200", "AAPL", Short, 4, 8, 0.6, 0.3),
	)
	g := NewGreeksSeries(book, DefaultHedgeConfig())
	if g.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", g.Len())
	}
	p := g.Points()[0]
	// 10 x 0.5 - 4 x 0.6 = 2.6
	if want := 2.6; math.Abs(p.NetDelta-want) > 1e-9 {
		t.Errorf("NetDelta = %v, want %v", p.NetDelta, want)
	}
	// 10 x 0.2 - 4 x 0.3 = 0.8
	if want := 0.8; math.Abs(p.NetVega-want) > 1e-9 {
		t.Errorf("NetVega = %v, want %v", p.NetVega, want)
	}
}

func TestNewGreeksSeries_DeltaHedgeFlag(t *testing.T) {
	book := newTestBook(
		pos("2025-01-01", "SPY_HEDGE_STOCK", "SPY", Short, 100, 500, 1, 0),
		pos("2025-01-02", "SPY_HEDGE_STOCK", "SPY", Short, 100, 501, 1, 0),
		pos("2025-01-03", "SPY_HEDGE_STOCK", "SPY", Short, 120, 502, 1, 0),
		pos("2025-01-06", "SPY_HEDGE_STOCK", "SPY", Long, 120, 503, 1, 0),
	)
	g := NewGreeksSeries(book, DefaultHedgeConfig())

	want := map[string]bool{
		"2025-01-01": false, // first record, not a hedge event
		"2025-01-02": false, // unchanged signed quantity
		"2025-01-03": true,  // -100 -> -120
		"2025-01-06": true,  // -120 -> +120, side flip
	}
	for _, p := range g.Points() {
		if got := p.DeltaHedge; got != want[p.Date.String()] {
			t.Errorf("DeltaHedge(%s) = %v, want %v", p.Date, got, want[p.Date.String()])
		}
	}
}

func TestNewGreeksSeries_VegaHedgeFlag(t *testing.T) {
	book := newTestBook(
		// SPY options (hedge stock excluded from the option group).
		pos("2025-01-01", "SPY_C550", "SPY", Long, 10, 5, 0.5, 0.2),
		pos("2025-01-01", "SPY_HEDGE_STOCK", "SPY", Short, 100, 550, 1, 0),
		pos("2025-01-02", "SPY_C550", "SPY", Long, 10, 5, 0.5, 0.2),
		pos("2025-01-03", "SPY_C550", "SPY", Long, 15, 5, 0.5, 0.2), // increase
		pos("2025-01-06", "SPY_C550", "SPY", Long, 12, 5, 0.5, 0.2), // decrease
	)
	g := NewGreeksSeries(book, DefaultHedgeConfig())

	want := map[string]bool{
		"2025-01-01": false, // first record
		"2025-01-02": false, // unchanged
		"2025-01-03": true,  // +10 -> +15
		"2025-01-06": false, // decrease is not a vega hedge
	}
	for _, p := range g.Points() {
		if got := p.VegaHedge; got != want[p.Date.String()] {
			t.Errorf("VegaHedge(%s) = %v, want %v", p.Date, got, want[p.Date.String()])
		}
	}
}

func TestNewGreeksSeries_NoHedgeInstruments(t *testing.T) {
	// Without the configured hedge ticker or underlying anywhere in the
	// history, every flag stays false.
	book := newTestBook(
		pos("2025-01-01", "AAPL_C200", "AAPL", Long, 10, 5, 0.5, 0.2),
		pos("2025-01-02", "AAPL_C200", "AAPL", Long, 20, 6, 0.5, 0.2),
	)
	g := NewGreeksSeries(book, DefaultHedgeConfig())
	for _, p := range g.Points() {
		if p.DeltaHedge || p.VegaHedge {
			t.Errorf("%s: flags = (%v, %v), want (false, false)", p.Date, p.DeltaHedge, p.VegaHedge)
		}
	}
}

func TestGreeksSeries_Slice(t *testing.T) {
	book := newTestBook(
		pos("2025-01-01", "AAA", "SPY", Long, 1, 1, 1, 1),
		pos("2025-01-02", "AAA", "SPY", Long, 1, 1, 1, 1),
		pos("2025-01-03", "AAA", "SPY", Long, 1, 1, 1, 1),
	)
	g := NewGreeksSeries(book, DefaultHedgeConfig())
	s := g.Slice(Range{From: MustParse("2025-01-02"), To: MustParse("2025-01-03")})
	if s.Len() != 2 {
		t.Fatalf("Slice().Len() = %d, want 2", s.Len())
	}
	if got := s.Points()[0].Date; got != MustParse("2025-01-02") {
		t.Errorf("first sliced date = %s, want 2025-01-02", got)
	}
}
