package dispersion

import (
	"errors"
	"testing"
)

func TestNewPnLSeries_EmptyHistory(t *testing.T) {
	_, err := NewPnLSeries(newTestBook())
	if !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("NewPnLSeries() error = %v, want ErrEmptyHistory", err)
	}
}

func TestNewPnLSeries_SingleLongTicker(t *testing.T) {
	// Two days of a single long position: PnL is zero on the first day,
	// prev_qty x dP on the second.
	book := newTestBook(
		pos("2025-01-01", "AAA", "AAA", Long, 10, 100, 0.5, 0),
		pos("2025-01-02", "AAA", "AAA", Long, 10, 105, 0.5, 0),
	)
	s, err := NewPnLSeries(book)
	if err != nil {
		t.Fatalf("NewPnLSeries() error = %v", err)
	}

	d1, d2 := MustParse("2025-01-01"), MustParse("2025-01-02")

	if got, _ := s.TotalPnL.Get(d1); !got.Equal(USD(0)) {
		t.Errorf("TotalPnL(d1) = %v, want %v", got, USD(0))
	}
	if got, _ := s.LongPnL.Get(d2); !got.Equal(USD(50)) {
		t.Errorf("LongPnL(d2) = %v, want %v", got, USD(50))
	}
	if got, _ := s.TotalPnL.Get(d2); !got.Equal(USD(50)) {
		t.Errorf("TotalPnL(d2) = %v, want %v", got, USD(50))
	}
	if !s.CapitalBase.Equal(USD(1000)) {
		t.Errorf("CapitalBase = %v, want %v", s.CapitalBase, USD(1000))
	}
	if got, _ := s.Equity.Get(d2); !got.Equal(USD(1050)) {
		t.Errorf("Equity(d2) = %v, want %v", got, USD(1050))
	}
}

func TestNewPnLSeries_ShortLeg(t *testing.T) {
	// A short position profits when the price falls.
	book := newTestBook(
		pos("2025-01-01", "BBB", "BBB", Short, 5, 50, 0.4, 1),
		pos("2025-01-02", "BBB", "BBB", Short, 5, 40, 0.4, 1),
	)
	s, err := NewPnLSeries(book)
	if err != nil {
		t.Fatalf("NewPnLSeries() error = %v", err)
	}

	d2 := MustParse("2025-01-02")
	if got, _ := s.ShortPnL.Get(d2); !got.Equal(USD(50)) {
		t.Errorf("ShortPnL(d2) = %v, want %v", got, USD(50))
	}
	if got, _ := s.LongPnL.Get(d2); !got.Equal(USD(0)) {
		t.Errorf("LongPnL(d2) = %v, want %v", got, USD(0))
	}
	// The short notional counts into the capital base as well.
	if !s.CapitalBase.Equal(USD(250)) {
		t.Errorf("CapitalBase = %v, want %v", s.CapitalBase, USD(250))
	}
}

func TestNewPnLSeries_PerTickerShift(t *testing.T) {
	// CCC has no record on 01-02: its 01-03 PnL must use its own
	// previous record (01-01), not the calendar predecessor.
	book := newTestBook(
		pos("2025-01-01", "AAA", "AAA", Long, 1, 10, 0, 0),
		pos("2025-01-01", "CCC", "CCC", Long, 2, 100, 0, 0),
		pos("2025-01-02", "AAA", "AAA", Long, 1, 10, 0, 0),
		pos("2025-01-03", "AAA", "AAA", Long, 1, 10, 0, 0),
		pos("2025-01-03", "CCC", "CCC", Long, 2, 110, 0, 0),
	)
	s, err := NewPnLSeries(book)
	if err != nil {
		t.Fatalf("NewPnLSeries() error = %v", err)
	}

	d3 := MustParse("2025-01-03")
	// 2 x (110 - 100) = 20, bridging the gap day.
	if got, _ := s.TotalPnL.Get(d3); !got.Equal(USD(20)) {
		t.Errorf("TotalPnL(d3) = %v, want %v", got, USD(20))
	}
}

func TestNewPnLSeries_FirstRecordPnLIsZero(t *testing.T) {
	book := newTestBook(
		pos("2025-01-01", "AAA", "AAA", Long, 1, 10, 0, 0),
		pos("2025-01-02", "AAA", "AAA", Long, 1, 12, 0, 0),
		pos("2025-01-02", "DDD", "DDD", Short, 3, 7, 0, 0), // first appearance mid-history
		pos("2025-01-03", "DDD", "DDD", Short, 3, 8, 0, 0),
	)
	s, err := NewPnLSeries(book)
	if err != nil {
		t.Fatalf("NewPnLSeries() error = %v", err)
	}
	for _, td := range s.TickerDays {
		if !td.HasPrev && !td.TotalPnL().IsZero() {
			t.Errorf("first record of %s on %s has PnL %v, want 0", td.Ticker, td.Date, td.TotalPnL())
		}
	}
	// DDD's first day is 01-02, not the history's first day.
	d2 := MustParse("2025-01-02")
	if got, _ := s.TotalPnL.Get(d2); !got.Equal(USD(2)) {
		t.Errorf("TotalPnL(d2) = %v, want %v (AAA only)", got, USD(2))
	}
}

func TestNewPnLSeries_Additivity(t *testing.T) {
	// Per-day long + short PnL summed across tickers equals the
	// portfolio total.
	book := newTestBook(
		pos("2025-01-01", "AAA", "SPY", Long, 10, 100, 0.5, 2),
		pos("2025-01-01", "BBB", "SPY", Short, 4, 20, 0.3, 1),
		pos("2025-01-02", "AAA", "SPY", Long, 10, 103, 0.5, 2),
		pos("2025-01-02", "BBB", "SPY", Short, 4, 25, 0.3, 1),
		pos("2025-01-03", "AAA", "SPY", Long, 8, 99, 0.5, 2),
		pos("2025-01-03", "BBB", "SPY", Short, 6, 22, 0.3, 1),
	)
	s, err := NewPnLSeries(book)
	if err != nil {
		t.Fatalf("NewPnLSeries() error = %v", err)
	}
	for day, total := range s.TotalPnL.Values() {
		long, _ := s.LongPnL.Get(day)
		short, _ := s.ShortPnL.Get(day)
		if got := long.Add(short); !got.Equal(total) {
			t.Errorf("%s: long+short = %v, want total %v", day, got, total)
		}
	}
}

func TestNewPnLSeries_EquityRecurrence(t *testing.T) {
	book := newTestBook(
		pos("2025-01-01", "AAA", "SPY", Long, 10, 100, 0.5, 2),
		pos("2025-01-02", "AAA", "SPY", Long, 10, 103, 0.5, 2),
		pos("2025-01-03", "AAA", "SPY", Long, 10, 101, 0.5, 2),
		pos("2025-01-06", "AAA", "SPY", Long, 10, 104, 0.5, 2),
	)
	s, err := NewPnLSeries(book)
	if err != nil {
		t.Fatalf("NewPnLSeries() error = %v", err)
	}

	prev := s.CapitalBase
	first := true
	for day, equity := range s.Equity.Values() {
		pnl, _ := s.TotalPnL.Get(day)
		if want := prev.Add(pnl); !equity.Equal(want) {
			t.Errorf("equity(%s) = %v, want %v", day, equity, want)
		}
		if first && !pnl.IsZero() {
			t.Errorf("first day PnL = %v, want 0", pnl)
		}
		first = false
		prev = equity
	}
}

func TestNewPnLSeries_DuplicateRowsSumQuantities(t *testing.T) {
	// Two long lots of the same ticker on one day: quantities sum, the
	// first price is the representative one.
	book := newTestBook(
		pos("2025-01-01", "AAA", "SPY", Long, 10, 100, 0.5, 2),
		pos("2025-01-01", "AAA", "SPY", Long, 5, 100, 0.5, 2),
		pos("2025-01-02", "AAA", "SPY", Long, 15, 101, 0.5, 2),
	)
	s, err := NewPnLSeries(book)
	if err != nil {
		t.Fatalf("NewPnLSeries() error = %v", err)
	}
	d2 := MustParse("2025-01-02")
	// 15 x (101 - 100) = 15
	if got, _ := s.TotalPnL.Get(d2); !got.Equal(USD(15)) {
		t.Errorf("TotalPnL(d2) = %v, want %v", got, USD(15))
	}
	if !s.CapitalBase.Equal(USD(1500)) {
		t.Errorf("CapitalBase = %v, want %v", s.CapitalBase, USD(1500))
	}
}

func TestNewPnLSeries_SideSwitchAtConstantPrice(t *testing.T) {
	// A ticker flipping from long 10 to short 5 at an unchanged price
	// has zero PnL on the transition date.
	book := newTestBook(
		pos("2025-01-01", "AAA", "SPY", Long, 10, 100, 0.5, 2),
		pos("2025-01-02", "AAA", "SPY", Short, 5, 100, 0.5, 2),
	)
	s, err := NewPnLSeries(book)
	if err != nil {
		t.Fatalf("NewPnLSeries() error = %v", err)
	}
	d2 := MustParse("2025-01-02")
	if got, _ := s.TotalPnL.Get(d2); !got.IsZero() {
		t.Errorf("TotalPnL(d2) = %v, want 0", got)
	}
}
