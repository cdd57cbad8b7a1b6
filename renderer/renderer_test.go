package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/dispersion"
)

func testBook(t *testing.T) *dispersion.Book {
	t.Helper()
	mk := func(date, ticker, underlying string, side dispersion.Side, qty, price, delta, vega float64) dispersion.Position {
		return dispersion.Position{
			Date:       dispersion.MustParse(date),
			Ticker:     ticker,
			Underlying: underlying,
			Side:       side,
			Quantity:   dispersion.Q(qty),
			Price:      dispersion.M(price, "USD"),
			Delta:      delta,
			Vega:       vega,
		}
	}
	return dispersion.NewBook([]dispersion.Position{
		mk("2025-01-01", "SPY_C550", "SPY", dispersion.Long, 10, 5, 0.5, 0.2),
		mk("2025-01-01", "SPY_HEDGE_STOCK", "SPY", dispersion.Short, 100, 550, 1, 0),
		mk("2025-01-02", "SPY_C550", "SPY", dispersion.Long, 10, 5.5, 0.52, 0.21),
		mk("2025-01-02", "SPY_HEDGE_STOCK", "SPY", dispersion.Short, 100, 551, 1, 0),
	}, "USD")
}

func testWindow(t *testing.T) *dispersion.WindowReport {
	t.Helper()
	s, err := dispersion.NewPnLSeries(testBook(t))
	if err != nil {
		t.Fatalf("NewPnLSeries() error = %v", err)
	}
	from, _ := s.Equity.First()
	to, _ := s.Equity.Latest()
	w, err := dispersion.NewWindowReport(s, dispersion.NewRange(from, to))
	if err != nil {
		t.Fatalf("NewWindowReport() error = %v", err)
	}
	return w
}

func TestSummaryMarkdown(t *testing.T) {
	got := SummaryMarkdown(testWindow(t))
	for _, want := range []string{"Performance Summary", "Sharpe", "Max Drawdown", "Cumulative PnL by Leg"} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() misses %q:\n%s", want, got)
		}
	}
}

func TestPnLMarkdown(t *testing.T) {
	got := PnLMarkdown(testWindow(t))
	for _, want := range []string{"Daily PnL", "2025-01-01", "2025-01-02", "Equity"} {
		if !strings.Contains(got, want) {
			t.Errorf("PnLMarkdown() misses %q:\n%s", want, got)
		}
	}
}

func TestExposureMarkdown(t *testing.T) {
	g := dispersion.NewGreeksSeries(testBook(t), dispersion.DefaultHedgeConfig())
	got := ExposureMarkdown(g)
	for _, want := range []string{"Net Exposure", "Net Delta", "Net Vega", "2025-01-01"} {
		if !strings.Contains(got, want) {
			t.Errorf("ExposureMarkdown() misses %q:\n%s", want, got)
		}
	}
}

func TestChangesMarkdown(t *testing.T) {
	r, err := dispersion.NewChangeReport(testBook(t), dispersion.MustParse("2025-01-02"))
	if err != nil {
		t.Fatalf("NewChangeReport() error = %v", err)
	}
	got := ChangesMarkdown(r)
	for _, want := range []string{"Daily Changes", "SPY_C550", "SPY_HEDGE_STOCK", "net_short"} {
		if !strings.Contains(got, want) {
			t.Errorf("ChangesMarkdown() misses %q:\n%s", want, got)
		}
	}
}

func TestPositionsMarkdown(t *testing.T) {
	s := dispersion.NewSnapshot(testBook(t), dispersion.MustParse("2025-01-01"))
	got := PositionsMarkdown(s)
	for _, want := range []string{"Positions", "SPY_C550", "short"} {
		if !strings.Contains(got, want) {
			t.Errorf("PositionsMarkdown() misses %q:\n%s", want, got)
		}
	}
}

func TestEquityChart(t *testing.T) {
	buf, err := EquityChart(testWindow(t))
	if err != nil {
		t.Fatalf("EquityChart() error = %v", err)
	}
	if len(buf) == 0 {
		t.Fatal("EquityChart() returned no bytes")
	}
	// PNG magic number.
	if string(buf[1:4]) != "PNG" {
		t.Errorf("EquityChart() is not a PNG")
	}
}

func TestExposureChart(t *testing.T) {
	g := dispersion.NewGreeksSeries(testBook(t), dispersion.DefaultHedgeConfig())
	buf, err := ExposureChart(g)
	if err != nil {
		t.Fatalf("ExposureChart() error = %v", err)
	}
	if len(buf) == 0 {
		t.Fatal("ExposureChart() returned no bytes")
	}
}
