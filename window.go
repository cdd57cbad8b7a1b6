package dispersion

import "math"

// tradingDays is the annualization factor for the Sharpe ratio,
// assuming a daily position log.
const tradingDays = 252

// WindowReport is the performance view of the equity curve restricted
// to a closed date interval. The equity itself comes from the full
// history; the window only slices and rebases it.
type WindowReport struct {
	Range Range

	// Window slices of the full-history series.
	Equity     *MoneyHistory
	DailyLong  *MoneyHistory
	DailyShort *MoneyHistory
	DailyTotal *MoneyHistory

	// StartEquity is the un-rebased equity on the first date of the
	// window, the denominator of every percent figure below.
	StartEquity Money

	// Rebased is Equity divided by StartEquity; it starts at exactly 1.0.
	Rebased *History[float64]

	// Returns are the daily percent changes of Rebased, the first entry
	// dropped (undefined).
	Returns *History[float64]

	Sharpe      Stat    // annualized, undefined unless >= 2 returns and nonzero stdev
	TotalReturn Percent // (last rebased - 1) x 100
	MaxDrawdown Stat    // ratio <= 0

	// Cumulative PnL by leg over the window, in money and as percent of
	// StartEquity.
	CumLong, CumShort, CumTotal          Money
	CumLongPct, CumShortPct, CumTotalPct Percent
}

// NewWindowReport slices the full-history series to the window r and
// computes the performance metrics. It returns ErrEmptyWindow when the
// window covers no dated entry.
func NewWindowReport(s *PnLSeries, r Range) (*WindowReport, error) {
	equity := s.Equity.Slice(r)
	if equity.Len() == 0 {
		return nil, ErrEmptyWindow
	}

	w := &WindowReport{
		Range:      r,
		Equity:     equity,
		DailyLong:  s.LongPnL.Slice(r),
		DailyShort: s.ShortPnL.Slice(r),
		DailyTotal: s.TotalPnL.Slice(r),
	}
	_, w.StartEquity = equity.First()

	start := w.StartEquity.AsFloat()
	w.Rebased = &History[float64]{}
	for day, v := range equity.Values() {
		w.Rebased.Append(day, v.AsFloat()/start)
	}

	w.Returns = &History[float64]{}
	var prev float64
	first := true
	for day, v := range w.Rebased.Values() {
		if !first {
			w.Returns.Append(day, v/prev-1)
		}
		first = false
		prev = v
	}

	w.Sharpe = sharpe(w.Returns)
	_, last := w.Rebased.Latest()
	w.TotalReturn = Percent(100 * (last - 1))
	w.MaxDrawdown = maxDrawdown(w.Rebased)

	for _, v := range w.DailyLong.Values() {
		w.CumLong = w.CumLong.Add(v)
	}
	for _, v := range w.DailyShort.Values() {
		w.CumShort = w.CumShort.Add(v)
	}
	w.CumTotal = w.CumLong.Add(w.CumShort)
	w.CumLongPct = Percent(100 * w.CumLong.AsFloat() / start)
	w.CumShortPct = Percent(100 * w.CumShort.AsFloat() / start)
	w.CumTotalPct = Percent(100 * w.CumTotal.AsFloat() / start)

	return w, nil
}

// sharpe computes the annualized Sharpe ratio of daily returns. It is
// undefined with fewer than two observations or zero variance; the
// caller displays "N/A" rather than a divide-by-zero artifact.
func sharpe(returns *History[float64]) Stat {
	n := returns.Len()
	if n < 2 {
		return Stat{}
	}
	var sum float64
	for _, v := range returns.Values() {
		sum += v
	}
	mean := sum / float64(n)

	var ss float64
	for _, v := range returns.Values() {
		d := v - mean
		ss += d * d
	}
	std := math.Sqrt(ss / float64(n-1)) // sample standard deviation
	if std == 0 {
		return Stat{}
	}
	return DefinedStat(mean / std * math.Sqrt(tradingDays))
}

// maxDrawdown returns the minimum of equity over its running maximum,
// minus one. It is always <= 0, and undefined on an empty series.
func maxDrawdown(rebased *History[float64]) Stat {
	if rebased.Len() == 0 {
		return Stat{}
	}
	var runningMax, minDD float64
	first := true
	for _, v := range rebased.Values() {
		if first || v > runningMax {
			runningMax = v
		}
		dd := v/runningMax - 1
		if first || dd < minDD {
			minDD = dd
		}
		first = false
	}
	return DefinedStat(minDD)
}
