package dispersion

import "sort"

// TickerDay is the daily aggregate of one ticker: the representative
// price, the long and short quantities held (as magnitudes, the two legs
// are tracked separately), the same values on the ticker's previous
// recorded day, and the resulting mark-to-market PnL per leg.
type TickerDay struct {
	Date   Date
	Ticker string
	Price  Money

	LongQty  Quantity
	ShortQty Quantity

	// Previous recorded day of the same ticker. This is a per-ticker
	// temporal shift, not a calendar shift: gaps in a ticker's trading
	// days are bridged to its previous available record.
	PrevLongQty  Quantity
	PrevShortQty Quantity
	PrevPrice    Money
	HasPrev      bool // false on the ticker's first record, PnL forced to 0

	LongPnL  Money // prev_long_qty x (price - prev_price)
	ShortPnL Money // -prev_short_qty x (price - prev_price)
}

// TotalPnL returns the day's total PnL for the ticker.
func (td TickerDay) TotalPnL() Money { return td.LongPnL.Add(td.ShortPnL) }

// PnLSeries holds the portfolio-level daily PnL attribution computed
// from the full position history. The series always span the entire
// history; restricting to a display window is a slice operation on a
// WindowReport, never a recomputation.
type PnLSeries struct {
	LongPnL  *MoneyHistory
	ShortPnL *MoneyHistory
	TotalPnL *MoneyHistory

	// CapitalBase is the gross notional (long + short) on the earliest
	// date of the full history. It is fixed once and reused regardless
	// of which window is later inspected.
	CapitalBase Money

	// Equity is CapitalBase plus the running cumulative sum of TotalPnL,
	// one value per date of the history.
	Equity *MoneyHistory

	// TickerDays is the per-(ticker, date) breakdown, sorted by
	// (ticker, date).
	TickerDays []TickerDay
}

// NewPnLSeries computes the daily mark-to-market PnL attribution of the
// whole book. It returns ErrEmptyHistory when the book holds no
// positions: no capital base can be fabricated.
func NewPnLSeries(b *Book) (*PnLSeries, error) {
	if b.Len() == 0 {
		return nil, ErrEmptyHistory
	}

	type key struct {
		day    Date
		ticker string
	}
	agg := make(map[key]*TickerDay)
	for p := range b.Positions() {
		k := key{p.Date, p.Ticker}
		td, ok := agg[k]
		if !ok {
			// First occurrence wins the representative price; duplicate
			// rows for one (date, ticker) are lots, assumed not to
			// conflict in price.
			td = &TickerDay{Date: p.Date, Ticker: p.Ticker, Price: p.Price}
			agg[k] = td
		}
		switch p.Side {
		case Long:
			td.LongQty = td.LongQty.Add(p.Quantity)
		case Short:
			td.ShortQty = td.ShortQty.Add(p.Quantity)
		}
	}

	days := make([]TickerDay, 0, len(agg))
	for _, td := range agg {
		days = append(days, *td)
	}
	sort.Slice(days, func(i, j int) bool {
		if days[i].Ticker != days[j].Ticker {
			return days[i].Ticker < days[j].Ticker
		}
		return days[i].Date.Before(days[j].Date)
	})

	zero := M(0, b.Currency())
	for i := range days {
		td := &days[i]
		td.LongPnL, td.ShortPnL = zero, zero
		if i == 0 || days[i-1].Ticker != td.Ticker {
			continue // first record of this ticker
		}
		prev := days[i-1]
		td.PrevLongQty = prev.LongQty
		td.PrevShortQty = prev.ShortQty
		td.PrevPrice = prev.Price
		td.HasPrev = true

		dP := td.Price.Sub(td.PrevPrice)
		td.LongPnL = dP.Mul(td.PrevLongQty)
		td.ShortPnL = dP.Mul(td.PrevShortQty).Neg()
	}

	s := &PnLSeries{
		LongPnL:    &MoneyHistory{},
		ShortPnL:   &MoneyHistory{},
		TotalPnL:   &MoneyHistory{},
		TickerDays: days,
	}
	for _, td := range days {
		s.LongPnL.AppendAdd(td.Date, td.LongPnL)
		s.ShortPnL.AppendAdd(td.Date, td.ShortPnL)
		s.TotalPnL.AppendAdd(td.Date, td.TotalPnL())
	}

	first, _ := s.TotalPnL.First()
	base := zero
	for _, td := range days {
		if td.Date != first {
			continue
		}
		base = base.Add(td.Price.Mul(td.LongQty)).Add(td.Price.Mul(td.ShortQty))
	}
	s.CapitalBase = base
	s.Equity = s.TotalPnL.Cumulative(base)

	return s, nil
}
