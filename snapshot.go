package dispersion

import "sort"

// Snapshot is the raw positions view for a single date: one row per
// position-log record, with signed greeks and unsigned market value,
// ordered by underlying then ticker for display.
type Snapshot struct {
	Date      Date
	Positions []SignedPosition
}

// NewSnapshot returns the positions held on the given date. An empty
// snapshot is valid: the caller shows "no positions" for it.
func NewSnapshot(b *Book, on Date) *Snapshot {
	rows := b.On(on)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Underlying != rows[j].Underlying {
			return rows[i].Underlying < rows[j].Underlying
		}
		return rows[i].Ticker < rows[j].Ticker
	})
	return &Snapshot{Date: on, Positions: rows}
}

// MarketValue is the unsigned notional of the position: price x quantity
// magnitude.
func (p Position) MarketValue() Money { return p.Price.Mul(p.Quantity) }
