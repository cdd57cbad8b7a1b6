package dispersion

import (
	"errors"
	"iter"
	"slices"
	"sort"
)

// Sentinel errors of the analytics core. Callers show an explicit
// "no data" state for the first two; ErrNoPredecessor only suppresses
// the change report, other views render normally.
var (
	ErrEmptyHistory  = errors.New("no positions in history")
	ErrEmptyWindow   = errors.New("no data in selected window")
	ErrNoPredecessor = errors.New("no earlier date in history")
)

// Book is the immutable, chronologically sorted signed-position history
// that every derived view is computed from. It is loaded once; each
// report rebuilds its series from the Book without mutating it, so no
// locking is ever needed.
type Book struct {
	positions []SignedPosition // sorted by (date, ticker)
	days      []Date           // distinct dates, sorted
	byTicker  map[string][]int // ticker -> indices into positions, chronological
	cur       string           // reporting currency
}

// NewBook normalizes records into signed positions and indexes them.
// An empty history is a valid (if useless) book; calculators that cannot
// operate on it return ErrEmptyHistory.
func NewBook(records []Position, currency string) *Book {
	b := &Book{
		positions: make([]SignedPosition, 0, len(records)),
		byTicker:  make(map[string][]int),
		cur:       currency,
	}
	for _, r := range records {
		b.positions = append(b.positions, NewSignedPosition(r))
	}
	sort.SliceStable(b.positions, func(i, j int) bool {
		di, dj := b.positions[i].Date, b.positions[j].Date
		if di != dj {
			return di.Before(dj)
		}
		return b.positions[i].Ticker < b.positions[j].Ticker
	})
	for i, p := range b.positions {
		b.byTicker[p.Ticker] = append(b.byTicker[p.Ticker], i)
		if n := len(b.days); n == 0 || b.days[n-1] != p.Date {
			b.days = append(b.days, p.Date)
		}
	}
	return b
}

// Currency returns the book's reporting currency.
func (b *Book) Currency() string { return b.cur }

// Len returns the number of position rows in the book.
func (b *Book) Len() int { return len(b.positions) }

// Days returns the distinct dates present in the log, sorted. The
// returned slice is shared and must not be modified.
func (b *Book) Days() []Date { return b.days }

// First returns the earliest date in the history, or false when empty.
func (b *Book) First() (Date, bool) {
	if len(b.days) == 0 {
		return Date{}, false
	}
	return b.days[0], true
}

// Last returns the latest date in the history, or false when empty.
func (b *Book) Last() (Date, bool) {
	if len(b.days) == 0 {
		return Date{}, false
	}
	return b.days[len(b.days)-1], true
}

// Positions returns an iterator over all signed positions in
// chronological order.
func (b *Book) Positions() iter.Seq[SignedPosition] {
	return func(yield func(SignedPosition) bool) {
		for _, p := range b.positions {
			if !yield(p) {
				return
			}
		}
	}
}

// On returns the signed positions dated exactly on the given day.
func (b *Book) On(day Date) []SignedPosition {
	var out []SignedPosition
	for _, p := range b.positions {
		if p.Date == day {
			out = append(out, p)
		}
		if p.Date.After(day) {
			break
		}
	}
	return out
}

// TickerPositions returns the chronological signed positions of one ticker.
func (b *Book) TickerPositions(ticker string) []SignedPosition {
	idx := b.byTicker[ticker]
	out := make([]SignedPosition, len(idx))
	for i, j := range idx {
		out[i] = b.positions[j]
	}
	return out
}

// Tickers returns all tickers present in the history, sorted.
func (b *Book) Tickers() []string {
	out := make([]string, 0, len(b.byTicker))
	for t := range b.byTicker {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// Predecessor returns the immediately preceding distinct calendar date
// present anywhere in the log, regardless of ticker. It returns
// ErrNoPredecessor when day is the earliest date (or absent and earlier
// than all dates).
func (b *Book) Predecessor(day Date) (Date, error) {
	i, _ := slices.BinarySearchFunc(b.days, day, Date.Compare)
	if i == 0 {
		return Date{}, ErrNoPredecessor
	}
	return b.days[i-1], nil
}
