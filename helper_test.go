package dispersion

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// pos is a helper for test to create one position-log record.
func pos(date, ticker, underlying string, side Side, qty, price, delta, vega float64) Position {
	return Position{
		Date:       MustParse(date),
		Ticker:     ticker,
		Underlying: underlying,
		Side:       side,
		Quantity:   Q(qty),
		Price:      USD(price),
		Delta:      delta,
		Vega:       vega,
	}
}

// newTestBook is a helper for test to build a Book in usd.
func newTestBook(records ...Position) *Book {
	return NewBook(records, "USD")
}
