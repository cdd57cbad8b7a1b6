package dispersion

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// DefaultCurrency is the reporting currency of position logs that do not
// state one.
const DefaultCurrency = "USD"

// csvColumns is the required header of a position log, in any order.
var csvColumns = []string{"date", "ticker", "underlying", "type", "quantity", "price_today", "delta", "vega"}

// LoadCSV reads a tabular position log: one row per (date,
// ticker-position) with columns date, ticker, underlying, type,
// quantity, price_today, delta, vega. Malformed rows (unknown type,
// negative quantity, bad numbers or dates) are rejected here with their
// row number, never silently coerced into wrong signed values downstream.
func LoadCSV(r io.Reader, currency string) ([]Position, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("position log is empty: %w", ErrEmptyHistory)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read position log header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range csvColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("position log is missing column %q", name)
		}
	}

	var records []Position
	for row := 2; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		rec, err := parseRow(func(name string) string { return fields[col[name]] }, currency)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadCSVFile opens and reads a position log file.
func LoadCSVFile(path, currency string) ([]Position, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open position log %q: %w", path, err)
	}
	defer f.Close()

	records, err := LoadCSV(f, currency)
	if err != nil {
		return nil, fmt.Errorf("could not read position log %q: %w", path, err)
	}
	return records, nil
}

// parseRow validates and converts one record of the position log.
func parseRow(field func(string) string, currency string) (Position, error) {
	var rec Position
	var err error

	rec.Date, err = ParseDate(field("date"))
	if err != nil {
		return rec, err
	}
	rec.Ticker = field("ticker")
	if rec.Ticker == "" {
		return rec, fmt.Errorf("missing ticker")
	}
	rec.Underlying = field("underlying")

	rec.Side, err = ParseSide(field("type"))
	if err != nil {
		return rec, err
	}

	qty, err := strconv.ParseFloat(field("quantity"), 64)
	if err != nil {
		return rec, fmt.Errorf("invalid quantity %q: %w", field("quantity"), err)
	}
	if qty < 0 {
		return rec, fmt.Errorf("negative quantity %v: direction is carried by the type column", qty)
	}
	rec.Quantity = Q(qty)

	price, err := strconv.ParseFloat(field("price_today"), 64)
	if err != nil {
		return rec, fmt.Errorf("invalid price_today %q: %w", field("price_today"), err)
	}
	rec.Price = M(price, currency)

	rec.Delta, err = strconv.ParseFloat(field("delta"), 64)
	if err != nil {
		return rec, fmt.Errorf("invalid delta %q: %w", field("delta"), err)
	}
	rec.Vega, err = strconv.ParseFloat(field("vega"), 64)
	if err != nil {
		return rec, fmt.Errorf("invalid vega %q: %w", field("vega"), err)
	}
	return rec, nil
}
