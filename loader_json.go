package dispersion

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultPositionsPath locates the row array in a nested JSON export of
// the position log.
const DefaultPositionsPath = "$.positions"

// LoadJSON reads a position log from a nested JSON export. The row array
// is plucked with a jsonpath expression (DefaultPositionsPath when path
// is empty), so exports wrapping the rows in metadata envelopes load
// without preprocessing. Each row is an object with the same fields as
// the CSV columns; numbers may arrive as JSON numbers or strings.
func LoadJSON(r io.Reader, path, currency string) ([]Position, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("could not decode position log JSON: %w", err)
	}

	if path == "" {
		path = DefaultPositionsPath
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("could not locate positions at %q: %w", path, err)
	}
	rows, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("positions at %q are a %T, want an array", path, jval)
	}

	records := make([]Position, 0, len(rows))
	for i, jrow := range rows {
		obj, ok := jrow.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("position %d: is a %T, want an object", i, jrow)
		}
		rec, err := parseRow(func(name string) string { return jsonField(obj[name]) }, currency)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// jsonField renders a JSON value the way the CSV loader expects it.
func jsonField(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
