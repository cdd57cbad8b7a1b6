package dispersion

import "fmt"

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Stat is a statistic that may be undefined (too few samples, zero
// variance, empty window). Displaying an undefined Stat yields "N/A",
// never Inf or NaN.
type Stat struct {
	Value float64
	Valid bool
}

// DefinedStat returns a valid Stat.
func DefinedStat(v float64) Stat { return Stat{Value: v, Valid: true} }

func (s Stat) String() string {
	if !s.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", s.Value)
}

// PercentString renders the stat as a percentage, or "N/A".
func (s Stat) PercentString() string {
	if !s.Valid {
		return "N/A"
	}
	return Percent(100 * s.Value).String()
}
