package dispersion

import "fmt"

// Side is the direction of a position leg.
type Side int

const (
	Long Side = iota
	Short
)

// ParseSide parses "long" or "short". Any other value is a data-quality
// defect and is rejected, never silently defaulted to long.
func ParseSide(s string) (Side, error) {
	switch s {
	case "long":
		return Long, nil
	case "short":
		return Short, nil
	default:
		return 0, fmt.Errorf("invalid position type %q, want \"long\" or \"short\"", s)
	}
}

func (s Side) String() string {
	if s == Short {
		return "short"
	}
	return "long"
}

// Sign returns the signed multiplier of the side: +1 for long, -1 for short.
func (s Side) Sign() Quantity {
	if s == Short {
		return Q(-1)
	}
	return Q(1)
}

// Position is one row of the daily position log: a single leg of a
// single instrument marked on a single day. Quantity is a magnitude
// (always >= 0); the direction is carried by Side.
type Position struct {
	Date       Date
	Ticker     string
	Underlying string
	Side       Side
	Quantity   Quantity // magnitude, >= 0
	Price      Money    // today's mark
	Delta      float64  // per-unit, unsigned
	Vega       float64  // per-unit, unsigned
}

// SignedPosition is a Position with its signed representation derived
// once: long = +1, short = -1 applied to quantity, greeks and market
// value. It is never mutated after creation; every downstream sum (net
// delta, net vega, PnL, market value) uses the signed fields, never the
// raw magnitude.
type SignedPosition struct {
	Position

	QtySigned   Quantity
	DeltaSigned float64
	VegaSigned  float64
	MVSigned    Money // Price x QtySigned
}

// NewSignedPosition derives the signed representation of p. It is a pure
// function with no error conditions: p.Side is trusted to be valid
// because ParseSide already rejected anything else at load time.
func NewSignedPosition(p Position) SignedPosition {
	sign := p.Side.Sign()
	qty := p.Quantity.Mul(sign)
	signf := 1.0
	if p.Side == Short {
		signf = -1.0
	}
	return SignedPosition{
		Position:    p,
		QtySigned:   qty,
		DeltaSigned: p.Delta * signf,
		VegaSigned:  p.Vega * signf,
		MVSigned:    p.Price.Mul(qty),
	}
}
