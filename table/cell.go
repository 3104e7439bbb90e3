package table

import (
	"fmt"
	"strconv"
)

// Kind discriminates the three scalar shapes a Cell can hold.
type Kind uint8

const (
	// KindNull marks an absent value. The zero Cell is Null.
	KindNull Kind = iota
	// KindNumber marks a float64 payload.
	KindNumber
	// KindString marks a raw string payload.
	KindString
)

// Cell is one scalar of a Row: a number, a string, or the Null sentinel.
// Cell is a small immutable value type; it is comparable and may be used
// directly as a map key (partition buckets, join keys).
type Cell struct {
	kind Kind
	num  float64
	str  string
}

// Null is the explicit missing-value sentinel. It is the zero Cell, so a
// freshly allocated Row is all-Null until populated.
var Null = Cell{}

// Number constructs a numeric Cell.
func Number(v float64) Cell { return Cell{kind: KindNumber, num: v} }

// Text constructs a string Cell. The raw text is kept verbatim; numeric
// coercion happens only on read, in Float.
func Text(s string) Cell { return Cell{kind: KindString, str: s} }

// Kind reports the cell's scalar shape.
func (c Cell) Kind() Kind { return c.kind }

// IsNull reports whether the cell is the Null sentinel.
func (c Cell) IsNull() bool { return c.kind == KindNull }

// Float coerces the cell to a float64. This is the single value-coercion
// boundary of the library: numbers pass through, numeric-looking strings
// are parsed, everything else is an error.
//
// Errors:
//   - ErrNullCell    - the cell is Null.
//   - ErrNotNumeric  - the cell is a string that does not parse as a number.
func (c Cell) Float() (float64, error) {
	switch c.kind {
	case KindNumber:
		return c.num, nil
	case KindString:
		v, err := strconv.ParseFloat(c.str, 64)
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", c.str, ErrNotNumeric)
		}
		return v, nil
	default:
		return 0, ErrNullCell
	}
}

// Equal reports value equality with numeric normalization: two cells that
// both coerce to a number compare by that number, so Text("3") equals
// Number(3). Cells that do not both coerce compare by kind and raw payload.
// Join keys use this relation.
func (c Cell) Equal(o Cell) bool {
	cv, cErr := c.Float()
	ov, oErr := o.Float()
	if cErr == nil && oErr == nil {
		return cv == ov
	}
	return c == o
}

// String renders the cell for display; Null renders as "∅".
func (c Cell) String() string {
	switch c.kind {
	case KindNumber:
		return strconv.FormatFloat(c.num, 'g', -1, 64)
	case KindString:
		return c.str
	default:
		return "∅"
	}
}

// Row is an ordered, fixed-length sequence of Cells. Columns are
// addressed 1-based through Field accessors; raw slice indexing remains
// 0-based as usual.
type Row []Cell

// Table is an ordered sequence of Rows of equal length. Shape is
// implicit and never validated: a ragged table is a caller error,
// detected (if at all) as ErrIndexOutOfRange at access time.
type Table []Row

// NumberRow builds a Row of numeric cells; a test and example convenience.
func NumberRow(vs ...float64) Row {
	r := make(Row, len(vs))
	for i, v := range vs {
		r[i] = Number(v)
	}
	return r
}
