package table

import "math"

// Transform is a pure scalar mapping applied after coercion. The
// identity transform is represented by a nil function pointer so that
// plain column reads allocate nothing.
type Transform func(float64) float64

// Field pairs a 1-based column index with a Transform. Fields are
// immutable values: every combinator below returns a new Field and
// never mutates its argument, so one Field per logical column can be
// shared across queries and goroutines.
type Field struct {
	// Index is the 1-based column offset into a Row.
	Index int

	// Transform is applied to the coerced cell value; nil means identity.
	Transform Transform
}

// At returns a Field reading column index with the identity transform.
// Index is 1-based; At(1) reads the first column.
func At(index int) Field { return Field{Index: index} }

// Shift returns a combinator re-targeting a Field by offset columns,
// leaving its transform untouched. The canonical use is re-addressing
// fields defined against the right-hand table of a join, whose cells sit
// after the left row's prefix:
//
//	uPrice := table.Shift(len(tRow))(price)
//
// Shift composes additively: Shift(a)(Shift(b)(f)) ≡ Shift(a+b)(f).
func Shift(offset int) func(Field) Field {
	return func(f Field) Field {
		return Field{Index: f.Index + offset, Transform: f.Transform}
	}
}

// ScaleTransform returns a copy of f whose transform buckets values into
// fixed-width bins of the given width, composed after f's existing
// transform: g(x) = width * floor(old(x) / width).
//
// width must be positive; a non-positive width is a programmer error and
// panics.
func ScaleTransform(width float64, f Field) Field {
	if width <= 0 {
		panic("table: ScaleTransform width must be positive")
	}
	prev := f.Transform
	return Field{
		Index: f.Index,
		Transform: func(x float64) float64 {
			if prev != nil {
				x = prev(x)
			}
			return width * math.Floor(x/width)
		},
	}
}

// WithTransform returns a copy of f whose transform is fn composed after
// f's existing transform. It is the general-purpose combinator behind
// ScaleTransform.
func WithTransform(fn Transform, f Field) Field {
	if fn == nil {
		return f
	}
	prev := f.Transform
	return Field{
		Index: f.Index,
		Transform: func(x float64) float64 {
			if prev != nil {
				x = prev(x)
			}
			return fn(x)
		},
	}
}

// Value reads the field from a row: bounds check, coercion via
// Cell.Float, then the transform. Pure; safe for concurrent use.
//
// Errors:
//   - ErrIndexOutOfRange - Index does not address a cell of row.
//   - ErrNullCell / ErrNotNumeric - propagated from coercion.
func (f Field) Value(row Row) (float64, error) {
	if f.Index < 1 || f.Index > len(row) {
		return 0, ErrIndexOutOfRange
	}
	v, err := row[f.Index-1].Float()
	if err != nil {
		return 0, err
	}
	if f.Transform != nil {
		v = f.Transform(v)
	}
	return v, nil
}

// Cell reads the field's raw cell without coercion or transform.
// Used by null-aware filtering, where coercion errors must not fire.
func (f Field) Cell(row Row) (Cell, error) {
	if f.Index < 1 || f.Index > len(row) {
		return Null, ErrIndexOutOfRange
	}
	return row[f.Index-1], nil
}

// FieldValue adapts a Field into a row function, the shape consumed by
// partition key functions and predicates.
func FieldValue(f Field) func(Row) (float64, error) {
	return func(row Row) (float64, error) { return f.Value(row) }
}

// SelectFields returns a row function extracting one value per field, in
// the order given. The first failing field aborts the read.
func SelectFields(fields ...Field) func(Row) ([]float64, error) {
	return func(row Row) ([]float64, error) {
		out := make([]float64, len(fields))
		for i, f := range fields {
			v, err := f.Value(row)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
}
