// SPDX-License-Identifier: MIT

package query

import "github.com/katalvlaran/tabstat/table"

// Predicate tests one coerced, transformed field value.
type Predicate func(float64) bool

// Cond pairs a field with the predicate it must satisfy. SubsampleConds
// keeps rows satisfying every Cond in its list.
type Cond struct {
	Field table.Field
	Pred  Predicate
}

// Subsample returns the sub-table of rows whose field value satisfies
// pred, preserving row order. Rows of the result alias the source rows.
// Coercion failures on any visited row abort the scan.
func Subsample(m table.Table, f table.Field, pred Predicate) (table.Table, error) {
	return SubsampleConds(m, []Cond{{Field: f, Pred: pred}})
}

// SubsampleConds filters m by an ordered list of (field, predicate)
// conditions; a row is kept iff every predicate holds. Predicates are
// evaluated in list order and a failing condition short-circuits the
// rest for that row.
func SubsampleConds(m table.Table, conds []Cond) (table.Table, error) {
	out := make(table.Table, 0, len(m))
	for _, row := range m {
		keep := true
		for _, c := range conds {
			v, err := c.Field.Value(row)
			if err != nil {
				return nil, err
			}
			if !c.Pred(v) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, row)
		}
	}
	return out, nil
}

// SubsampleNotNull keeps rows where every given field's cell is not the
// Null sentinel. Cells are inspected raw, so string cells that would
// fail numeric coercion still count as present.
// Errors: table.ErrIndexOutOfRange if a field falls outside a row.
func SubsampleNotNull(m table.Table, fields ...table.Field) (table.Table, error) {
	present := NotNull()
	out := make(table.Table, 0, len(m))
	for _, row := range m {
		keep := true
		for _, f := range fields {
			c, err := f.Cell(row)
			if err != nil {
				return nil, err
			}
			if !present(c) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, row)
		}
	}
	return out, nil
}
