// SPDX-License-Identifier: MIT

// Package table: sentinel error set.
// All accessor operations return these sentinels and tests check them via
// errors.Is. No accessor panics on user-triggered conditions; panics are
// reserved for programmer errors (nonsensical combinator parameters).

package table

import "errors"

var (
	// ErrNullCell indicates a Null cell was coerced where a numeric value
	// is required. Callers that expect gaps should filter with
	// query.SubsampleNotNull first.
	ErrNullCell = errors.New("table: null cell")

	// ErrNotNumeric indicates a string cell could not be parsed as a
	// number. Malformed cells are surfaced at the point of access, never
	// silently replaced by a default.
	ErrNotNumeric = errors.New("table: cell is not numeric")

	// ErrIndexOutOfRange indicates a Field's 1-based column index does not
	// address a cell of the given row.
	ErrIndexOutOfRange = errors.New("table: field index out of range")
)
