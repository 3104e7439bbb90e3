// SPDX-License-Identifier: MIT

// Package query: sentinel error set, matched via errors.Is.

package query

import "errors"

var (
	// ErrEmptySample indicates an aggregate was asked for over zero rows.
	// Aggregates never substitute a default for an empty table.
	ErrEmptySample = errors.New("query: empty sample")

	// ErrBadThreshold indicates a quantile threshold outside [0, 1].
	ErrBadThreshold = errors.New("query: quantile threshold outside [0,1]")
)
