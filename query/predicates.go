// SPDX-License-Identifier: MIT

package query

import "github.com/katalvlaran/tabstat/table"

// Predicate factories for the common filtering conditions. Each returns
// a fresh closure so that composed conditions never share state.

// Positive keeps values strictly greater than zero.
func Positive() Predicate {
	return func(v float64) bool { return v > 0 }
}

// Zero keeps values equal to zero.
func Zero() Predicate {
	return func(v float64) bool { return v == 0 }
}

// AtMost keeps values less than or equal to n.
func AtMost(n float64) Predicate {
	return func(v float64) bool { return v <= n }
}

// AtLeast keeps values greater than or equal to n.
func AtLeast(n float64) Predicate {
	return func(v float64) bool { return v >= n }
}

// NotEqual keeps values different from v0.
func NotEqual(v0 float64) Predicate {
	return func(v float64) bool { return v != v0 }
}

// NotNull keeps cells that are not the Null sentinel. Unlike the value
// predicates above it inspects the raw cell, so string cells that would
// fail numeric coercion still count as present. SubsampleNotNull is
// built on it.
func NotNull() func(table.Cell) bool {
	return func(c table.Cell) bool { return !c.IsNull() }
}
