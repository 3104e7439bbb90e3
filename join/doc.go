// Package join concatenates rows of two tables that agree on their
// first column.
//
// Tables performs an inner nested-loop equi-join: for every row t of the
// left table, every row u of the right table whose first cell equals
// t's first cell (numeric normalization applies, so Text("3") matches
// Number(3)) emits the concatenated row t ++ u. Output order is
// left-major, right-minor; unmatched rows on either side contribute
// nothing; duplicate keys produce the cross-product of their matches.
//
// The first column is assumed to be a record identifier but uniqueness
// is not enforced. Complexity is O(|T|·|U|) — fine for the
// small-to-medium in-memory tables this library targets, a known
// scaling limit beyond that.
//
// Accessors defined against the right table are re-addressed onto
// joined rows with table.Shift(width of the left rows).
package join
