// Package table defines the central Cell, Row, Table, and Field types,
// and provides the accessor combinators every other tabstat package is
// built on.
//
// A Table is a rectangular, in-memory sequence of Rows; each Row a
// fixed-length ordered sequence of scalar Cells (number, string, or the
// Null sentinel). Tables are produced by the dataset loader (or by hand
// in tests) and treated as read-only input; derived sub-tables share
// row storage with their source.
//
// A Field pairs a 1-based column index with a pure transform, and is the
// unit of composition for every query, filter, partition, and statistic
// downstream:
//
//	price := table.At(3)                     // column 3, identity transform
//	bucket := table.ScaleTransform(10, price) // 10-wide price buckets
//	joined := table.Shift(4)(price)           // same column after a 4-wide join prefix
//
// Combinators always construct new Field values, never mutate in place,
// so a Field may be declared once per logical column and reused across
// any number of queries, including concurrently.
//
// Errors:
//
//	ErrNullCell        - a Null cell was read where a number is required.
//	ErrNotNumeric      - a string cell could not be parsed as a number.
//	ErrIndexOutOfRange - a Field's column index falls outside the row.
package table
