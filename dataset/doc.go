// Package dataset loads CSV files into tables.
//
// Parsing is delegated to gota's CSV reader; dataset only maps the
// resulting records onto table cells:
//
//   - an empty cell becomes the table.Null sentinel,
//   - a numeric-looking cell becomes a Number,
//   - anything else stays a raw Text cell.
//
// Row order follows file order. Column names from the header row (or
// gota's synthetic X0, X1, ... names when WithHeader(false) is set) are
// returned alongside the table; accessors still address columns by
// 1-based position.
package dataset
