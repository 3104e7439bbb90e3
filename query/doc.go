// Package query reads, aggregates, and filters table fields.
//
// The query layer provides:
//
//   - Extraction: Values pulls one field across all rows, in row order,
//     applying the coercion rule and the field's transform.
//   - Aggregation: Min, Max, Mean, Var, Std, Sum, Quantile, and Counts
//     over a single field. Sample statistics use the n−1 divisor.
//   - Filtering: Subsample, SubsampleConds, and SubsampleNotNull build
//     sub-tables preserving row order, plus the predicate factories
//     they are composed from.
//
// Aggregates over an empty table fail with ErrEmptySample; no implicit
// zero or NaN is ever substituted. Coercion failures propagate from the
// table package unchanged.
//
// All functions are pure over their arguments and safe for concurrent
// use.
package query
