// Package partition groups table rows by a computed key and folds
// reducers over the resulting buckets.
//
// Partition maps each row through a key function and collects rows into
// per-key sub-tables: buckets are created lazily on a key's first row,
// rows append in source order, and an existing bucket is never
// overwritten — every source row lands in exactly one bucket, buckets
// are pairwise disjoint, and their union is the source table.
//
// The keyed structure is an ordinary Go map allocated fresh inside each
// call and returned as the result; no state survives a call and no
// manual reset is ever needed. Key iteration order is unspecified and
// must not be relied upon.
//
// Index is the deliberately different sibling: a single-value lookup
// where a duplicate key keeps only the LAST row seen. The two duplicate
// semantics (append vs. overwrite) serve different uses and are kept as
// two separate entry points.
//
// Empty input never fails: partitioning an empty table yields an empty
// map; only key-function errors propagate.
package partition
