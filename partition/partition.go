package partition

import "github.com/katalvlaran/tabstat/table"

// KeyFunc computes the grouping key of a row. Any comparable Go type can
// serve as a key: float64, string, table.Cell, small structs.
type KeyFunc[K comparable] func(table.Row) (K, error)

// Reducer folds one bucket into a result value.
type Reducer[K comparable, R any] func(key K, bucket table.Table) (R, error)

// Partition groups the rows of m by keyFn into a map from key to
// sub-table. Bucket rows appear in source order; duplicate keys append,
// never overwrite. The returned map is freshly allocated per call.
// Complexity: O(rows), amortized.
func Partition[K comparable](m table.Table, keyFn KeyFunc[K]) (map[K]table.Table, error) {
	buckets := make(map[K]table.Table)
	for _, row := range m {
		k, err := keyFn(row)
		if err != nil {
			return nil, err
		}
		buckets[k] = append(buckets[k], row)
	}
	return buckets, nil
}

// MapPartition partitions m by keyFn, then applies reduce to every
// (key, bucket) pair. The result holds one value per distinct key in
// unspecified order. A reducer error aborts the fold.
func MapPartition[K comparable, R any](m table.Table, keyFn KeyFunc[K], reduce Reducer[K, R]) ([]R, error) {
	buckets, err := Partition(m, keyFn)
	if err != nil {
		return nil, err
	}
	out := make([]R, 0, len(buckets))
	for k, bucket := range buckets {
		r, err := reduce(k, bucket)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// ByField partitions m by the coerced, transformed value of f.
func ByField(m table.Table, f table.Field) (map[float64]table.Table, error) {
	return Partition(m, table.FieldValue(f))
}

// MapByField partitions by f's value and folds reduce over each bucket.
func MapByField[R any](m table.Table, f table.Field, reduce Reducer[float64, R]) ([]R, error) {
	return MapPartition(m, table.FieldValue(f), reduce)
}

// Index builds a single-row lookup from key to row. Unlike Partition,
// a duplicate key RETAINS ONLY THE LAST row seen — the overwrite
// semantics wanted for unique-identifier lookups.
func Index[K comparable](m table.Table, keyFn KeyFunc[K]) (map[K]table.Row, error) {
	idx := make(map[K]table.Row, len(m))
	for _, row := range m {
		k, err := keyFn(row)
		if err != nil {
			return nil, err
		}
		idx[k] = row
	}
	return idx, nil
}
