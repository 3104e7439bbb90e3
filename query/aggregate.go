// SPDX-License-Identifier: MIT

package query

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tabstat/table"
)

// Values extracts one field across all rows of m, in row order. The
// coercion rule and the field's transform apply per cell; the first
// failing row aborts the extraction.
// Complexity: O(rows).
func Values(m table.Table, f table.Field) ([]float64, error) {
	out := make([]float64, len(m))
	for i, row := range m {
		v, err := f.Value(row)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Min returns the smallest field value in m.
// Errors: ErrEmptySample on a zero-row table.
func Min(m table.Table, f table.Field) (float64, error) {
	xs, err := Values(m, f)
	if err != nil {
		return 0, err
	}
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	return floats.Min(xs), nil
}

// Max returns the largest field value in m.
// Errors: ErrEmptySample on a zero-row table.
func Max(m table.Table, f table.Field) (float64, error) {
	xs, err := Values(m, f)
	if err != nil {
		return 0, err
	}
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	return floats.Max(xs), nil
}

// Sum returns the sum of the field values in m. The empty sum is an
// error, not zero, for symmetry with the other aggregates.
func Sum(m table.Table, f table.Field) (float64, error) {
	xs, err := Values(m, f)
	if err != nil {
		return 0, err
	}
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	return floats.Sum(xs), nil
}

// Mean returns the arithmetic mean of the field values in m.
func Mean(m table.Table, f table.Field) (float64, error) {
	xs, err := Values(m, f)
	if err != nil {
		return 0, err
	}
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	return stat.Mean(xs, nil), nil
}

// Var returns the sample variance (n−1 divisor) of the field values.
// A single observation yields NaN (0/0): sample variance is undefined
// at n=1, and no default is substituted.
func Var(m table.Table, f table.Field) (float64, error) {
	xs, err := Values(m, f)
	if err != nil {
		return 0, err
	}
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	return stat.Variance(xs, nil), nil
}

// Std returns the sample standard deviation, the square root of Var.
func Std(m table.Table, f table.Field) (float64, error) {
	v, err := Var(m, f)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Quantile returns the empirical quantile of the field values at
// threshold in [0, 1].
// Errors: ErrBadThreshold for a threshold outside [0,1]; ErrEmptySample
// on a zero-row table.
func Quantile(m table.Table, f table.Field, threshold float64) (float64, error) {
	if threshold < 0 || threshold > 1 || math.IsNaN(threshold) {
		return 0, ErrBadThreshold
	}
	xs, err := Values(m, f)
	if err != nil {
		return 0, err
	}
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	sort.Float64s(xs) // Values returned a fresh slice; sorting in place is safe
	return stat.Quantile(threshold, stat.Empirical, xs, nil), nil
}

// Counts returns each distinct field value with its occurrence count.
// The key set order is unspecified; counts sum to the row count. An
// empty table yields an empty map, not an error.
func Counts(m table.Table, f table.Field) (map[float64]int, error) {
	xs, err := Values(m, f)
	if err != nil {
		return nil, err
	}
	counts := make(map[float64]int, len(xs))
	for _, v := range xs {
		counts[v]++
	}
	return counts, nil
}
