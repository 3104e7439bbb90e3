// SPDX-License-Identifier: MIT

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tabstat/query"
	"github.com/katalvlaran/tabstat/table"
)

// NotSignificant is the sentinel replacing filtered correlation-matrix
// entries. It is NaN, so it cannot collide with a Pearson r computed
// from valid data; consuming code distinguishes it via IsNotSignificant.
var NotSignificant = math.NaN()

// IsNotSignificant reports whether a matrix entry was filtered out.
func IsNotSignificant(v float64) bool { return math.IsNaN(v) }

// Corr returns the Pearson sample correlation of two paired samples,
// using the sample (n−1) standard deviation in the denominator.
//
// Errors:
//   - ErrLengthMismatch     - len(xs) != len(ys).
//   - ErrInsufficientSample - fewer than 2 pairs.
func Corr(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, ErrLengthMismatch
	}
	if len(xs) < 2 {
		return 0, ErrInsufficientSample
	}
	return stat.Correlation(xs, ys, nil), nil
}

// CorrMatrix returns the n×n matrix of pairwise field correlations over
// m. Entry (i,j) is Corr of field i against field j; the diagonal runs
// through the same path as every other entry.
// Complexity: O(n² · rows).
func CorrMatrix(m table.Table, fields []table.Field) ([][]float64, error) {
	cols, err := fieldColumns(m, fields)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(fields))
	for i := range fields {
		out[i] = make([]float64, len(fields))
		for j := range fields {
			r, err := Corr(cols[i], cols[j])
			if err != nil {
				return nil, err
			}
			out[i][j] = r
		}
	}
	return out, nil
}

// CorrTestSig runs the Fisher z-transform significance test of an
// observed correlation r against a hypothesized correlation p over n
// samples:
//
//	z = atanh(r), u = atanh(p), s = 1/sqrt(n-3)
//	sig = erf((z-u) / (s*sqrt(2)))
//
// The sign of the result follows the sign of r-p; callers interested in
// a two-sided decision take the absolute value.
//
// Errors: ErrInsufficientSample for n <= 3.
func CorrTestSig(p, r float64, n int) (float64, error) {
	if n <= 3 {
		return 0, ErrInsufficientSample
	}
	z := math.Atanh(r)
	u := math.Atanh(p)
	s := 1 / math.Sqrt(float64(n-3))
	return math.Erf((z - u) / (s * math.Sqrt2)), nil
}

// FilteredCorrMatrix is CorrMatrix with insignificant entries masked:
// any off-diagonal entry whose two-sided significance against p=0
// (per CorrTestSig) falls below threshold is replaced by NotSignificant.
// The diagonal is never filtered.
func FilteredCorrMatrix(threshold float64, m table.Table, fields []table.Field) ([][]float64, error) {
	out, err := CorrMatrix(m, fields)
	if err != nil {
		return nil, err
	}
	n := len(m)
	for i := range out {
		for j := range out[i] {
			if i == j {
				continue
			}
			sig, err := CorrTestSig(0, out[i][j], n)
			if err != nil {
				return nil, err
			}
			if math.Abs(sig) < threshold {
				out[i][j] = NotSignificant
			}
		}
	}
	return out, nil
}

// fieldColumns extracts every field once up front, so an n×n matrix
// costs n extractions instead of n².
func fieldColumns(m table.Table, fields []table.Field) ([][]float64, error) {
	cols := make([][]float64, len(fields))
	for i, f := range fields {
		xs, err := query.Values(m, f)
		if err != nil {
			return nil, err
		}
		cols[i] = xs
	}
	return cols, nil
}
