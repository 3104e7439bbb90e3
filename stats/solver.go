// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// solveLeastSquares minimizes ||A·beta - y||² for the two-column design
// matrix A = [1 x] via QR factorization, returning (slope, intercept).
// This is the library's one numeric-solver boundary; regression code
// treats it as a black box.
func solveLeastSquares(xs, ys []float64) (slope, intercept float64, err error) {
	n := len(xs)
	a := mat.NewDense(n, 2, nil)
	b := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		a.Set(i, 0, 1)
		a.Set(i, 1, xs[i])
		b.Set(i, 0, ys[i])
	}

	var qr mat.QR
	qr.Factorize(a)

	var beta mat.Dense
	if err = qr.SolveTo(&beta, false, b); err != nil {
		return 0, 0, fmt.Errorf("stats: least-squares solve: %w", err)
	}
	return beta.At(1, 0), beta.At(0, 0), nil
}
