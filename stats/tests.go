// SPDX-License-Identifier: MIT

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Hypothesis tests: sample(s) in, p-value out. Small p rejects the
// test's null hypothesis at the caller's chosen level.

// NormalityTest returns the Jarque–Bera p-value for the null hypothesis
// that xs is drawn from a normal distribution. The statistic
// n/6·(S² + K²/4) over sample skewness S and excess kurtosis K is
// referred to a χ² distribution with 2 degrees of freedom.
//
// Errors: ErrInsufficientSample for fewer than 4 observations (sample
// kurtosis is undefined below that).
func NormalityTest(xs []float64) (float64, error) {
	n := len(xs)
	if n < 4 {
		return 0, ErrInsufficientSample
	}
	s := stat.Skew(xs, nil)
	k := stat.ExKurtosis(xs, nil)
	jb := float64(n) / 6 * (s*s + k*k/4)

	chi2 := distuv.ChiSquared{K: 2}
	return chi2.Survival(jb), nil
}

// TTest returns the two-sided p-value of Welch's unequal-variance
// t-test for the null hypothesis that xs and ys share a mean. Degrees
// of freedom follow the Welch–Satterthwaite approximation.
//
// Errors: ErrInsufficientSample if either sample has fewer than 2
// observations.
func TTest(xs, ys []float64) (float64, error) {
	n1, n2 := len(xs), len(ys)
	if n1 < 2 || n2 < 2 {
		return 0, ErrInsufficientSample
	}
	m1, m2 := stat.Mean(xs, nil), stat.Mean(ys, nil)
	v1, v2 := stat.Variance(xs, nil), stat.Variance(ys, nil)

	se1, se2 := v1/float64(n1), v2/float64(n2)
	se := se1 + se2
	t := (m1 - m2) / math.Sqrt(se)
	df := se * se / (se1*se1/float64(n1-1) + se2*se2/float64(n2-1))

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * dist.Survival(math.Abs(t)), nil
}
