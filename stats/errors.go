// SPDX-License-Identifier: MIT

// Package stats: sentinel error set, matched via errors.Is.

package stats

import "errors"

var (
	// ErrInsufficientSample indicates fewer observations than the
	// statistic's minimum: 2 for correlation and regression, 4 for the
	// Fisher-z significance test and the hypothesis tests.
	ErrInsufficientSample = errors.New("stats: insufficient sample size")

	// ErrLengthMismatch indicates paired samples of different lengths.
	ErrLengthMismatch = errors.New("stats: sample length mismatch")
)
