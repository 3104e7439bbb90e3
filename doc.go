// Package tabstat is your in-memory toolkit for exploratory statistical
// analysis of tabular data loaded from CSV files.
//
// 🚀 What is tabstat?
//
//	A compact library that lets you declare lightweight "field
//	accessors" (column index + optional transform) over the rows of a
//	table, then compute descriptive statistics, partition and group
//	data, test correlations, and fit simple linear regressions — all
//	expressed compositionally over those accessors rather than over
//	raw row indices:
//		• Field accessors: At, Shift, ScaleTransform combinators
//		• Queries: min/max/mean/variance/quantiles, multi-condition filters
//		• Grouping: keyed partitioning with per-group folds
//		• Joins: nested-loop equi-join on record identifiers
//		• Statistics: correlation matrices, significance filtering, regression
//		• I/O: CSV loading (gota) and chart rendering (gonum/plot)
//
// ✨ Why choose tabstat?
//
//   - Declare once, query everywhere – one Field per logical column,
//     reused across every statistic, filter, grouping, and join
//   - Honest failures – empty samples, null cells, and malformed values
//     surface as sentinel errors, never as silent NaN substitutes
//   - No hidden state – partitioning allocates its bucket map fresh per
//     call; every function is pure over its arguments
//   - gonum underneath – aggregation, regression, and hypothesis tests
//     ride on gonum's stat, mat, and distuv
//
// Under the hood, everything is organized under seven subpackages:
//
//	table/     — Cell, Row, Table model; Field accessors & combinators
//	query/     — extraction, aggregation, filtering
//	partition/ — keyed grouping and per-group folds
//	join/      — nested-loop equi-join of two tables
//	stats/     — correlation, significance tests, linear regression
//	dataset/   — CSV → Table loading
//	chart/     — scatter & fitted-line rendering
//
// Quick example:
//
//	m, _, err := dataset.Load("scores.csv")
//	age, score := table.At(1), table.At(2)
//	byDecade, _ := partition.ByField(m, table.ScaleTransform(10, age))
//	line, _ := stats.LinearReg(m, age, score)
//
// Dive into each package's doc.go for the full contracts, and into
// examples/ for runnable end-to-end scenarios.
//
//	go get github.com/katalvlaran/tabstat
package tabstat
