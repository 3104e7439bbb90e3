// SPDX-License-Identifier: MIT

package stats

import (
	"github.com/katalvlaran/tabstat/query"
	"github.com/katalvlaran/tabstat/table"
)

// Point is one (x, y) observation.
type Point struct {
	X, Y float64
}

// Line is a fitted regression line y = Slope*x + Intercept, returned as
// data so callers can report, plot, or evaluate it.
type Line struct {
	Slope, Intercept float64
}

// Eval returns the line's prediction at x.
func (l Line) Eval(x float64) float64 { return l.Slope*x + l.Intercept }

// Points extracts paired (xField, yField) observations from m, one per
// row, in row order.
func Points(m table.Table, xField, yField table.Field) ([]Point, error) {
	xs, err := query.Values(m, xField)
	if err != nil {
		return nil, err
	}
	ys, err := query.Values(m, yField)
	if err != nil {
		return nil, err
	}
	pts := make([]Point, len(xs))
	for i := range xs {
		pts[i] = Point{X: xs[i], Y: ys[i]}
	}
	return pts, nil
}

// LinearRegPoints fits y = Slope*x + Intercept to the points by least
// squares (QR solve of the two-column design matrix).
//
// Errors:
//   - ErrInsufficientSample - fewer than 2 points.
//   - a wrapped solver error for a degenerate design (e.g. all x equal).
func LinearRegPoints(points []Point) (Line, error) {
	if len(points) < 2 {
		return Line{}, ErrInsufficientSample
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	slope, intercept, err := solveLeastSquares(xs, ys)
	if err != nil {
		return Line{}, err
	}
	return Line{Slope: slope, Intercept: intercept}, nil
}

// LinearReg fits a regression of yField on xField over the rows of m.
func LinearReg(m table.Table, xField, yField table.Field) (Line, error) {
	pts, err := Points(m, xField, yField)
	if err != nil {
		return Line{}, err
	}
	return LinearRegPoints(pts)
}

// LinearRegErrs fits the points and returns each point's squared
// residual against the fitted line's prediction at that point's x.
func LinearRegErrs(points []Point) ([]float64, error) {
	line, err := LinearRegPoints(points)
	if err != nil {
		return nil, err
	}
	errs := make([]float64, len(points))
	for i, p := range points {
		d := p.Y - line.Eval(p.X)
		errs[i] = d * d
	}
	return errs, nil
}
