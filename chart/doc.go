// Package chart renders point lists produced by the query and stats
// layers to image files, via gonum/plot.
//
// Scatter draws an (x, y) point cloud with a title and axis labels, an
// optional log-scaled Y axis, and an optional overlaid regression line
// taken straight from a stats.Line fit:
//
//	line, _ := stats.LinearReg(m, xField, yField)
//	pts, _ := stats.Points(m, xField, yField)
//	err := chart.Scatter(pts, "fit.png",
//	    chart.WithTitle("score vs. age"),
//	    chart.WithAxisLabels("age", "score"),
//	    chart.WithFit(line))
//
// The output format follows the file extension (png, svg, pdf, ...),
// as supported by gonum/plot's Save.
package chart
