package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/tabstat/stats"
)

// ErrNoPoints indicates a render was asked for with nothing to draw.
var ErrNoPoints = errors.New("chart: no points to plot")

// Canvas size of saved charts.
const (
	DefaultWidth  = 16 * vg.Centimeter
	DefaultHeight = 12 * vg.Centimeter
)

// Option configures a chart.
type Option func(*options)

type options struct {
	title  string
	xLabel string
	yLabel string
	logY   bool
	fit    *stats.Line
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithAxisLabels sets the X and Y axis labels.
func WithAxisLabels(x, y string) Option {
	return func(o *options) { o.xLabel, o.yLabel = x, y }
}

// WithLogY switches the Y axis to a logarithmic scale. All plotted Y
// values must be positive.
func WithLogY() Option {
	return func(o *options) { o.logY = true }
}

// WithFit overlays the fitted regression line on the point cloud.
func WithFit(line stats.Line) Option {
	return func(o *options) { o.fit = &line }
}

func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Scatter renders points to the file at path. The image format follows
// the path's extension.
//
// Errors: ErrNoPoints on an empty point list; wrapped render/save
// errors otherwise.
func Scatter(points []stats.Point, path string, opts ...Option) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	o := gatherOptions(opts)

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = o.xLabel
	p.Y.Label.Text = o.yLabel
	if o.logY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X, xys[i].Y = pt.X, pt.Y
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("chart: scatter: %w", err)
	}
	p.Add(sc)

	if o.fit != nil {
		fitted := plotter.NewFunction(o.fit.Eval)
		p.Add(fitted)
	}

	if err := p.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}
	return nil
}
