// Package chart renders analysis results as a bar chart image.
package chart

import (
	"image/color"
	"math"

	"varlens/domain/analysis"
	"varlens/domain/core"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	chartTitle = "Categories with High Variability"
	xLabel     = "Category"
	yLabel     = "Standard Deviation"

	chartWidth  = 8 * vg.Inch
	chartHeight = 5 * vg.Inch
	barWidth    = 30 // points
)

// Renderer draws the high-variability bar chart.
type Renderer struct {
	barColor color.Color
}

// NewRenderer creates a renderer with the default styling.
func NewRenderer() *Renderer {
	return &Renderer{
		barColor: color.RGBA{R: 70, G: 130, B: 180, A: 255},
	}
}

// Render draws a vertical bar chart of the flagged categories' standard
// deviations, in the order they appear in the results, and saves it to
// cfg.OutputPath, overwriting any existing file. The image format follows
// the path extension. Backend or write failures surface as core.ErrRender.
func (r *Renderer) Render(results analysis.Results, cfg analysis.Config) (*analysis.Chart, error) {
	names := make([]string, len(results.HighVariance))
	values := make(plotter.Values, len(results.HighVariance))
	for i, row := range results.HighVariance {
		names[i] = row.Category
		values[i] = row.Std
	}

	p := plot.New()
	p.Title.Text = chartTitle
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(values, vg.Points(barWidth))
	if err != nil {
		return nil, core.NewRenderError(cfg.OutputPath, err)
	}
	bars.Color = r.barColor
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalX(names...)

	// 45-degree category labels, anchored at their upper-right corner.
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	if err := p.Save(chartWidth, chartHeight, cfg.OutputPath); err != nil {
		return nil, core.NewRenderError(cfg.OutputPath, err)
	}

	return &analysis.Chart{
		Path: cfg.OutputPath,
		Bars: len(values),
	}, nil
}
