// Package chart renders simulated price paths as a PNG line chart, the
// graphical counterpart of the textual simulation report.
package chart

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/riskcraft/riskcraft/pkg/montecarlo"
)

// maxPlottedPaths limits the number of drawn paths for readability.
const maxPlottedPaths = 100

// RenderPaths draws up to the first 100 simulated paths with horizontal
// markers at the initial price and the percentile price, and writes the chart
// as a PNG.
func RenderPaths(result *montecarlo.SimulationResult, w io.Writer) error {
	var (
		paths     = result.Paths
		steps     = len(paths)
		pathCount = result.Parameters.PathCount
	)
	if pathCount > maxPlottedPaths {
		pathCount = maxPlottedPaths
	}

	xs := make([]float64, steps)
	for t := range xs {
		xs[t] = float64(t)
	}

	series := make([]chart.Series, 0, pathCount+2)
	for p := 0; p < pathCount; p++ {
		ys := make([]float64, steps)
		for t := 0; t < steps; t++ {
			ys[t] = paths[t][p]
		}
		series = append(series, chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeWidth: 1.0},
		})
	}

	series = append(series,
		flatSeries("Initial Price", xs, result.Parameters.InitialValue, chart.ColorRed),
		flatSeries(fmt.Sprintf("%gth Percentile", result.Parameters.Percentile), xs, result.PercentileValue, chart.ColorGreen),
	)

	graph := chart.Chart{
		Title: fmt.Sprintf("Monte Carlo Simulation: %d Paths over %d Days",
			result.Parameters.PathCount, result.Parameters.HorizonDays),
		XAxis:  chart.XAxis{Name: "Days"},
		YAxis:  chart.YAxis{Name: "Price ($)"},
		Series: series,
	}
	return graph.Render(chart.PNG, w)
}

func flatSeries(name string, xs []float64, level float64, color drawing.Color) chart.Series {
	ys := make([]float64, len(xs))
	for i := range ys {
		ys[i] = level
	}
	return chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth:     2.0,
			StrokeColor:     color,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}
