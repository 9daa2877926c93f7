package simio

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// WriteChart renders the recorded mean densities as a PNG line chart, mice
// in green and foxes in red to match the PPM channel mapping. go-chart needs
// at least two points per series, so runs with a single snapshot are
// rejected rather than drawn.
func WriteChart(path string, times, miceAvg, foxesAvg []float64) error {
	if len(times) < 2 {
		return fmt.Errorf("chart: need at least 2 snapshots, have %d", len(times))
	}

	graph := chart.Chart{
		Width:  1024,
		Height: 512,
		XAxis: chart.XAxis{
			Name: "Time",
		},
		YAxis: chart.YAxis{
			Name: "Mean density",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Mice",
				XValues: times,
				YValues: miceAvg,
				Style:   chart.Style{StrokeColor: drawing.Color{G: 170, A: 255}, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "Foxes",
				XValues: times,
				YValues: foxesAvg,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 200, A: 255}, StrokeWidth: 2.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if err := graph.Render(chart.PNG, f); err != nil {
		f.Close()
		return fmt.Errorf("chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	return nil
}
