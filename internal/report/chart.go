package report

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"MarketDash/internal/model"
)

// RenderBenchmarkChart renders a PNG line chart of the benchmark close
// series for embedding under the report title. Returns raw PNG bytes.
func RenderBenchmarkChart(points []model.ClosePoint, title string) ([]byte, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(points))
	}

	xValues := make([]float64, len(points))
	yValues := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = chart.TimeToFloat64(p.Time)
		yValues[i] = p.Close
	}

	series := chart.ContinuousSeries{
		Name: title,
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("1F4E79"),
			StrokeWidth: 2.0,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title:  title,
		Width:  900,
		Height: 280,
		Background: chart.Style{
			Padding: chart.Box{Top: 32, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return chart.TimeFromFloat64(f).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{series},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
