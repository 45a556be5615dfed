package export

import (
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/pairpot/internal/curve"
)

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

var palette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorOrange,
	chart.ColorGreen,
	chart.ColorRed,
	chart.ColorCyan,
}

// RenderChart draws set as a line chart with a legend.
func RenderChart(w io.Writer, set curve.Set, format Format, width, height int) error {
	if err := set.Validate(); err != nil {
		return err
	}

	series := make([]chart.Series, 0, len(set.Series))
	for i, s := range set.Series {
		x, y := finitePoints(s)
		if len(x) < 2 {
			return fmt.Errorf("series %s: fewer than two finite points", s.Name)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: x,
			YValues: y,
			Style: chart.Style{
				StrokeColor: palette[i%len(palette)],
				StrokeWidth: 2.0,
			},
		})
	}

	graph := chart.Chart{
		Title:  set.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis:  chart.XAxis{Name: set.XLabel, Style: chart.Style{FontSize: 10.0}},
		YAxis:  chart.YAxis{Name: set.YLabel, Style: chart.Style{FontSize: 10.0}},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	switch format {
	case FormatPNG:
		return graph.Render(chart.PNG, w)
	case FormatSVG:
		return graph.Render(chart.SVG, w)
	default:
		return fmt.Errorf("unsupported chart format %q", format)
	}
}

func finitePoints(s curve.Series) ([]float64, []float64) {
	x := make([]float64, 0, len(s.X))
	y := make([]float64, 0, len(s.Y))
	for i := range s.X {
		if isFinite(s.X[i]) && isFinite(s.Y[i]) {
			x = append(x, s.X[i])
			y = append(y, s.Y[i])
		}
	}
	return x, y
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
