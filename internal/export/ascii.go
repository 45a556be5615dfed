package export

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pairpot/internal/curve"
)

var asciiColors = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Orange,
	asciigraph.Green,
	asciigraph.Red,
	asciigraph.Cyan,
}

// ASCII renders every series of set on one terminal plot. Non-finite samples
// become gaps.
func ASCII(set curve.Set, width, height int) (string, error) {
	if err := set.Validate(); err != nil {
		return "", err
	}

	data := make([][]float64, len(set.Series))
	names := make([]string, len(set.Series))
	colors := make([]asciigraph.AnsiColor, len(set.Series))
	for i, s := range set.Series {
		data[i] = make([]float64, len(s.Y))
		for j, v := range s.Y {
			if math.IsInf(v, 0) {
				v = math.NaN()
			}
			data[i][j] = v
		}
		names[i] = s.Name
		colors[i] = asciiColors[i%len(asciiColors)]
	}

	caption := set.YLabel + " vs " + set.XLabel
	if x := set.Series[0].X; len(x) > 0 {
		caption = fmt.Sprintf("%s vs %s [%g, %g]", set.YLabel, set.XLabel, x[0], x[len(x)-1])
	}

	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(names...),
	), nil
}
