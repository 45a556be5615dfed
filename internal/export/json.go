package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/pairpot/internal/curve"
)

// JSON writes set indented. Non-finite values are written as null.
func JSON(w io.Writer, set curve.Set) error {
	type series struct {
		Name string     `json:"name"`
		X    []*float64 `json:"x"`
		Y    []*float64 `json:"y"`
	}
	out := struct {
		Title  string   `json:"title"`
		XLabel string   `json:"x_label"`
		YLabel string   `json:"y_label"`
		Series []series `json:"series"`
	}{Title: set.Title, XLabel: set.XLabel, YLabel: set.YLabel}

	for _, s := range set.Series {
		out.Series = append(out.Series, series{Name: s.Name, X: nullable(s.X), Y: nullable(s.Y)})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func nullable(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		if isFinite(values[i]) {
			out[i] = &values[i]
		}
	}
	return out
}
