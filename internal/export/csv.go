package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/pairpot/internal/curve"
)

// CSV writes an x column followed by one column per series, using the x
// values of the first series.
func CSV(w io.Writer, set curve.Set) error {
	if err := set.Validate(); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"x"}
	for _, s := range set.Series {
		header = append(header, s.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, x := range set.Series[0].X {
		row := []string{strconv.FormatFloat(x, 'g', -1, 64)}
		for _, s := range set.Series {
			v := ""
			if i < len(s.Y) {
				v = strconv.FormatFloat(s.Y[i], 'g', -1, 64)
			}
			row = append(row, v)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
