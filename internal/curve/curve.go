// Package curve tabulates pair potentials over a range of separations.
package curve

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/pairpot/internal/potential"
)

var (
	ErrEmpty     = errors.New("curve: empty series")
	ErrMismatch  = errors.New("curve: x and y lengths differ")
	ErrNoSamples = errors.New("curve: need at least two samples")
)

type Series struct {
	Name string    `json:"name"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
}

// Set is a group of series sharing an x axis, drawn on one chart.
type Set struct {
	Title  string   `json:"title"`
	XLabel string   `json:"x_label"`
	YLabel string   `json:"y_label"`
	Series []Series `json:"series"`
}

// Linspace returns n evenly spaced values over [start, stop], both ends included.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrNoSamples, n)
	}
	x := floats.Span(make([]float64, n), start, stop)
	x[n-1] = stop
	return x, nil
}

// LennardJones returns the attractive, repulsive and total energy curves.
func LennardJones(r []float64, epsilon, sigma float64) Set {
	return Set{
		Title:  fmt.Sprintf("Lennard-Jones (ε=%g eV, σ=%g Å)", epsilon, sigma),
		XLabel: "r/Å",
		YLabel: "E/eV",
		Series: []Series{
			{Name: "Attractive", X: r, Y: potential.AttractiveSlice(r, epsilon, sigma)},
			{Name: "Repulsive", X: r, Y: potential.RepulsiveSlice(r, epsilon, sigma)},
			{Name: "Lennard-Jones", X: r, Y: potential.LJEnergySlice(r, epsilon, sigma)},
		},
	}
}

// Harmonic returns the energy curve of h, or its force curve when force is set.
func Harmonic(dr []float64, h *potential.Harmonic, force bool) Set {
	name, ylabel := "Energy", "E"
	if force {
		name, ylabel = "Force", "F"
	}
	return Set{
		Title:  fmt.Sprintf("Harmonic bond (K=%g, b=%g)", h.K, h.B),
		XLabel: "dr",
		YLabel: ylabel,
		Series: []Series{{Name: name, X: dr, Y: h.Evaluate(dr, force)}},
	}
}

// Forcefield tabulates any forcefield callback over dr.
func Forcefield(dr []float64, ff potential.Forcefield, force bool) Set {
	name := "Energy"
	if force {
		name = "Force"
	}
	return Set{
		Title:  fmt.Sprintf("%s %v", ff.Name(), ff.Constants()),
		XLabel: "dr",
		YLabel: name,
		Series: []Series{{Name: name, X: dr, Y: ff.Evaluate(dr, force)}},
	}
}

// Minimum returns the sampled point with the lowest y. NaN samples are skipped.
func Minimum(s Series) (x, y float64, err error) {
	if len(s.Y) == 0 {
		return 0, 0, ErrEmpty
	}
	if len(s.X) != len(s.Y) {
		return 0, 0, fmt.Errorf("%s: %w", s.Name, ErrMismatch)
	}
	finite := make([]float64, 0, len(s.Y))
	index := make([]int, 0, len(s.Y))
	for i, v := range s.Y {
		if !math.IsNaN(v) {
			finite = append(finite, v)
			index = append(index, i)
		}
	}
	if len(finite) == 0 {
		return 0, 0, fmt.Errorf("%s: %w", s.Name, ErrEmpty)
	}
	i := index[floats.MinIdx(finite)]
	return s.X[i], s.Y[i], nil
}

func (s Set) Validate() error {
	if len(s.Series) == 0 {
		return ErrEmpty
	}
	for _, ser := range s.Series {
		if len(ser.X) != len(ser.Y) {
			return fmt.Errorf("%s: %w", ser.Name, ErrMismatch)
		}
	}
	return nil
}

// Lookup returns the series with the given name.
func (s Set) Lookup(name string) (Series, bool) {
	for _, ser := range s.Series {
		if ser.Name == name {
			return ser, true
		}
	}
	return Series{}, false
}
