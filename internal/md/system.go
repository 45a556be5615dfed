package md

import (
	"fmt"
	"math"

	"github.com/san-kum/pairpot/internal/potential"
)

const (
	BoxSquare = "square"

	// DefaultTimestep is used when a System leaves Timestep unset.
	DefaultTimestep = 1e-14
)

// System is everything an engine needs to initialise a simulation.
type System struct {
	Particles   int
	Temperature float64
	BoxLength   float64
	BoxShape    string
	Timestep    float64
	Cutoff      float64

	// XPositions and YPositions override the engine's initial lattice when set.
	XPositions []float64
	YPositions []float64

	// Constants is the parameter vector passed to Forcefield. It is only
	// meaningful with a forcefield set.
	Constants []float64

	// Forcefield is the potential callback. Nil leaves the engine default.
	Forcefield potential.Forcefield
}

// WithDefaults fills unset shape and timestep.
func (s System) WithDefaults() System {
	if s.BoxShape == "" {
		s.BoxShape = BoxSquare
	}
	if s.Timestep == 0 {
		s.Timestep = DefaultTimestep
	}
	return s
}

func (s System) Validate() error {
	if s.Particles <= 0 {
		return fmt.Errorf("%w: particle count must be positive, got %d", ErrInvalidSystem, s.Particles)
	}
	if s.Temperature < 0 {
		return fmt.Errorf("%w: temperature must be non-negative, got %g", ErrInvalidSystem, s.Temperature)
	}
	if s.BoxLength <= 0 {
		return fmt.Errorf("%w: box length must be positive, got %g", ErrInvalidSystem, s.BoxLength)
	}
	if s.BoxShape != BoxSquare {
		return fmt.Errorf("%w: unsupported box shape %q", ErrInvalidSystem, s.BoxShape)
	}
	if s.Timestep <= 0 {
		return fmt.Errorf("%w: timestep must be positive, got %g", ErrInvalidSystem, s.Timestep)
	}
	if s.Cutoff < 0 {
		return fmt.Errorf("%w: cutoff must be non-negative, got %g", ErrInvalidSystem, s.Cutoff)
	}
	if len(s.XPositions) != len(s.YPositions) {
		return fmt.Errorf("%w: %d x positions but %d y positions", ErrInvalidSystem, len(s.XPositions), len(s.YPositions))
	}
	if len(s.XPositions) > 0 && len(s.XPositions) != s.Particles {
		return fmt.Errorf("%w: %d positions for %d particles", ErrInvalidSystem, len(s.XPositions), s.Particles)
	}
	if len(s.Constants) > 0 && s.Forcefield == nil {
		return fmt.Errorf("%w: %d constants given without a forcefield", ErrInvalidSystem, len(s.Constants))
	}
	return nil
}

// PairDistances returns the separation of every i<j pair of the initial
// positions, in (0,1), (0,2), ..., (1,2), ... order. Periodic images are not
// considered. Returns nil when no positions are set.
func (s System) PairDistances() []float64 {
	n := len(s.XPositions)
	if n < 2 || len(s.YPositions) != n {
		return nil
	}
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := s.XPositions[j] - s.XPositions[i]
			dy := s.YPositions[j] - s.YPositions[i]
			out = append(out, math.Hypot(dx, dy))
		}
	}
	return out
}
