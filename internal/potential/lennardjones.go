package potential

import (
	"fmt"
	"math"
)

// Repulsive is the repulsive Lennard-Jones term 4ε(σ/r)^12.
func Repulsive(r, epsilon, sigma float64) float64 {
	return 4 * epsilon * math.Pow(sigma/r, 12)
}

// Attractive is the attractive Lennard-Jones term -4ε(σ/r)^6.
func Attractive(r, epsilon, sigma float64) float64 {
	return -4 * epsilon * math.Pow(sigma/r, 6)
}

// LJEnergy is the full Lennard-Jones interaction energy.
func LJEnergy(r, epsilon, sigma float64) float64 {
	return Repulsive(r, epsilon, sigma) + Attractive(r, epsilon, sigma)
}

// LJForce is the negative first derivative of LJEnergy with respect to r.
func LJForce(r, epsilon, sigma float64) float64 {
	sr6 := math.Pow(sigma/r, 6)
	return 24 * epsilon / r * (2*sr6*sr6 - sr6)
}

// LJMinimum is the separation at which LJEnergy reaches -epsilon.
func LJMinimum(sigma float64) float64 {
	return sigma * math.Pow(2, 1.0/6.0)
}

func RepulsiveSlice(r []float64, epsilon, sigma float64) []float64 {
	return apply(r, epsilon, sigma, Repulsive)
}

func AttractiveSlice(r []float64, epsilon, sigma float64) []float64 {
	return apply(r, epsilon, sigma, Attractive)
}

func LJEnergySlice(r []float64, epsilon, sigma float64) []float64 {
	return apply(r, epsilon, sigma, LJEnergy)
}

func LJForceSlice(r []float64, epsilon, sigma float64) []float64 {
	return apply(r, epsilon, sigma, LJForce)
}

func apply(r []float64, epsilon, sigma float64, fn func(r, epsilon, sigma float64) float64) []float64 {
	out := make([]float64, len(r))
	for i, v := range r {
		out[i] = fn(v, epsilon, sigma)
	}
	return out
}

// LennardJones is a forcefield with well depth Epsilon and zero-crossing
// distance Sigma.
type LennardJones struct {
	Epsilon float64
	Sigma   float64
}

// NewLennardJones builds a forcefield from the constants vector [epsilon, sigma].
func NewLennardJones(constants []float64) (*LennardJones, error) {
	if len(constants) != 2 {
		return nil, fmt.Errorf("lennard_jones needs [epsilon, sigma], got %d values: %w", len(constants), ErrConstants)
	}
	if err := checkFinite(constants); err != nil {
		return nil, err
	}
	return &LennardJones{Epsilon: constants[0], Sigma: constants[1]}, nil
}

func (lj *LennardJones) Name() string         { return "lennard_jones" }
func (lj *LennardJones) Constants() []float64 { return []float64{lj.Epsilon, lj.Sigma} }

func (lj *LennardJones) Evaluate(dr []float64, force bool) []float64 {
	if force {
		return LJForceSlice(dr, lj.Epsilon, lj.Sigma)
	}
	return LJEnergySlice(dr, lj.Epsilon, lj.Sigma)
}
