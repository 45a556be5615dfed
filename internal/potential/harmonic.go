package potential

import (
	"fmt"
	"math"
)

// ForceSign selects which of the two harmonic force conventions is used.
//
// Two otherwise identical bond callbacks disagree on the sign of the force:
// one returns K(|dr|-b), the other -K(|dr|-b). Neither is treated as the
// correct one here; callers must pick.
type ForceSign int

const (
	// SignAsWritten returns K(|dr|-b).
	SignAsWritten ForceSign = iota
	// SignNegated returns -K(|dr|-b).
	SignNegated
)

func (s ForceSign) String() string {
	switch s {
	case SignAsWritten:
		return "as_written"
	case SignNegated:
		return "negated"
	default:
		return fmt.Sprintf("ForceSign(%d)", int(s))
	}
}

func (s ForceSign) factor() float64 {
	if s == SignNegated {
		return -1
	}
	return 1
}

// ParseForceSign accepts "as_written" (or "") and "negated".
func ParseForceSign(name string) (ForceSign, error) {
	switch name {
	case "", "as_written":
		return SignAsWritten, nil
	case "negated":
		return SignNegated, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSign, name)
}

// HarmonicEnergy returns k/2 * (dr - b)^2.
func HarmonicEnergy(dr, k, b float64) float64 {
	d := dr - b
	return k / 2 * d * d
}

// HarmonicForce returns ±k * (|dr| - b) depending on sign.
func HarmonicForce(dr, k, b float64, sign ForceSign) float64 {
	return sign.factor() * k * (math.Abs(dr) - b)
}

// Harmonic is a spring-like bond with stiffness K and equilibrium length B.
type Harmonic struct {
	K    float64
	B    float64
	Sign ForceSign
}

// NewHarmonic builds a harmonic forcefield from the constants vector [K, b].
func NewHarmonic(constants []float64, sign ForceSign) (*Harmonic, error) {
	if len(constants) != 2 {
		return nil, fmt.Errorf("harmonic needs [K, b], got %d values: %w", len(constants), ErrConstants)
	}
	if err := checkFinite(constants); err != nil {
		return nil, err
	}
	return &Harmonic{K: constants[0], B: constants[1], Sign: sign}, nil
}

func (h *Harmonic) Name() string         { return "harmonic" }
func (h *Harmonic) Constants() []float64 { return []float64{h.K, h.B} }

func (h *Harmonic) Evaluate(dr []float64, force bool) []float64 {
	if force {
		return h.ForceSlice(dr)
	}
	return h.EnergySlice(dr)
}

func (h *Harmonic) EnergySlice(dr []float64) []float64 {
	out := make([]float64, len(dr))
	for i, r := range dr {
		out[i] = HarmonicEnergy(r, h.K, h.B)
	}
	return out
}

func (h *Harmonic) ForceSlice(dr []float64) []float64 {
	out := make([]float64, len(dr))
	for i, r := range dr {
		out[i] = HarmonicForce(r, h.K, h.B, h.Sign)
	}
	return out
}

func checkFinite(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("constant %d = %v: %w", i, v, ErrNotFinite)
		}
	}
	return nil
}
