package potential

// Forcefield is the potential callback handed to an MD engine.
type Forcefield interface {
	Name() string
	Constants() []float64
	// Evaluate returns energies, or forces when force is true, for every
	// distance in dr. The result has len(dr) elements and dr is not modified.
	Evaluate(dr []float64, force bool) []float64
}
