package potential

import "errors"

var (
	// ErrConstants indicates a parameter vector of the wrong length.
	ErrConstants = errors.New("potential: wrong number of constants")

	// ErrNotFinite indicates a NaN or Inf parameter.
	ErrNotFinite = errors.New("potential: constant is not finite")

	// ErrUnknownForcefield indicates a name missing from the registry.
	ErrUnknownForcefield = errors.New("potential: unknown forcefield")

	// ErrUnknownSign indicates an unparseable harmonic force sign.
	ErrUnknownSign = errors.New("potential: unknown force sign")
)
