package potential

import (
	"fmt"
	"sort"
)

type factory func(constants []float64, sign ForceSign) (Forcefield, error)

var registry = map[string]factory{
	"harmonic": func(c []float64, sign ForceSign) (Forcefield, error) {
		h, err := NewHarmonic(c, sign)
		if err != nil {
			return nil, err
		}
		return h, nil
	},
	"lennard_jones": func(c []float64, _ ForceSign) (Forcefield, error) {
		lj, err := NewLennardJones(c)
		if err != nil {
			return nil, err
		}
		return lj, nil
	},
}

// Lookup builds the named forcefield. sign only affects harmonic forces.
func Lookup(name string, constants []float64, sign ForceSign) (Forcefield, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownForcefield, name, Names())
	}
	return fn(constants, sign)
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
