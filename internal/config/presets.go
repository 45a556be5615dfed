package config

import "sort"

// Presets are the demonstration drivers: a harmonic bond between two
// particles (in two variants that differ in box, positions and force sign)
// and a Lennard-Jones fluid with the engine's default forcefield. The bond
// preset initialises at 1 K and thermostats at the run temperature.
var Presets = map[string]*SimulationConfig{
	"bond": {
		Particles: 2, Temperature: 1, HeatBathTemperature: 300, BoxLength: 31, BoxShape: "square",
		Timestep: 5e-16, Cutoff: 30,
		XPositions: []float64{20e-10, 22e-10}, YPositions: []float64{20e-10, 22e-10},
		Forcefield: "harmonic", Constants: []float64{DefaultBondK, DefaultBondB}, ForceSign: "as_written",
		Steps: 4000, SampleEvery: 10,
	},
	"bond_play": {
		Particles: 2, Temperature: 300, BoxLength: 10, BoxShape: "square",
		Timestep: 1e-14, Cutoff: 30,
		XPositions: []float64{5e-10, 6e-10}, YPositions: []float64{5e-10, 6e-10},
		Forcefield: "harmonic", Constants: []float64{DefaultBondK, DefaultBondB}, ForceSign: "negated",
		Steps: 4000, SampleEvery: 10,
	},
	"vdw": {
		Particles: 20, Temperature: 300, BoxLength: 20, BoxShape: "square",
		Timestep: 1e-14, Cutoff: 15,
		Steps: 1000, SampleEvery: 10,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *SimulationConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	cp.XPositions = append([]float64(nil), p.XPositions...)
	cp.YPositions = append([]float64(nil), p.YPositions...)
	cp.Constants = append([]float64(nil), p.Constants...)
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
