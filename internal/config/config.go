package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pairpot/internal/md"
	"github.com/san-kum/pairpot/internal/potential"
)

const (
	DefaultEpsilon = 0.0103 // eV
	DefaultSigma   = 3.4    // Å
	DefaultRMin    = 3.0
	DefaultRMax    = 8.0
	DefaultPoints  = 100

	DefaultBondK  = 440.5
	DefaultBondB  = 1.522e-10
	DefaultDrMin  = 1.0e-10
	DefaultDrMax  = 2.0e-10
	DefaultSample = md.DefaultSampleEvery
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	LJ         LJConfig         `yaml:"lj"`
	Bond       BondConfig       `yaml:"bond"`
	Simulation SimulationConfig `yaml:"simulation"`
}

type LJConfig struct {
	Epsilon float64 `yaml:"epsilon"`
	Sigma   float64 `yaml:"sigma"`
	RMin    float64 `yaml:"r_min"`
	RMax    float64 `yaml:"r_max"`
	Points  int     `yaml:"points"`
}

type BondConfig struct {
	K      float64 `yaml:"k"`
	B      float64 `yaml:"b"`
	Sign   string  `yaml:"force_sign"`
	DrMin  float64 `yaml:"dr_min"`
	DrMax  float64 `yaml:"dr_max"`
	Points int     `yaml:"points"`
}

// SimulationConfig describes one driver run against the external engine.
type SimulationConfig struct {
	Particles   int     `yaml:"particles"`
	Temperature float64 `yaml:"temperature"`

	// HeatBathTemperature is the thermostat target applied every step.
	// Zero means Temperature.
	HeatBathTemperature float64 `yaml:"heat_bath_temperature,omitempty"`

	BoxLength   float64   `yaml:"box_length"`
	BoxShape    string    `yaml:"box_shape"`
	Timestep    float64   `yaml:"timestep"`
	Cutoff      float64   `yaml:"cutoff"`
	XPositions  []float64 `yaml:"x_positions,omitempty"`
	YPositions  []float64 `yaml:"y_positions,omitempty"`
	Forcefield  string    `yaml:"forcefield,omitempty"`
	Constants   []float64 `yaml:"constants,omitempty"`
	ForceSign   string    `yaml:"force_sign,omitempty"`
	Steps       int       `yaml:"steps"`
	SampleEvery int       `yaml:"sample_every"`
}

func DefaultConfig() *Config {
	return &Config{
		LJ: LJConfig{
			Epsilon: DefaultEpsilon,
			Sigma:   DefaultSigma,
			RMin:    DefaultRMin,
			RMax:    DefaultRMax,
			Points:  DefaultPoints,
		},
		Bond: BondConfig{
			K:      DefaultBondK,
			B:      DefaultBondB,
			Sign:   potential.SignAsWritten.String(),
			DrMin:  DefaultDrMin,
			DrMax:  DefaultDrMax,
			Points: DefaultPoints,
		},
		Simulation: *GetPreset("vdw"),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.LJ.Points < 2 {
		return fmt.Errorf("%w: lj.points must be at least 2", ErrInvalid)
	}
	if c.LJ.RMin >= c.LJ.RMax {
		return fmt.Errorf("%w: lj.r_min must be below lj.r_max", ErrInvalid)
	}
	if c.Bond.Points < 2 {
		return fmt.Errorf("%w: bond.points must be at least 2", ErrInvalid)
	}
	if c.Bond.DrMin >= c.Bond.DrMax {
		return fmt.Errorf("%w: bond.dr_min must be below bond.dr_max", ErrInvalid)
	}
	if _, err := potential.ParseForceSign(c.Bond.Sign); err != nil {
		return fmt.Errorf("%w: bond.force_sign: %v", ErrInvalid, err)
	}
	if c.Simulation.HeatBathTemperature < 0 {
		return fmt.Errorf("%w: simulation.heat_bath_temperature must be non-negative", ErrInvalid)
	}
	if _, err := c.Simulation.System(); err != nil {
		return err
	}
	return nil
}

// Harmonic builds the bond forcefield described by the bond section.
func (b BondConfig) Harmonic() (*potential.Harmonic, error) {
	sign, err := potential.ParseForceSign(b.Sign)
	if err != nil {
		return nil, err
	}
	return potential.NewHarmonic([]float64{b.K, b.B}, sign)
}

// System converts the simulation section into an engine system description.
func (s *SimulationConfig) System() (md.System, error) {
	sys := md.System{
		Particles:   s.Particles,
		Temperature: s.Temperature,
		BoxLength:   s.BoxLength,
		BoxShape:    s.BoxShape,
		Timestep:    s.Timestep,
		Cutoff:      s.Cutoff,
		XPositions:  s.XPositions,
		YPositions:  s.YPositions,
		Constants:   s.Constants,
	}.WithDefaults()

	if s.Forcefield != "" {
		sign, err := potential.ParseForceSign(s.ForceSign)
		if err != nil {
			return md.System{}, err
		}
		ff, err := potential.Lookup(s.Forcefield, s.Constants, sign)
		if err != nil {
			return md.System{}, err
		}
		sys.Forcefield = ff
	}

	if err := sys.Validate(); err != nil {
		return md.System{}, err
	}
	return sys, nil
}

// HeatBath returns the thermostat target, falling back to the start temperature.
func (s *SimulationConfig) HeatBath() float64 {
	if s.HeatBathTemperature == 0 {
		return s.Temperature
	}
	return s.HeatBathTemperature
}

func (s *SimulationConfig) RunConfig() md.RunConfig {
	every := s.SampleEvery
	if every == 0 {
		every = DefaultSample
	}
	return md.RunConfig{Steps: s.Steps, SampleEvery: every, Temperature: s.HeatBath()}
}
