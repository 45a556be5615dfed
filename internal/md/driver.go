package md

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultSampleEvery is how often the sampler is updated when unset.
const DefaultSampleEvery = 10

// Engine is the external MD engine. Each call advances or inspects the
// engine's own internal system; none of it is implemented in this module.
type Engine interface {
	// Integrate advances positions and velocities one timestep, force
	// evaluation included.
	Integrate() error
	// Sample records thermodynamic and structural quantities for the step.
	Sample() error
	// HeatBath couples the system to a thermostat at temperature.
	HeatBath(temperature float64) error
	Timestep() float64
}

// EngineFactory initialises an engine from a system description.
type EngineFactory func(System) (Engine, error)

// Snapshot is the loop clock handed to samplers.
type Snapshot struct {
	Step int
	Time float64
}

// Sampler receives periodic updates, typically to refresh a visualisation.
type Sampler interface {
	Update(ctx context.Context, snap Snapshot) error
}

type SamplerFunc func(ctx context.Context, snap Snapshot) error

func (f SamplerFunc) Update(ctx context.Context, snap Snapshot) error { return f(ctx, snap) }

type RunConfig struct {
	Steps       int
	SampleEvery int
	Temperature float64
}

type Result struct {
	Steps   int
	Time    float64
	Samples int
}

// Bind validates sys (after defaults) and hands it to factory.
func Bind(factory EngineFactory, sys System) (Engine, error) {
	if factory == nil {
		return nil, ErrNoEngine
	}
	sys = sys.WithDefaults()
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	return factory(sys)
}

func (c RunConfig) validate() (RunConfig, error) {
	if c.Steps <= 0 {
		return c, fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidRun, c.Steps)
	}
	if c.SampleEvery < 0 {
		return c, fmt.Errorf("%w: sample interval must be non-negative, got %d", ErrInvalidRun, c.SampleEvery)
	}
	if c.Temperature < 0 {
		return c, fmt.Errorf("%w: temperature must be non-negative, got %g", ErrInvalidRun, c.Temperature)
	}
	if c.SampleEvery == 0 {
		c.SampleEvery = DefaultSampleEvery
	}
	return c, nil
}

// Run executes cfg.Steps iterations of integrate, sample, heat bath, then
// advances the clock by the engine timestep. After every step whose count is
// a multiple of SampleEvery the sampler is updated. sampler may be nil.
//
// On cancellation or failure the partial result is returned with the error.
func Run(ctx context.Context, eng Engine, sampler Sampler, cfg RunConfig) (*Result, error) {
	if eng == nil {
		return nil, ErrNoEngine
	}
	cfg, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	dt := eng.Timestep()
	if dt <= 0 {
		return nil, fmt.Errorf("%w: engine timestep must be positive, got %g", ErrInvalidRun, dt)
	}

	log := logrus.WithFields(logrus.Fields{
		"steps":       cfg.Steps,
		"temperature": cfg.Temperature,
		"timestep":    dt,
	})
	log.Info("md run started")

	res := &Result{}
	fail := func(phase Phase, err error) (*Result, error) {
		return res, &StepError{Step: res.Steps, Time: res.Time, Phase: phase, Wrapped: err}
	}

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		if err := eng.Integrate(); err != nil {
			return fail(PhaseIntegrate, err)
		}
		if err := eng.Sample(); err != nil {
			return fail(PhaseSample, err)
		}
		if err := eng.HeatBath(cfg.Temperature); err != nil {
			return fail(PhaseHeatBath, err)
		}

		res.Time += dt
		res.Steps++

		if sampler != nil && res.Steps%cfg.SampleEvery == 0 {
			if err := sampler.Update(ctx, Snapshot{Step: res.Steps, Time: res.Time}); err != nil {
				return fail(PhaseUpdate, err)
			}
			res.Samples++
			log.WithFields(logrus.Fields{"step": res.Steps, "time": res.Time}).Debug("sampler updated")
		}
	}

	log.WithField("samples", res.Samples).Info("md run finished")
	return res, nil
}
