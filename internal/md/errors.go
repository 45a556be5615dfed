package md

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSystem indicates a system description the engine cannot accept.
	ErrInvalidSystem = errors.New("md: invalid system")

	// ErrInvalidRun indicates bad loop parameters.
	ErrInvalidRun = errors.New("md: invalid run config")

	// ErrNoEngine indicates Run or Bind was called without an engine.
	ErrNoEngine = errors.New("md: no engine")
)

// Phase names the part of a step that failed.
type Phase string

const (
	PhaseIntegrate Phase = "integrate"
	PhaseSample    Phase = "sample"
	PhaseHeatBath  Phase = "heat_bath"
	PhaseUpdate    Phase = "sampler_update"
)

// StepError wraps an engine or sampler failure with loop context.
type StepError struct {
	Step    int
	Time    float64
	Phase   Phase
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("md: %s failed at step %d (t=%g): %v", e.Phase, e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
