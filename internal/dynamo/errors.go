package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for stepper operations.
var (
	// ErrDivisionByZero indicates a Newton step hit a derivative of exactly zero.
	ErrDivisionByZero = errors.New("dynamo: division by zero in newton step")

	// ErrUnknownBootstrap indicates a leapfrog bootstrap outside the enumerated set.
	ErrUnknownBootstrap = errors.New("dynamo: unknown leapfrog bootstrap")

	// ErrShortGrid indicates an evaluation grid with fewer than two points.
	ErrShortGrid = errors.New("dynamo: evaluation grid needs at least two points")

	// ErrInvalidConfig indicates a run configuration that cannot be solved.
	ErrInvalidConfig = errors.New("dynamo: invalid run configuration")

	// ErrUnknownParam indicates a parameter name a problem does not define.
	ErrUnknownParam = errors.New("dynamo: unknown parameter")
)

// SimulationError wraps an error with the step at which a stepper failed.
type SimulationError struct {
	Step    int
	Time    float64
	State   float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
