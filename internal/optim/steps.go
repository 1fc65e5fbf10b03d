package optim

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/ivp/internal/experiment"
)

var ErrToleranceNotReached = errors.New("optim: tolerance not reached")

// StepSearch looks for the coarsest uniform grid whose metric meets a
// tolerance, doubling the step count from Start up to Max.
type StepSearch struct {
	Metric    string
	Tolerance float64
	Start     int
	Max       int
}

type Probe struct {
	Steps int
	Value float64
}

func NewStepSearch(metric string, tol float64) *StepSearch {
	return &StepSearch{Metric: metric, Tolerance: tol, Start: 10, Max: 1 << 20}
}

// Search returns every probe it ran; the last one meets the tolerance
// unless the error is ErrToleranceNotReached.
func (s *StepSearch) Search(
	ctx context.Context,
	buildExperiment func(steps int) (*experiment.Experiment, error),
) ([]Probe, error) {
	if s.Start < 1 || s.Max < s.Start {
		return nil, fmt.Errorf("optim: invalid step range [%d, %d]", s.Start, s.Max)
	}

	var probes []Probe
	for n := s.Start; n <= s.Max; n *= 2 {
		if err := ctx.Err(); err != nil {
			return probes, err
		}

		exp, err := buildExperiment(n)
		if err != nil {
			return probes, err
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return probes, fmt.Errorf("steps=%d: %w", n, err)
		}

		val, ok := result.Metrics[s.Metric]
		if !ok {
			return probes, fmt.Errorf("optim: metric %q not recorded", s.Metric)
		}
		probes = append(probes, Probe{Steps: n, Value: val})

		if val <= s.Tolerance {
			return probes, nil
		}
	}

	return probes, fmt.Errorf("%w: %s > %g at %d steps", ErrToleranceNotReached, s.Metric, s.Tolerance, probes[len(probes)-1].Steps)
}
