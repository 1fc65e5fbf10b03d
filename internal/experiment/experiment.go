package experiment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/san-kum/ivp/internal/dynamo"
	"github.com/san-kum/ivp/internal/metrics"
	"github.com/san-kum/ivp/internal/problems"
)

type Config struct {
	Problem string
	Method  string
	Y0      float64
	T0      float64
	T1      float64
	Steps   int
	Times   []float64
	Params  map[string]float64
}

type Experiment struct {
	cfg     Config
	problem problems.Problem
	method  dynamo.Method
	metrics []metrics.Metric
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup binds the problem and method and applies cfg.Params to the problem.
func (e *Experiment) Setup(p problems.Problem, m dynamo.Method, ms []metrics.Metric) error {
	if len(e.cfg.Params) > 0 {
		tunable, ok := p.(dynamo.Configurable)
		if !ok {
			return fmt.Errorf("problem %s is not tunable", p.Name())
		}
		for name, v := range e.cfg.Params {
			if err := tunable.SetParam(name, v); err != nil {
				return err
			}
		}
	}

	e.problem = p
	e.method = m
	e.metrics = ms
	return nil
}

func (e *Experiment) Times() []float64 {
	return dynamo.Config{
		T0:    e.cfg.T0,
		T1:    e.cfg.T1,
		Steps: e.cfg.Steps,
		Times: e.cfg.Times,
	}.EvalTimes()
}

func (e *Experiment) Run(ctx context.Context) (*dynamo.Result, error) {
	if e.problem == nil || e.method == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	times := e.Times()
	if err := validateTimes(times); err != nil {
		return nil, err
	}

	logger := slog.With("problem", e.problem.Name(), "method", e.cfg.Method)
	logger.Debug("solving", "points", len(times), "t0", times[0], "t1", times[len(times)-1])

	traj, err := e.method.Solve(e.problem.Field(), times, e.cfg.Y0)
	if err != nil {
		logger.Debug("solve failed", "err", err, "completed", len(traj))
		return nil, fmt.Errorf("%s on %s: %w", e.cfg.Method, e.problem.Name(), err)
	}

	exact := problems.ExactTrajectory(e.problem, times, e.cfg.Y0)
	result := &dynamo.Result{
		Problem:    e.problem.Name(),
		Method:     e.cfg.Method,
		Y0:         e.cfg.Y0,
		Times:      times,
		Trajectory: traj,
		Exact:      exact,
		Metrics:    metrics.Evaluate(e.metrics, times, traj, exact),
	}

	logger.Debug("solve complete", "final", traj.Last(), "metrics", result.Metrics)
	return result, nil
}

// validateTimes rejects grids the steppers would silently mishandle.
func validateTimes(times []float64) error {
	if len(times) < 2 {
		return dynamo.ErrShortGrid
	}
	for i := 1; i < len(times); i++ {
		if !(times[i] > times[i-1]) {
			return fmt.Errorf("%w: evaluation times must be strictly increasing (t[%d]=%v, t[%d]=%v)",
				dynamo.ErrInvalidConfig, i-1, times[i-1], i, times[i])
		}
	}
	return nil
}
