package automation

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ivp/internal/config"
	"github.com/san-kum/ivp/internal/dynamo"
	"github.com/san-kum/ivp/internal/experiment"
)

// Scenario defines a scripted sequence of runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run in a scenario
type ScenarioStep struct {
	Problem string              `yaml:"problem"`
	Method  string              `yaml:"method"`
	Y0      float64             `yaml:"y0"`
	T0      float64             `yaml:"t0"`
	T1      float64             `yaml:"t1"`
	Steps   int                 `yaml:"steps"`
	Times   []float64           `yaml:"times,omitempty"`
	Params  map[string]float64  `yaml:"params,omitempty"`
	Solver  config.SolverConfig `yaml:"solver,omitempty"`
	SaveAs  string              `yaml:"save_as,omitempty"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("%w: scenario %q has no steps", dynamo.ErrInvalidConfig, scenario.Name)
	}

	return &scenario, nil
}

// runOnce resolves names through the registry and solves a single run.
func runOnce(ctx context.Context, registry *experiment.Registry, cfg experiment.Config, solver config.SolverConfig) (*dynamo.Result, error) {
	problem, err := registry.GetProblem(cfg.Problem)
	if err != nil {
		return nil, err
	}
	method, err := registry.GetMethod(cfg.Method)
	if err != nil {
		return nil, err
	}
	if !solver.IsZero() {
		experiment.ApplySolver(method, solver.Newton())
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(problem, method, registry.DefaultMetrics()); err != nil {
		return nil, err
	}
	return exp.Run(ctx)
}

// RunScenario executes all steps in a scenario. On failure the results of
// the completed steps are returned with the error.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry) ([]dynamo.Result, error) {
	results := make([]dynamo.Result, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		slog.Info("scenario step", "scenario", scenario.Name, "step", i+1, "of", len(scenario.Steps),
			"problem", step.Problem, "method", step.Method)

		steps := step.Steps
		if steps == 0 && len(step.Times) == 0 {
			steps = config.DefaultSteps
		}
		t1 := step.T1
		if t1 == 0 && len(step.Times) == 0 {
			t1 = step.T0 + config.DefaultT1
		}

		cfg := experiment.Config{
			Problem: step.Problem,
			Method:  step.Method,
			Y0:      step.Y0,
			T0:      step.T0,
			T1:      t1,
			Steps:   steps,
			Times:   step.Times,
			Params:  step.Params,
		}

		result, err := runOnce(ctx, registry, cfg, step.Solver)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		results = append(results, *result)
	}

	return results, nil
}

// ParameterSweep solves one problem across a range of values of a single
// problem parameter.
type ParameterSweep struct {
	Problem   string
	Method    string
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
	Y0        float64
	T0        float64
	T1        float64
	Steps     int
}

// SweepResult holds one point of a parameter sweep
type SweepResult struct {
	ParamValue float64
	Final      float64
	Exact      float64
	MaxError   float64
}

// RunSweep executes a parameter sweep
func RunSweep(ctx context.Context, sweep *ParameterSweep, registry *experiment.Registry) ([]SweepResult, error) {
	if sweep.NumSteps < 1 {
		return nil, fmt.Errorf("%w: sweep needs at least one value", dynamo.ErrInvalidConfig)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)

	var paramStep float64
	if sweep.NumSteps > 1 {
		paramStep = (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)
	}

	for i := 0; i < sweep.NumSteps; i++ {
		paramVal := sweep.ParamMin + float64(i)*paramStep

		cfg := experiment.Config{
			Problem: sweep.Problem,
			Method:  sweep.Method,
			Y0:      sweep.Y0,
			T0:      sweep.T0,
			T1:      sweep.T1,
			Steps:   sweep.Steps,
			Params:  map[string]float64{sweep.ParamName: paramVal},
		}

		result, err := runOnce(ctx, registry, cfg, config.SolverConfig{})
		if err != nil {
			return results, fmt.Errorf("%s=%g: %w", sweep.ParamName, paramVal, err)
		}

		sr := SweepResult{
			ParamValue: paramVal,
			Final:      result.Trajectory.Last(),
			Exact:      math.NaN(),
			MaxError:   math.NaN(),
		}
		if n := len(result.Exact); n > 0 {
			sr.Exact = result.Exact[n-1]
			sr.MaxError = result.Metrics["max_abs_error"]
		}
		results = append(results, sr)

		slog.Debug("sweep", "index", i+1, "of", sweep.NumSteps, "param", sweep.ParamName, "value", paramVal)
	}

	return results, nil
}

// MonteCarloConfig perturbs the initial value of a run
type MonteCarloConfig struct {
	Problem      string
	Method       string
	Y0           float64
	Perturbation float64
	NumTrials    int
	T0           float64
	T1           float64
	Steps        int
	Seed         int64
}

// MonteCarloResult holds one trial
type MonteCarloResult struct {
	TrialID int
	Y0      float64
	Final   float64
	Stable  bool // finite and bounded final value
}

// StabilityBound is the largest |final value| still counted as stable.
const StabilityBound = 1e6

// RunMonteCarlo executes trials with uniformly perturbed initial values
func RunMonteCarlo(ctx context.Context, cfg *MonteCarloConfig, registry *experiment.Registry) ([]MonteCarloResult, error) {
	if cfg.NumTrials < 1 {
		return nil, fmt.Errorf("%w: monte carlo needs at least one trial", dynamo.ErrInvalidConfig)
	}

	results := make([]MonteCarloResult, 0, cfg.NumTrials)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	for trial := 0; trial < cfg.NumTrials; trial++ {
		y0 := cfg.Y0 + (rng.Float64()-0.5)*2*cfg.Perturbation

		expCfg := experiment.Config{
			Problem: cfg.Problem,
			Method:  cfg.Method,
			Y0:      y0,
			T0:      cfg.T0,
			T1:      cfg.T1,
			Steps:   cfg.Steps,
		}

		result, err := runOnce(ctx, registry, expCfg, config.SolverConfig{})
		if err != nil {
			return results, fmt.Errorf("trial %d: %w", trial, err)
		}

		final := result.Trajectory.Last()
		results = append(results, MonteCarloResult{
			TrialID: trial,
			Y0:      y0,
			Final:   final,
			Stable:  !math.IsNaN(final) && math.Abs(final) <= StabilityBound,
		})

		if (trial+1)%10 == 0 {
			slog.Debug("monte carlo", "completed", trial+1, "of", cfg.NumTrials)
		}
	}

	return results, nil
}

// MonteCarloStats counts stable and unstable trials
func MonteCarloStats(results []MonteCarloResult) (stableCount int, unstableCount int) {
	for _, r := range results {
		if r.Stable {
			stableCount++
		} else {
			unstableCount++
		}
	}
	return
}
