package experiment

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/ivp/internal/dynamo"
	"github.com/san-kum/ivp/internal/integrators"
	"github.com/san-kum/ivp/internal/problems"
	"github.com/san-kum/ivp/internal/rootfind"
)

func setup(t *testing.T, cfg Config) *Experiment {
	t.Helper()
	r := NewRegistry()

	p, err := r.GetProblem(cfg.Problem)
	if err != nil {
		t.Fatalf("get problem: %v", err)
	}
	m, err := r.GetMethod(cfg.Method)
	if err != nil {
		t.Fatalf("get method: %v", err)
	}

	exp := New(cfg)
	if err := exp.Setup(p, m, r.DefaultMetrics()); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return exp
}

func TestExperimentRun(t *testing.T) {
	exp := setup(t, Config{Problem: "growth", Method: "euler", Y0: 1, T0: 0, T1: 1, Steps: 100})

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Trajectory) != 101 || len(result.Times) != 101 || len(result.Exact) != 101 {
		t.Fatalf("expected 101 samples, got %d/%d/%d", len(result.Trajectory), len(result.Times), len(result.Exact))
	}
	if math.Abs(result.Exact[100]-math.E) > 1e-12 {
		t.Errorf("exact final %v, want e", result.Exact[100])
	}
	if result.Metrics["final_error"] <= 0 || result.Metrics["final_error"] > 0.02 {
		t.Errorf("unexpected final error %v", result.Metrics["final_error"])
	}
}

func TestExperimentParams(t *testing.T) {
	exp := setup(t, Config{
		Problem: "decay", Method: "heun", Y0: 2, T1: 1, Steps: 50,
		Params: map[string]float64{"rate": 3},
	})

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if math.Abs(result.Exact[50]-2*math.Exp(-3)) > 1e-12 {
		t.Errorf("rate parameter not applied: exact final %v", result.Exact[50])
	}
}

func TestExperimentBadParam(t *testing.T) {
	r := NewRegistry()
	p, _ := r.GetProblem("decay")
	m, _ := r.GetMethod("euler")

	exp := New(Config{Problem: "decay", Method: "euler", Params: map[string]float64{"mass": 1}})
	if err := exp.Setup(p, m, nil); !errors.Is(err, dynamo.ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}

func TestExperimentInvalidTimes(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		err  error
	}{
		{"zero steps", Config{Problem: "decay", Method: "euler", T1: 1, Steps: 0}, dynamo.ErrShortGrid},
		{"single time", Config{Problem: "decay", Method: "euler", Times: []float64{0}}, dynamo.ErrShortGrid},
		{"decreasing", Config{Problem: "decay", Method: "euler", Times: []float64{0, 1, 0.5}}, dynamo.ErrInvalidConfig},
		{"empty interval", Config{Problem: "decay", Method: "euler", T0: 1, T1: 1, Steps: 4}, dynamo.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := setup(t, tt.cfg).Run(context.Background())
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestExperimentNotSetup(t *testing.T) {
	if _, err := New(Config{}).Run(context.Background()); err == nil {
		t.Error("expected error, got nil")
	}
}

func TestExperimentStepperError(t *testing.T) {
	// growth with h = 1 makes the backward Euler residual flat.
	be := integrators.NewBackwardEuler()
	be.Solver.H = 0.5

	exp := New(Config{Problem: "growth", Method: "backward-euler", Y0: 1, Times: []float64{0, 1, 2}})
	if err := exp.Setup(problems.NewGrowth(), be, nil); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if _, err := exp.Run(context.Background()); !errors.Is(err, dynamo.ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestRegistryLists(t *testing.T) {
	r := NewRegistry()

	methods := r.ListMethods()
	if len(methods) != 10 {
		t.Errorf("expected 10 methods, got %d: %v", len(methods), methods)
	}
	for i := 1; i < len(methods); i++ {
		if methods[i-1] > methods[i] {
			t.Errorf("methods not sorted: %v", methods)
		}
	}

	if len(r.ListProblems()) != 6 {
		t.Errorf("expected 6 problems, got %v", r.ListProblems())
	}

	if _, err := r.GetMethod("rk4"); err == nil {
		t.Error("expected error for unknown method")
	}
	if _, err := r.GetProblem("pendulum"); err == nil {
		t.Error("expected error for unknown problem")
	}
}

func TestApplySolver(t *testing.T) {
	r := NewRegistry()

	implicit, err := r.GetMethod("backward-euler")
	if err != nil {
		t.Fatal(err)
	}
	cfg := rootfind.DefaultConfig()
	cfg.MaxIter = 7
	if !ApplySolver(implicit, cfg) {
		t.Fatal("backward-euler should accept solver settings")
	}
	if got := implicit.(*integrators.BackwardEuler).Solver.MaxIter; got != 7 {
		t.Errorf("expected max iter 7, got %d", got)
	}

	explicit, err := r.GetMethod("euler")
	if err != nil {
		t.Fatal(err)
	}
	if ApplySolver(explicit, cfg) {
		t.Error("euler should not accept solver settings")
	}
}
