package problems

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/ivp/internal/dynamo"
)

type configurableProblem interface {
	Problem
	dynamo.Configurable
}

func allProblems() []configurableProblem {
	return []configurableProblem{
		NewGrowth(),
		NewDecay(),
		NewConstant(),
		NewProduct(),
		NewLogistic(),
		NewCosine(),
	}
}

func TestExactSatisfiesInitialCondition(t *testing.T) {
	for _, p := range allProblems() {
		if got := p.Exact(0.3, 1.7, 0.3); math.Abs(got-1.7) > 1e-12 {
			t.Errorf("%s: y(t0) = %v, want 1.7", p.Name(), got)
		}
	}
}

// The exact solution must satisfy y' = f(t, y); checked by central difference.
func TestExactSatisfiesField(t *testing.T) {
	const h = 1e-5
	for _, p := range allProblems() {
		f := p.Field()
		for _, tt := range []float64{0.2, 0.9, 1.7} {
			y := p.Exact(0, 0.5, tt)
			dy := (p.Exact(0, 0.5, tt+h) - p.Exact(0, 0.5, tt-h)) / (2 * h)
			if math.Abs(dy-f(tt, y)) > 1e-6 {
				t.Errorf("%s at t=%v: y' = %v, f = %v", p.Name(), tt, dy, f(tt, y))
			}
		}
	}
}

func TestSetParam(t *testing.T) {
	d := NewDecay()
	if err := d.SetParam("rate", 3); err != nil {
		t.Fatalf("set rate failed: %v", err)
	}
	if d.GetParams()["rate"] != 3 {
		t.Errorf("expected rate 3, got %v", d.GetParams()["rate"])
	}
	if got := d.Field()(0, 2); got != -6 {
		t.Errorf("field after SetParam = %v, want -6", got)
	}

	for _, p := range allProblems() {
		if err := p.SetParam("nonexistent", 1); !errors.Is(err, dynamo.ErrUnknownParam) {
			t.Errorf("%s: expected ErrUnknownParam, got %v", p.Name(), err)
		}
	}

	if err := NewLogistic().SetParam("capacity", 0); !errors.Is(err, dynamo.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for zero capacity, got %v", err)
	}
}

func TestExactTrajectory(t *testing.T) {
	times := []float64{1, 2, 3}
	exact := ExactTrajectory(NewConstant(), times, 4)
	expected := []float64{4, 5, 6}
	for i := range expected {
		if exact[i] != expected[i] {
			t.Errorf("exact[%d] = %v, want %v", i, exact[i], expected[i])
		}
	}

	if ExactTrajectory(NewConstant(), nil, 4) != nil {
		t.Error("expected nil for empty times")
	}
}
