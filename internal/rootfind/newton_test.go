package rootfind

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/ivp/internal/dynamo"
)

func TestNewton_Roots(t *testing.T) {
	tests := []struct {
		name     string
		f        func(float64) float64
		x0       float64
		expected float64
	}{
		{"linear", func(x float64) float64 { return x - 5 }, 0.0, 5.0},
		{"quadratic", func(x float64) float64 { return x*x - 4 }, 1.0, 2.0},
		{"negative quadratic root", func(x float64) float64 { return x*x - 4 }, -3.0, -2.0},
		{"cosine", math.Cos, 1.0, math.Pi / 2},
		{"cubic", func(x float64) float64 { return x*x*x - 2 }, 1.0, math.Cbrt(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.X0 = tt.x0

			root, err := Newton(tt.f, cfg)
			if err != nil {
				t.Fatalf("newton failed: %v", err)
			}
			if math.Abs(root-tt.expected) > 1e-9 {
				t.Errorf("root = %.12f, want %.12f", root, tt.expected)
			}
		})
	}
}

func TestNewton_AnalyticDerivative(t *testing.T) {
	calls := 0
	cfg := DefaultConfig()
	cfg.FPrime = func(x float64) float64 {
		calls++
		return 2 * x
	}

	root, err := Newton(func(x float64) float64 { return x*x - 9 }, cfg)
	if err != nil {
		t.Fatalf("newton failed: %v", err)
	}
	if math.Abs(root-3) > 1e-12 {
		t.Errorf("root = %v, want 3", root)
	}
	if calls == 0 {
		t.Error("analytic derivative was never called")
	}
}

func TestNewton_ProviderOverridesFPrime(t *testing.T) {
	used := false
	cfg := DefaultConfig()
	cfg.FPrime = func(x float64) float64 {
		t.Fatal("FPrime should not be used when Provider is set")
		return 0
	}
	cfg.Provider = Analytic(func(x float64) float64 {
		used = true
		return 1
	})

	root, err := Newton(func(x float64) float64 { return x - 2 }, cfg)
	if err != nil {
		t.Fatalf("newton failed: %v", err)
	}
	if root != 2 || !used {
		t.Errorf("root = %v, provider used = %v", root, used)
	}
}

func TestNewton_ZeroDerivative(t *testing.T) {
	cfg := DefaultConfig()
	cfg.X0 = 0

	// f'(0) = 0 for x^2 + 1.
	cfg.FPrime = func(x float64) float64 { return 2 * x }
	_, err := Newton(func(x float64) float64 { return x*x + 1 }, cfg)
	if !errors.Is(err, dynamo.ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}

	// flat function: the forward difference is exactly zero.
	cfg = DefaultConfig()
	_, err = Newton(func(x float64) float64 { return 3 }, cfg)
	if !errors.Is(err, dynamo.ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero for constant f, got %v", err)
	}
}

func TestNewton_IterationCapIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.X0 = 10
	cfg.MaxIter = 3
	cfg.FPrime = func(x float64) float64 { return 2 * x }

	root, err := Newton(func(x float64) float64 { return x*x - 2 }, cfg)
	if err != nil {
		t.Fatalf("iteration cap should not be an error, got %v", err)
	}

	// three full steps from 10 without convergence.
	x := 10.0
	for i := 0; i < 3; i++ {
		x = x - (x*x-2)/(2*x)
	}
	if root != x {
		t.Errorf("root = %v, want last iterate %v", root, x)
	}
}

func TestNewton_ZeroConfigUsesDefaults(t *testing.T) {
	root, err := Newton(func(x float64) float64 { return x - 7 }, Config{})
	if err != nil {
		t.Fatalf("newton failed: %v", err)
	}
	if math.Abs(root-7) > 1e-9 {
		t.Errorf("root = %v, want 7", root)
	}
}

func TestForwardDifference(t *testing.T) {
	d := ForwardDifference{H: 1e-6}
	got := d.Slope(func(x float64) float64 { return x * x }, 3)
	if math.Abs(got-6) > 1e-5 {
		t.Errorf("slope = %v, want ~6", got)
	}

	got = ForwardDifference{}.Slope(func(x float64) float64 { return 4 * x }, 1)
	if math.Abs(got-4) > 1e-9 {
		t.Errorf("default step slope = %v, want 4", got)
	}
}
