package dynamo

import (
	"math"
)

// Func is the right-hand side of y' = f(t, y).
type Func func(t, y float64) float64

// Trajectory holds one approximated value per evaluation time.
type Trajectory []float64

func (tr Trajectory) Clone() Trajectory {
	c := make(Trajectory, len(tr))
	copy(c, tr)
	return c
}

func (tr Trajectory) IsValid() bool {
	for _, v := range tr {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Last returns the final approximated value, or NaN for an empty trajectory.
func (tr Trajectory) Last() float64 {
	if len(tr) == 0 {
		return math.NaN()
	}
	return tr[len(tr)-1]
}

// Method advances y0 across every evaluation time.
//
// Implementations return a trajectory with len(tEval) entries whose first
// entry is y0. Grids shorter than two points yield [y0].
type Method interface {
	Solve(f Func, tEval []float64, y0 float64) (Trajectory, error)
}

// Configurable is implemented by problems with tunable parameters.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Grid returns steps+1 equally spaced times from t0 to t1 inclusive.
func Grid(t0, t1 float64, steps int) []float64 {
	if steps < 1 {
		return []float64{t0}
	}
	times := make([]float64, steps+1)
	h := (t1 - t0) / float64(steps)
	for i := range times {
		times[i] = t0 + float64(i)*h
	}
	times[steps] = t1
	return times
}

type Config struct {
	T0    float64
	T1    float64
	Steps int
	Times []float64
}

func DefaultConfig() Config {
	return Config{
		T0:    0.0,
		T1:    1.0,
		Steps: 100,
	}
}

// EvalTimes returns the explicit times if present, else the uniform grid.
func (c Config) EvalTimes() []float64 {
	if len(c.Times) > 0 {
		out := make([]float64, len(c.Times))
		copy(out, c.Times)
		return out
	}
	return Grid(c.T0, c.T1, c.Steps)
}

type Result struct {
	Problem    string
	Method     string
	Y0         float64
	Times      []float64
	Trajectory Trajectory
	Exact      []float64
	Metrics    map[string]float64
}

// Errors returns the pointwise absolute error against the exact solution,
// or nil when no exact solution was recorded.
func (r *Result) Errors() []float64 {
	if len(r.Exact) != len(r.Trajectory) {
		return nil
	}
	errs := make([]float64, len(r.Trajectory))
	for i := range r.Trajectory {
		errs[i] = math.Abs(r.Trajectory[i] - r.Exact[i])
	}
	return errs
}
