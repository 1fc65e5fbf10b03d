package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/ivp/internal/dynamo"
)

// Metric accumulates a statistic over (t, y, exact) samples.
type Metric interface {
	Name() string
	Observe(t, y, exact float64)
	Value() float64
	Reset()
}

// Defaults returns the metrics recorded for every run.
func Defaults() []Metric {
	return []Metric{
		NewMaxAbsError(),
		NewFinalError(),
		NewRMSError(),
	}
}

// Evaluate resets every metric and feeds it the whole trajectory.
func Evaluate(ms []Metric, times []float64, traj dynamo.Trajectory, exact []float64) map[string]float64 {
	out := make(map[string]float64, len(ms))
	n := min(len(times), len(traj), len(exact))
	for _, m := range ms {
		m.Reset()
		for i := 0; i < n; i++ {
			m.Observe(times[i], traj[i], exact[i])
		}
		out[m.Name()] = m.Value()
	}
	return out
}

// Norms returns the max-norm and root-mean-square distance between a
// trajectory and the exact solution.
func Norms(traj dynamo.Trajectory, exact []float64) (maxAbs, rms float64) {
	if len(traj) == 0 || len(traj) != len(exact) {
		return math.NaN(), math.NaN()
	}
	maxAbs = floats.Distance(traj, exact, math.Inf(1))
	rms = floats.Distance(traj, exact, 2) / math.Sqrt(float64(len(traj)))
	return maxAbs, rms
}

type MaxAbsError struct {
	name string
	max  float64
}

func NewMaxAbsError() *MaxAbsError {
	return &MaxAbsError{name: "max_abs_error"}
}

func (m *MaxAbsError) Name() string { return m.name }

func (m *MaxAbsError) Observe(t, y, exact float64) {
	m.max = math.Max(m.max, math.Abs(y-exact))
}

func (m *MaxAbsError) Value() float64 { return m.max }

func (m *MaxAbsError) Reset() { m.max = 0 }

type FinalError struct {
	name    string
	last    float64
	samples int
}

func NewFinalError() *FinalError {
	return &FinalError{name: "final_error"}
}

func (f *FinalError) Name() string { return f.name }

func (f *FinalError) Observe(t, y, exact float64) {
	f.last = math.Abs(y - exact)
	f.samples++
}

func (f *FinalError) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return f.last
}

func (f *FinalError) Reset() {
	f.last = 0
	f.samples = 0
}

type RMSError struct {
	name    string
	sumSq   float64
	samples int
}

func NewRMSError() *RMSError {
	return &RMSError{name: "rms_error"}
}

func (r *RMSError) Name() string { return r.name }

func (r *RMSError) Observe(t, y, exact float64) {
	d := y - exact
	r.sumSq += d * d
	r.samples++
}

func (r *RMSError) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return math.Sqrt(r.sumSq / float64(r.samples))
}

func (r *RMSError) Reset() {
	r.sumSq = 0
	r.samples = 0
}
