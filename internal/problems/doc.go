// Package problems provides scalar initial-value problems with known
// closed-form solutions.
//
// Each problem implements [Problem] and [dynamo.Configurable]:
//
//   - [Growth]: y' = k y
//   - [Decay]: y' = -k y
//   - [Constant]: y' = c
//   - [Product]: y' = t y
//   - [Logistic]: y' = r y (1 - y/K)
//   - [Cosine]: y' = cos(t)
//
// The exact solutions make global error measurable:
//
//	p := problems.NewDecay()
//	exact := p.Exact(0, 1, 2.5)
package problems

import "github.com/san-kum/ivp/internal/dynamo"

// Problem is a named right-hand side with a closed-form solution.
type Problem interface {
	Name() string
	Field() dynamo.Func
	// Exact returns y(t) for the IVP with y(t0) = y0.
	Exact(t0, y0, t float64) float64
}

// ExactTrajectory evaluates the closed-form solution at every time.
func ExactTrajectory(p Problem, times []float64, y0 float64) []float64 {
	if len(times) == 0 {
		return nil
	}
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = p.Exact(times[0], y0, t)
	}
	return out
}
