// Package integrators implements fixed-grid steppers for scalar
// initial-value problems y' = f(t, y).
//
// Explicit single-step methods:
//
//   - [Euler]: first order, f evaluated at the left end of each step
//   - [Midpoint]: predictor at t_{n+1}, corrector at t_{n+1} + h/2
//   - [Taylor2]: second-order Taylor with finite-difference partials
//
// Two-step explicit method:
//
//   - [Leapfrog]: y_{n+1} = y_{n-1} + 2h f(t_n, y_n), seeded by a [Bootstrap]
//
// Implicit methods, each solving one Newton problem per step:
//
//   - [Trapezoidal]: trapezoidal rule, or Heun's method when Modified
//   - [BackwardEuler]
//   - [YMidpoint]: f evaluated at the average of y_n and y_{n+1}
//
// When a Newton solve fails the implicit steppers return the trajectory
// computed so far together with a *[dynamo.SimulationError].
//
// Every stepper implements [dynamo.Method]. The step size is recomputed
// from each consecutive pair of evaluation times, so grids need not be
// uniform. No input validation is performed: grids with fewer than two
// points produce [y0].
package integrators

import "github.com/san-kum/ivp/internal/dynamo"

// start allocates a trajectory seeded with y0.
func start(tEval []float64, y0 float64) dynamo.Trajectory {
	res := make(dynamo.Trajectory, 1, max(len(tEval), 1))
	res[0] = y0
	return res
}
