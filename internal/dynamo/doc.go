// Package dynamo provides the core primitives for approximating scalar
// initial-value problems.
//
// The package defines the types shared by every stepper:
//
//   - [Func]: scalar field y' = f(t, y)
//   - [Trajectory]: approximated y values, one per evaluation time
//   - [Method]: a stepper that turns (f, times, y0) into a trajectory
//   - [Ensemble]: solves one problem with several methods concurrently
//
// # Example
//
//	f := func(t, y float64) float64 { return y }
//	times := dynamo.Grid(0, 1, 100)
//	traj, err := integrators.NewTrapezoidal(false).Solve(f, times, 1.0)
//
// # Thread Safety
//
// Methods are stateless values; a single Method may be shared between
// goroutines as long as the supplied [Func] has no hidden shared state.
package dynamo
