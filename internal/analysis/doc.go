// Package analysis measures how the global error of a stepper shrinks as
// the evaluation grid is refined.
//
//   - [ConvergenceStudy]: solves one problem on successively finer grids
//     and reports the observed order of accuracy
//
// # Observed Order
//
// Halving h should halve the final error of a first-order method and
// quarter it for a second-order one:
//
//	c, _ := analysis.ConvergenceStudy(ctx, integrators.NewTrapezoidal(true),
//	    problems.NewDecay(), 1.0, 0, 1, []int{20, 40, 80})
//	// c.Slope is close to 2
package analysis
