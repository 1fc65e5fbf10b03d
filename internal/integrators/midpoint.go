package integrators

import "github.com/san-kum/ivp/internal/dynamo"

// Midpoint takes a full predictor step evaluated at t_{n+1}, then advances
// from y_n with the slope at (t_{n+1} + h/2, y_half).
//
// This is not the textbook midpoint rule, whose predictor is a half step
// evaluated at t_n. The update is kept as-is; see DESIGN.md.
type Midpoint struct{}

func NewMidpoint() *Midpoint {
	return &Midpoint{}
}

func (m *Midpoint) Solve(f dynamo.Func, tEval []float64, y0 float64) (dynamo.Trajectory, error) {
	res := start(tEval, y0)
	for i := 1; i < len(tEval); i++ {
		tCur := tEval[i]
		h := tCur - tEval[i-1]
		y := res[i-1]

		yHalf := y + h*f(tCur, y)
		res = append(res, h*f(tCur+h/2, yHalf)+y)
	}
	return res, nil
}
