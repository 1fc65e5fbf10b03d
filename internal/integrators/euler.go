package integrators

import "github.com/san-kum/ivp/internal/dynamo"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Solve(f dynamo.Func, tEval []float64, y0 float64) (dynamo.Trajectory, error) {
	res := start(tEval, y0)
	for i := 1; i < len(tEval); i++ {
		h := tEval[i] - tEval[i-1]
		y := res[i-1]
		res = append(res, h*f(tEval[i-1], y)+y)
	}
	return res, nil
}
