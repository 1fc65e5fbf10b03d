package integrators

import (
	"github.com/san-kum/ivp/internal/calc"
	"github.com/san-kum/ivp/internal/dynamo"
)

// Taylor2 is the second-order Taylor method
//
//	y_{n+1} = y_n + h f + h²/2 (f_t + f_y f)
//
// with f and both partials evaluated at (t_{n+1}, y_n). The partials are
// forward differences of step PartialStep.
type Taylor2 struct {
	PartialStep float64
}

func NewTaylor2() *Taylor2 {
	return &Taylor2{PartialStep: calc.DefaultPartialStep}
}

func (tm *Taylor2) Solve(f dynamo.Func, tEval []float64, y0 float64) (dynamo.Trajectory, error) {
	ft := calc.PartialT(f, tm.PartialStep)
	fy := calc.PartialY(f, tm.PartialStep)

	res := start(tEval, y0)
	for i := 1; i < len(tEval); i++ {
		tCur := tEval[i]
		h := tCur - tEval[i-1]
		y := res[i-1]

		slope := f(tCur, y)
		res = append(res, y+h*slope+((h*h)/2)*(ft(tCur, y)+fy(tCur, y)*slope))
	}
	return res, nil
}
