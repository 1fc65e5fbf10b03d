package integrators

import (
	"github.com/san-kum/ivp/internal/dynamo"
	"github.com/san-kum/ivp/internal/rootfind"
)

// SolverConfigurable is implemented by steppers that run a Newton solve
// per step.
type SolverConfigurable interface {
	SetSolver(cfg rootfind.Config)
}

// Trapezoidal solves y_{n+1} = y_n + h/2 (f(t_n, y_n) + f(t_{n+1}, y_{n+1}))
// with Newton's method. When Modified is set it uses Heun's method instead:
// the unknown on the right is replaced by an explicit Euler predictor
// evaluated at t_{n+1}, and no root is solved.
type Trapezoidal struct {
	Modified bool
	Solver   rootfind.Config
}

func NewTrapezoidal(modified bool) *Trapezoidal {
	return &Trapezoidal{Modified: modified, Solver: rootfind.DefaultConfig()}
}

func (tr *Trapezoidal) SetSolver(cfg rootfind.Config) { tr.Solver = cfg }

func (tr *Trapezoidal) Solve(f dynamo.Func, tEval []float64, y0 float64) (dynamo.Trajectory, error) {
	res := start(tEval, y0)
	for i := 1; i < len(tEval); i++ {
		tPrev, tCur := tEval[i-1], tEval[i]
		h := tCur - tPrev
		y := res[i-1]

		if tr.Modified {
			yBar := y + h*f(tCur, y)
			res = append(res, y+h/2*(f(tPrev, y)+f(tCur, yBar)))
			continue
		}

		g := trapezoidResidual{f: f, tNext: tCur, yPrev: y, h: h, slopePrev: f(tPrev, y)}
		next, err := rootfind.Newton(g.eval, tr.Solver)
		if err != nil {
			return res, &dynamo.SimulationError{Step: i, Time: tCur, State: y, Wrapped: err}
		}
		res = append(res, next)
	}
	return res, nil
}

// BackwardEuler solves y_{n+1} = y_n + h f(t_{n+1}, y_{n+1}).
type BackwardEuler struct {
	Solver rootfind.Config
}

func NewBackwardEuler() *BackwardEuler {
	return &BackwardEuler{Solver: rootfind.DefaultConfig()}
}

func (b *BackwardEuler) SetSolver(cfg rootfind.Config) { b.Solver = cfg }

func (b *BackwardEuler) Solve(f dynamo.Func, tEval []float64, y0 float64) (dynamo.Trajectory, error) {
	res := start(tEval, y0)
	for i := 1; i < len(tEval); i++ {
		tCur := tEval[i]
		y := res[i-1]

		g := backwardEulerResidual{f: f, tNext: tCur, yPrev: y, h: tCur - tEval[i-1]}
		next, err := rootfind.Newton(g.eval, b.Solver)
		if err != nil {
			return res, &dynamo.SimulationError{Step: i, Time: tCur, State: y, Wrapped: err}
		}
		res = append(res, next)
	}
	return res, nil
}

// YMidpoint solves y_{n+1} = y_n + h f(t_{n+1} + h/2, (y_n + y_{n+1})/2).
type YMidpoint struct {
	Solver rootfind.Config
}

func NewYMidpoint() *YMidpoint {
	return &YMidpoint{Solver: rootfind.DefaultConfig()}
}

func (m *YMidpoint) SetSolver(cfg rootfind.Config) { m.Solver = cfg }

func (m *YMidpoint) Solve(f dynamo.Func, tEval []float64, y0 float64) (dynamo.Trajectory, error) {
	res := start(tEval, y0)
	for i := 1; i < len(tEval); i++ {
		tCur := tEval[i]
		y := res[i-1]

		g := yMidpointResidual{f: f, tNext: tCur, yPrev: y, h: tCur - tEval[i-1]}
		next, err := rootfind.Newton(g.eval, m.Solver)
		if err != nil {
			return res, &dynamo.SimulationError{Step: i, Time: tCur, State: y, Wrapped: err}
		}
		res = append(res, next)
	}
	return res, nil
}
