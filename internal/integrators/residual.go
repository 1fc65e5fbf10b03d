package integrators

import "github.com/san-kum/ivp/internal/dynamo"

// Residuals are built fresh for every step and carry the previous state by
// value, so a solve never observes a later step's data.

// trapezoidResidual is g(x) = y_n + h/2 (f(t_n, y_n) + f(t_{n+1}, x)) - x.
type trapezoidResidual struct {
	f         dynamo.Func
	tNext     float64
	yPrev     float64
	h         float64
	slopePrev float64
}

func (r trapezoidResidual) eval(x float64) float64 {
	return r.yPrev + r.h/2*(r.slopePrev+r.f(r.tNext, x)) - x
}

// backwardEulerResidual is g(x) = h f(t_{n+1}, x) + y_n - x.
type backwardEulerResidual struct {
	f     dynamo.Func
	tNext float64
	yPrev float64
	h     float64
}

func (r backwardEulerResidual) eval(x float64) float64 {
	return r.h*r.f(r.tNext, x) + r.yPrev - x
}

// yMidpointResidual is g(x) = h f(t_{n+1} + h/2, (y_n + x)/2) + y_n - x.
type yMidpointResidual struct {
	f     dynamo.Func
	tNext float64
	yPrev float64
	h     float64
}

func (r yMidpointResidual) eval(x float64) float64 {
	return r.h*r.f(r.tNext+r.h/2, (r.yPrev+x)/2) + r.yPrev - x
}
