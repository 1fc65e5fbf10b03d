// Package calc provides finite-difference calculus helpers.
package calc

import "github.com/san-kum/ivp/internal/dynamo"

// DefaultPartialStep is the forward-difference step used by Partial when
// h <= 0.
const DefaultPartialStep = 1e-6

// Partial returns a function approximating the partial derivative of f with
// respect to its index-th argument by a forward difference of step h.
//
// The returned function takes the same arguments as f and never modifies
// the slice it is given. An index outside the argument list perturbs
// nothing, so the result is zero.
func Partial(f func(x ...float64) float64, index int, h float64) func(x ...float64) float64 {
	if h <= 0 {
		h = DefaultPartialStep
	}
	return func(x ...float64) float64 {
		shifted := make([]float64, len(x))
		copy(shifted, x)
		if index >= 0 && index < len(shifted) {
			shifted[index] += h
		}
		return (f(shifted...) - f(x...)) / h
	}
}

// PartialT returns ∂f/∂t of a scalar field.
func PartialT(f dynamo.Func, h float64) dynamo.Func {
	return field(Partial(variadic(f), 0, h))
}

// PartialY returns ∂f/∂y of a scalar field.
func PartialY(f dynamo.Func, h float64) dynamo.Func {
	return field(Partial(variadic(f), 1, h))
}

func variadic(f dynamo.Func) func(x ...float64) float64 {
	return func(x ...float64) float64 { return f(x[0], x[1]) }
}

func field(g func(x ...float64) float64) dynamo.Func {
	return func(t, y float64) float64 { return g(t, y) }
}
