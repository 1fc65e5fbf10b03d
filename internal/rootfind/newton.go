// Package rootfind locates zeros of scalar functions with Newton's method.
//
// The iteration is unsafeguarded: there is no bracketing, no
// line search and no divergence check. Hitting the iteration cap is not an
// error; the last iterate is returned and callers that need a convergence
// guarantee must check the residual themselves.
package rootfind

import (
	"math"

	"github.com/san-kum/ivp/internal/dynamo"
)

const (
	DefaultX0      = 1.0
	DefaultH       = 1e-4
	DefaultEps     = 1e-19
	DefaultMaxIter = 1_000_000
)

// Config controls a single Newton solve. It is passed by value and nothing
// is retained between calls.
type Config struct {
	// X0 is the initial guess.
	X0 float64
	// H is the forward-difference step used when no analytic derivative
	// is available.
	H float64
	// Eps stops the iteration once successive iterates differ by less.
	Eps float64
	// MaxIter caps the number of iterations.
	MaxIter int
	// FPrime is an optional analytic derivative.
	FPrime func(float64) float64
	// Provider overrides derivative selection entirely when set.
	Provider Derivative
}

func DefaultConfig() Config {
	return Config{
		X0:      DefaultX0,
		H:       DefaultH,
		Eps:     DefaultEps,
		MaxIter: DefaultMaxIter,
	}
}

// withDefaults fills zero fields; X0 is left alone since zero is a valid guess.
func (c Config) withDefaults() Config {
	if c.H <= 0 {
		c.H = DefaultH
	}
	if c.Eps <= 0 {
		c.Eps = DefaultEps
	}
	if c.MaxIter <= 0 {
		c.MaxIter = DefaultMaxIter
	}
	return c
}

// derivative picks the provider once per solve.
func (c Config) derivative() Derivative {
	if c.Provider != nil {
		return c.Provider
	}
	if c.FPrime != nil {
		return Analytic(c.FPrime)
	}
	return ForwardDifference{H: c.H}
}

// Newton iterates x <- x - f(x)/f'(x) from cfg.X0.
//
// It returns the first iterate that moves less than cfg.Eps, or the last
// iterate once cfg.MaxIter is exhausted. A derivative of exactly zero
// returns dynamo.ErrDivisionByZero together with the iterate it stalled on.
func Newton(f func(float64) float64, cfg Config) (float64, error) {
	cfg = cfg.withDefaults()
	deriv := cfg.derivative()

	current := cfg.X0
	for i := 0; i < cfg.MaxIter; i++ {
		slope := deriv.Slope(f, current)
		if slope == 0 {
			return current, dynamo.ErrDivisionByZero
		}

		next := current - f(current)/slope
		if math.Abs(next-current) < cfg.Eps {
			return next, nil
		}
		current = next
	}

	return current, nil
}
