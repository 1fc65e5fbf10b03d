package rootfind

// Derivative supplies f'(x) to the Newton iteration.
type Derivative interface {
	Slope(f func(float64) float64, x float64) float64
}

// Analytic wraps a known derivative function.
type Analytic func(float64) float64

func (a Analytic) Slope(_ func(float64) float64, x float64) float64 {
	return a(x)
}

// ForwardDifference approximates f'(x) by (f(x+H) - f(x)) / H.
type ForwardDifference struct {
	H float64
}

func (d ForwardDifference) Slope(f func(float64) float64, x float64) float64 {
	h := d.H
	if h <= 0 {
		h = DefaultH
	}
	return (f(x+h) - f(x)) / h
}
