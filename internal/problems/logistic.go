package problems

import (
	"fmt"
	"math"

	"github.com/san-kum/ivp/internal/dynamo"
)

type Logistic struct {
	Rate     float64
	Capacity float64
}

func NewLogistic() *Logistic {
	return &Logistic{
		Rate:     1.0,
		Capacity: 10.0,
	}
}

func (l *Logistic) Name() string { return "logistic" }

func (l *Logistic) Field() dynamo.Func {
	r, k := l.Rate, l.Capacity
	return func(t, y float64) float64 { return r * y * (1 - y/k) }
}

func (l *Logistic) Exact(t0, y0, t float64) float64 {
	if y0 == 0 {
		return 0
	}
	growth := math.Exp(l.Rate * (t - t0))
	return l.Capacity * y0 * growth / (l.Capacity + y0*(growth-1))
}

func (l *Logistic) GetParams() map[string]float64 {
	return map[string]float64{
		"rate":     l.Rate,
		"capacity": l.Capacity,
	}
}

func (l *Logistic) SetParam(name string, value float64) error {
	switch name {
	case "rate":
		l.Rate = value
	case "capacity":
		if value == 0 {
			return fmt.Errorf("%w: capacity must be non-zero", dynamo.ErrInvalidConfig)
		}
		l.Capacity = value
	default:
		return fmt.Errorf("%w: %s has no parameter %q", dynamo.ErrUnknownParam, l.Name(), name)
	}
	return nil
}
