package problems

import (
	"fmt"
	"math"

	"github.com/san-kum/ivp/internal/dynamo"
)

type Growth struct {
	Rate float64
}

func NewGrowth() *Growth {
	return &Growth{Rate: 1.0}
}

func (g *Growth) Name() string { return "growth" }

func (g *Growth) Field() dynamo.Func {
	k := g.Rate
	return func(t, y float64) float64 { return k * y }
}

func (g *Growth) Exact(t0, y0, t float64) float64 {
	return y0 * math.Exp(g.Rate*(t-t0))
}

func (g *Growth) GetParams() map[string]float64 {
	return map[string]float64{"rate": g.Rate}
}

func (g *Growth) SetParam(name string, value float64) error {
	switch name {
	case "rate":
		g.Rate = value
	default:
		return fmt.Errorf("%w: %s has no parameter %q", dynamo.ErrUnknownParam, g.Name(), name)
	}
	return nil
}

type Decay struct {
	Rate float64
}

func NewDecay() *Decay {
	return &Decay{Rate: 1.0}
}

func (d *Decay) Name() string { return "decay" }

func (d *Decay) Field() dynamo.Func {
	k := d.Rate
	return func(t, y float64) float64 { return -k * y }
}

func (d *Decay) Exact(t0, y0, t float64) float64 {
	return y0 * math.Exp(-d.Rate*(t-t0))
}

func (d *Decay) GetParams() map[string]float64 {
	return map[string]float64{"rate": d.Rate}
}

func (d *Decay) SetParam(name string, value float64) error {
	switch name {
	case "rate":
		d.Rate = value
	default:
		return fmt.Errorf("%w: %s has no parameter %q", dynamo.ErrUnknownParam, d.Name(), name)
	}
	return nil
}
