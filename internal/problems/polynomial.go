package problems

import (
	"fmt"
	"math"

	"github.com/san-kum/ivp/internal/dynamo"
)

// Constant has a time-independent slope, so y is a straight line.
type Constant struct {
	Slope float64
}

func NewConstant() *Constant {
	return &Constant{Slope: 1.0}
}

func (c *Constant) Name() string { return "constant" }

func (c *Constant) Field() dynamo.Func {
	s := c.Slope
	return func(t, y float64) float64 { return s }
}

func (c *Constant) Exact(t0, y0, t float64) float64 {
	return y0 + c.Slope*(t-t0)
}

func (c *Constant) GetParams() map[string]float64 {
	return map[string]float64{"slope": c.Slope}
}

func (c *Constant) SetParam(name string, value float64) error {
	switch name {
	case "slope":
		c.Slope = value
	default:
		return fmt.Errorf("%w: %s has no parameter %q", dynamo.ErrUnknownParam, c.Name(), name)
	}
	return nil
}

// Product is y' = t y, a non-autonomous field whose partials are both
// non-zero.
type Product struct{}

func NewProduct() *Product {
	return &Product{}
}

func (p *Product) Name() string { return "product" }

func (p *Product) Field() dynamo.Func {
	return func(t, y float64) float64 { return t * y }
}

func (p *Product) Exact(t0, y0, t float64) float64 {
	return y0 * math.Exp((t*t-t0*t0)/2)
}

func (p *Product) GetParams() map[string]float64 {
	return map[string]float64{}
}

func (p *Product) SetParam(name string, value float64) error {
	return fmt.Errorf("%w: %s has no parameter %q", dynamo.ErrUnknownParam, p.Name(), name)
}

// Cosine is y' = cos(t) scaled by Amplitude.
type Cosine struct {
	Amplitude float64
}

func NewCosine() *Cosine {
	return &Cosine{Amplitude: 1.0}
}

func (c *Cosine) Name() string { return "cosine" }

func (c *Cosine) Field() dynamo.Func {
	a := c.Amplitude
	return func(t, y float64) float64 { return a * math.Cos(t) }
}

func (c *Cosine) Exact(t0, y0, t float64) float64 {
	return y0 + c.Amplitude*(math.Sin(t)-math.Sin(t0))
}

func (c *Cosine) GetParams() map[string]float64 {
	return map[string]float64{"amplitude": c.Amplitude}
}

func (c *Cosine) SetParam(name string, value float64) error {
	switch name {
	case "amplitude":
		c.Amplitude = value
	default:
		return fmt.Errorf("%w: %s has no parameter %q", dynamo.ErrUnknownParam, c.Name(), name)
	}
	return nil
}
