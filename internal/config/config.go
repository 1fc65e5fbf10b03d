package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ivp/internal/rootfind"
)

const (
	DefaultT0    = 0.0
	DefaultT1    = 1.0
	DefaultSteps = 100
	DefaultY0    = 1.0
)

type Config struct {
	Problem string             `yaml:"problem"`
	Method  string             `yaml:"method"`
	Y0      float64            `yaml:"y0"`
	T0      float64            `yaml:"t0"`
	T1      float64            `yaml:"t1"`
	Steps   int                `yaml:"steps"`
	Times   []float64          `yaml:"times,omitempty"`
	Params  map[string]float64 `yaml:"params,omitempty"`
	Solver  SolverConfig       `yaml:"solver"`
}

// SolverConfig overrides the Newton settings of the implicit methods.
// Zero values keep the defaults.
type SolverConfig struct {
	X0      *float64 `yaml:"x0,omitempty"`
	H       float64  `yaml:"h,omitempty"`
	Eps     float64  `yaml:"eps,omitempty"`
	MaxIter int      `yaml:"max_iter,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem: "growth",
		Method:  "euler",
		Y0:      DefaultY0,
		T0:      DefaultT0,
		T1:      DefaultT1,
		Steps:   DefaultSteps,
	}
}

func Load(path string) (*Config, error) {
	return LoadOnto(path, DefaultConfig())
}

// LoadOnto reads path over a copy of base, so keys missing from the file
// keep the values of base.
func LoadOnto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Clone() *Config {
	out := *c
	if c.Times != nil {
		out.Times = append([]float64(nil), c.Times...)
	}
	if c.Params != nil {
		out.Params = make(map[string]float64, len(c.Params))
		for k, v := range c.Params {
			out.Params[k] = v
		}
	}
	if c.Solver.X0 != nil {
		x0 := *c.Solver.X0
		out.Solver.X0 = &x0
	}
	return &out
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Newton returns the root-finder settings with the overrides applied.
func (s SolverConfig) Newton() rootfind.Config {
	c := rootfind.DefaultConfig()
	if s.X0 != nil {
		c.X0 = *s.X0
	}
	if s.H > 0 {
		c.H = s.H
	}
	if s.Eps > 0 {
		c.Eps = s.Eps
	}
	if s.MaxIter > 0 {
		c.MaxIter = s.MaxIter
	}
	return c
}

func (s SolverConfig) IsZero() bool {
	return s.X0 == nil && s.H == 0 && s.Eps == 0 && s.MaxIter == 0
}
