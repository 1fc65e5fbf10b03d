package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/ivp/internal/dynamo"
	"github.com/san-kum/ivp/internal/integrators"
	"github.com/san-kum/ivp/internal/metrics"
	"github.com/san-kum/ivp/internal/problems"
	"github.com/san-kum/ivp/internal/rootfind"
)

type Registry struct {
	problems map[string]func() problems.Problem
	methods  map[string]func() dynamo.Method
}

func NewRegistry() *Registry {
	r := &Registry{
		problems: make(map[string]func() problems.Problem),
		methods:  make(map[string]func() dynamo.Method),
	}

	r.problems["growth"] = func() problems.Problem { return problems.NewGrowth() }
	r.problems["decay"] = func() problems.Problem { return problems.NewDecay() }
	r.problems["constant"] = func() problems.Problem { return problems.NewConstant() }
	r.problems["product"] = func() problems.Problem { return problems.NewProduct() }
	r.problems["logistic"] = func() problems.Problem { return problems.NewLogistic() }
	r.problems["cosine"] = func() problems.Problem { return problems.NewCosine() }

	r.methods["euler"] = func() dynamo.Method { return integrators.NewEuler() }
	r.methods["midpoint"] = func() dynamo.Method { return integrators.NewMidpoint() }
	r.methods["taylor2"] = func() dynamo.Method { return integrators.NewTaylor2() }
	r.methods["leapfrog"] = func() dynamo.Method { return integrators.NewLeapfrog() }
	r.methods["leapfrog-euler"] = func() dynamo.Method {
		return &integrators.Leapfrog{Bootstrap: integrators.BootstrapEuler}
	}
	r.methods["leapfrog-constant"] = func() dynamo.Method {
		return &integrators.Leapfrog{Bootstrap: integrators.BootstrapConstant}
	}
	r.methods["trapezoidal"] = func() dynamo.Method { return integrators.NewTrapezoidal(false) }
	r.methods["heun"] = func() dynamo.Method { return integrators.NewTrapezoidal(true) }
	r.methods["backward-euler"] = func() dynamo.Method { return integrators.NewBackwardEuler() }
	r.methods["y-midpoint"] = func() dynamo.Method { return integrators.NewYMidpoint() }

	return r
}

func (r *Registry) GetProblem(name string) (problems.Problem, error) {
	fn, ok := r.problems[name]
	if !ok {
		return nil, fmt.Errorf("unknown problem: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetMethod(name string) (dynamo.Method, error) {
	fn, ok := r.methods[name]
	if !ok {
		return nil, fmt.Errorf("unknown method: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListProblems() []string {
	return sortedKeys(r.problems)
}

func (r *Registry) ListMethods() []string {
	return sortedKeys(r.methods)
}

func (r *Registry) DefaultMetrics() []metrics.Metric {
	return metrics.Defaults()
}

// ApplySolver overrides the Newton settings of implicit methods. It reports
// whether m accepted them.
func ApplySolver(m dynamo.Method, cfg rootfind.Config) bool {
	sc, ok := m.(integrators.SolverConfigurable)
	if !ok {
		return false
	}
	sc.SetSolver(cfg)
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
