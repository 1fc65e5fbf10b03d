package integrators

import (
	"fmt"
	"strings"

	"github.com/san-kum/ivp/internal/dynamo"
)

// Bootstrap selects how leapfrog produces its second trajectory entry.
type Bootstrap int

const (
	BootstrapConstant Bootstrap = iota
	BootstrapEuler
	BootstrapMidpoint
)

func (b Bootstrap) String() string {
	switch b {
	case BootstrapConstant:
		return "constant"
	case BootstrapEuler:
		return "euler"
	case BootstrapMidpoint:
		return "midpoint"
	default:
		return fmt.Sprintf("Bootstrap(%d)", int(b))
	}
}

func ParseBootstrap(s string) (Bootstrap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "constant":
		return BootstrapConstant, nil
	case "euler":
		return BootstrapEuler, nil
	case "midpoint":
		return BootstrapMidpoint, nil
	default:
		return 0, fmt.Errorf("%w: %q", dynamo.ErrUnknownBootstrap, s)
	}
}

// Leapfrog is the explicit two-step method y_{n+1} = y_{n-1} + 2h f(t_n, y_n)
// with h = t_{n+1} - t_n.
type Leapfrog struct {
	Bootstrap Bootstrap
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{Bootstrap: BootstrapMidpoint}
}

func (l *Leapfrog) Solve(f dynamo.Func, tEval []float64, y0 float64) (dynamo.Trajectory, error) {
	res, err := l.seed(f, tEval, y0)
	if err != nil {
		return nil, err
	}

	for i := 2; i < len(tEval); i++ {
		tPrev := tEval[i-1]
		h := tEval[i] - tPrev
		res = append(res, 2*h*f(tPrev, res[i-1])+res[i-2])
	}
	return res, nil
}

// seed returns the first two entries, or [y0] on a grid shorter than two.
func (l *Leapfrog) seed(f dynamo.Func, tEval []float64, y0 float64) (dynamo.Trajectory, error) {
	var first dynamo.Trajectory
	switch l.Bootstrap {
	case BootstrapConstant:
		first = dynamo.Trajectory{y0, y0}
	case BootstrapEuler:
		first, _ = NewEuler().Solve(f, head(tEval), y0)
	case BootstrapMidpoint:
		first, _ = NewMidpoint().Solve(f, head(tEval), y0)
	default:
		return nil, fmt.Errorf("%w: %v", dynamo.ErrUnknownBootstrap, l.Bootstrap)
	}

	res := make(dynamo.Trajectory, 0, max(len(tEval), 1))
	if len(tEval) < 2 {
		return append(res, y0), nil
	}
	return append(res, first...), nil
}

func head(tEval []float64) []float64 {
	if len(tEval) > 2 {
		return tEval[:2]
	}
	return tEval
}
