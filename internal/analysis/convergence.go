package analysis

import (
	"context"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/ivp/internal/dynamo"
	"github.com/san-kum/ivp/internal/problems"
)

// Level is one refinement of a convergence study.
type Level struct {
	Steps int
	H     float64
	Error float64
	// Order is the observed order against the previous level, NaN for the
	// coarsest one.
	Order float64
}

type Convergence struct {
	Problem string
	Levels  []Level
	// Slope is the least-squares slope of log(error) against log(h).
	Slope float64
}

// ConvergenceStudy solves p on uniform grids over [t0, t1] with the given
// step counts and compares the final value with the exact solution.
func ConvergenceStudy(
	ctx context.Context,
	m dynamo.Method,
	p problems.Problem,
	y0, t0, t1 float64,
	steps []int,
) (*Convergence, error) {
	if len(steps) < 2 {
		return nil, fmt.Errorf("%w: convergence study needs at least two levels", dynamo.ErrInvalidConfig)
	}
	if t1 == t0 {
		return nil, fmt.Errorf("%w: empty interval", dynamo.ErrInvalidConfig)
	}

	sorted := append([]int(nil), steps...)
	sort.Ints(sorted)
	if sorted[0] < 1 {
		return nil, fmt.Errorf("%w: step counts must be positive", dynamo.ErrInvalidConfig)
	}

	f := p.Field()
	exact := p.Exact(t0, y0, t1)

	c := &Convergence{
		Problem: p.Name(),
		Levels:  make([]Level, 0, len(sorted)),
	}

	for i, n := range sorted {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		traj, err := m.Solve(f, dynamo.Grid(t0, t1, n), y0)
		if err != nil {
			return nil, fmt.Errorf("level %d (%d steps): %w", i, n, err)
		}

		lvl := Level{
			Steps: n,
			H:     (t1 - t0) / float64(n),
			Error: math.Abs(traj.Last() - exact),
			Order: math.NaN(),
		}
		if i > 0 {
			prev := c.Levels[i-1]
			lvl.Order = math.Log(prev.Error/lvl.Error) / math.Log(prev.H/lvl.H)
		}
		c.Levels = append(c.Levels, lvl)
	}

	c.Slope = fitSlope(c.Levels)
	return c, nil
}

// fitSlope ignores levels with a zero error, which have no logarithm.
func fitSlope(levels []Level) float64 {
	xs := make([]float64, 0, len(levels))
	ys := make([]float64, 0, len(levels))
	for _, l := range levels {
		if l.Error > 0 && !math.IsInf(l.Error, 0) && !math.IsNaN(l.Error) {
			xs = append(xs, math.Log(math.Abs(l.H)))
			ys = append(ys, math.Log(l.Error))
		}
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	_, beta := stat.LinearRegression(xs, ys, nil, false)
	return beta
}
