package dynamo

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Member struct {
	Name   string
	Method Method
}

type Outcome struct {
	Name       string
	Trajectory Trajectory
	Err        error
}

// Ensemble solves the same problem with several methods at once.
type Ensemble struct {
	members []Member
	limit   int
}

// NewEnsemble returns an ensemble running at most limit solves in
// parallel; limit <= 0 means no limit.
func NewEnsemble(limit int) *Ensemble {
	return &Ensemble{limit: limit}
}

func (e *Ensemble) Add(name string, m Method) {
	e.members = append(e.members, Member{Name: name, Method: m})
}

func (e *Ensemble) Len() int { return len(e.members) }

// Run solves every member on a private copy of tEval. Stepper failures are
// reported per member in Outcome.Err; only context cancellation aborts the
// whole run.
func (e *Ensemble) Run(ctx context.Context, f Func, tEval []float64, y0 float64) ([]Outcome, error) {
	outcomes := make([]Outcome, len(e.members))

	g, gctx := errgroup.WithContext(ctx)
	if e.limit > 0 {
		g.SetLimit(e.limit)
	}

	for i, m := range e.members {
		i, m := i, m
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			times := make([]float64, len(tEval))
			copy(times, tEval)

			traj, err := m.Method.Solve(f, times, y0)
			outcomes[i] = Outcome{Name: m.Name, Trajectory: traj, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
