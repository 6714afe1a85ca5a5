package lights

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/zeebo/errs"
	"github.com/zeebo/mon"
	"golang.org/x/sync/errgroup"
)

// Options configures Solve.
type Options struct {
	// Workers bounds how many machines are solved at once. Zero or less
	// means GOMAXPROCS.
	Workers int

	// Solver is used for the joltage targets of every machine.
	Solver Solver
}

// Totals are the answers summed across machines.
type Totals struct {
	// Activations is the sum of the fewest buttons toggling each machine's
	// lights to its target.
	Activations int

	// Presses is the sum of the fewest presses reaching each machine's
	// joltage targets.
	Presses int
}

type answer struct {
	activations int
	presses     int
}

var solveThunk mon.Thunk

// Solve solves every machine independently and sums the answers. Any machine
// that fails aborts the whole solve.
func Solve(ctx context.Context, machines []*Machine, opts Options) (t Totals, err error) {
	timer := solveThunk.Start()
	defer timer.Stop(&err)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	answers := make([]answer, len(machines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range machines {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			activations, err := m.MinActivations()
			if err != nil {
				return &machineError{index: i, err: err}
			}
			presses, err := opts.Solver.MinTotalPresses(m)
			if err != nil {
				return &machineError{index: i, err: err}
			}

			answers[i] = answer{activations: activations, presses: presses}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Totals{}, err
	}
	if err := ctx.Err(); err != nil {
		return Totals{}, errs.Wrap(err)
	}

	for _, a := range answers {
		t.Activations += a.activations
		t.Presses += a.presses
	}
	return t, nil
}

// machineError records which machine failed while keeping the class of the
// underlying error visible to Class.Has.
type machineError struct {
	index int
	err   error
}

func (e *machineError) Error() string { return fmt.Sprintf("machine %d: %v", e.index, e.err) }
func (e *machineError) Cause() error  { return e.err }
func (e *machineError) Unwrap() error { return e.err }

// FailedMachine returns the index of the machine that caused err, if any.
func FailedMachine(err error) (int, bool) {
	var me *machineError
	if errors.As(err, &me) {
		return me.index, true
	}
	return 0, false
}
