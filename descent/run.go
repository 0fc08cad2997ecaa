// SPDX-License-Identifier: MIT
// Package: treeembed/descent
//
// run.go — the fixed-budget driver loop.

package descent

import (
	"fmt"

	"github.com/katalvlaran/treeembed/energy"
	"github.com/katalvlaran/treeembed/geom"
)

// Sample is one reported (iteration, energy) pair. Energy is measured on the
// iterate before that iteration's step is applied.
type Sample struct {
	Iteration int
	Energy    float64
}

// Result is the outcome of a completed run.
type Result struct {
	// Points is the final iterate (after the last step).
	Points []geom.Point

	// Energy is E(Points).
	Energy float64

	// Iterations is the number of steps executed.
	Iterations int

	// Samples holds reported samples when WithTrace was given.
	Samples []Sample
}

// Run iterates step over fn starting from init for a fixed budget.
//
// Loop, for it = 0 … Iterations−1:
//  1. E, ∇E ← fn.Evaluate(P)
//  2. if ReportEvery > 0 and it % ReportEvery == 0: OnReport({it, E})
//  3. P ← step(P, ∇E, LearningRate)
//
// init is copied; the caller's slice is never modified.
//
// Errors:
//   - ErrOptionViolation for invalid options (before any work).
//   - ErrNilFunction for nil fn or step.
//   - energy.ErrSizeMismatch if len(init) != fn.Len().
//   - Any energy/step/report/context error, wrapped with the iteration.
//
// Complexity: O(Iterations · cost(Evaluate)).
func Run(fn energy.Function, step Stepper, init []geom.Point, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, o.err)
	}
	if fn == nil || step == nil {
		return nil, fmt.Errorf("%s: %w", methodRun, ErrNilFunction)
	}
	if len(init) != fn.Len() {
		return nil, fmt.Errorf("%s: len(init)=%d, want %d: %w", methodRun, len(init), fn.Len(), energy.ErrSizeMismatch)
	}

	cur := make([]geom.Point, len(init))
	copy(cur, init)
	next := make([]geom.Point, len(init))
	grad := make([]geom.Point, len(init))

	res := &Result{}
	for it := 0; it < o.Iterations; it++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: iteration %d: %w", methodRun, it, err)
		}

		e, err := fn.Evaluate(cur, grad)
		if err != nil {
			return nil, fmt.Errorf("%s: iteration %d: %w", methodRun, it, err)
		}

		if o.ReportEvery > 0 && it%o.ReportEvery == 0 {
			s := Sample{Iteration: it, Energy: e}
			if o.Trace {
				res.Samples = append(res.Samples, s)
			}
			if err = o.OnReport(s); err != nil {
				return nil, fmt.Errorf("%s: report at iteration %d: %w", methodRun, it, err)
			}
		}

		if err = step.Step(next, cur, grad, o.LearningRate); err != nil {
			return nil, fmt.Errorf("%s: iteration %d: %w", methodRun, it, err)
		}
		cur, next = next, cur
		res.Iterations++
	}

	final, err := fn.Energy(cur)
	if err != nil {
		return nil, fmt.Errorf("%s: final energy: %w", methodRun, err)
	}
	res.Points = cur
	res.Energy = final

	return res, nil
}
