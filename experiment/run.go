// SPDX-License-Identifier: MIT
// Package: treeembed/experiment
//
// run.go — end-to-end composition: Config → tree → energy → stepper →
// initial points → descent.Run.

package experiment

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/treeembed/descent"
	"github.com/katalvlaran/treeembed/energy"
	"github.com/katalvlaran/treeembed/geom"
	"github.com/katalvlaran/treeembed/topology"
)

// Outcome bundles everything a run produced.
type Outcome struct {
	Config  Config
	Tree    *topology.Tree
	Initial []geom.Point
	Result  *descent.Result
}

// Deviation returns |E − Reference|, or NaN when no reference is set.
func (o *Outcome) Deviation() float64 {
	if o.Config.Reference == 0 {
		return math.NaN()
	}

	return math.Abs(o.Result.Energy - o.Config.Reference)
}

// Parents returns the parent index of every node (−1 for the root).
func (o *Outcome) Parents() []int {
	out := make([]int, o.Tree.Len())
	for i := range out {
		p, ok := o.Tree.Parent(i)
		if !ok {
			p = -1
		}
		out[i] = p
	}

	return out
}

// Build resolves cfg into the energy function and update rule it describes.
func Build(cfg Config) (*energy.Pairwise, descent.Stepper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("Build: %w", err)
	}
	g, _ := cfg.GeometryKind()

	tr, err := topology.New(cfg.Points, topology.WithBranching(cfg.Branching))
	if err != nil {
		return nil, nil, fmt.Errorf("Build: %w", err)
	}
	fn, err := energy.New(g, tr)
	if err != nil {
		return nil, nil, fmt.Errorf("Build: %w", err)
	}

	var step descent.Stepper = descent.SteepestDescent{}
	if g == energy.GeometryHyperbolic {
		step = descent.Riemannian{Clip: cfg.ClipBound}
	}

	return fn, step, nil
}

// Run executes cfg. Samples are written to w (nil discards them) and are
// also kept in the Result.
func Run(ctx context.Context, cfg Config, w io.Writer) (*Outcome, error) {
	fn, step, err := Build(cfg)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	start, err := descent.InitialPoints(cfg.Points, cfg.InitScale, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	opts := []descent.Option{
		descent.WithContext(ctx),
		descent.WithIterations(cfg.Iterations),
		descent.WithReportEvery(cfg.ReportEvery),
		descent.WithLearningRate(cfg.LearningRate),
		descent.WithTrace(),
	}
	if w != nil {
		opts = append(opts, descent.WithOnReport(NewReporter(w).Report))
	}

	res, err := descent.Run(fn, step, start, opts...)
	if err != nil {
		return nil, fmt.Errorf("Run: %s: %w", cfg.Geometry, err)
	}

	return &Outcome{Config: cfg, Tree: fn.Tree(), Initial: start, Result: res}, nil
}
