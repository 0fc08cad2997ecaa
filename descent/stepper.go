// SPDX-License-Identifier: MIT
// Package: treeembed/descent
//
// stepper.go — update rules.
//
// Contract (every Stepper):
//   • Reads pts and grad, writes the next iterate into dst; pts is never
//     modified, so the collection is replaced rather than mutated.
//   • len(dst) == len(pts) == len(grad).
//   • Returns ErrDiverged (SteepestDescent) or geom.ErrOutsideDisk
//     (Riemannian) naming the first offending node.

package descent

import (
	"fmt"
	"math"

	"github.com/katalvlaran/treeembed/energy"
	"github.com/katalvlaran/treeembed/geom"
)

// Stepper turns the current iterate and its gradient into the next iterate.
type Stepper interface {
	Step(dst, pts, grad []geom.Point, lr float64) error
}

// SteepestDescent is the plain ambient-metric rule P' = P − lr·∇E.
type SteepestDescent struct{}

var _ Stepper = SteepestDescent{}

// Step implements Stepper.
func (SteepestDescent) Step(dst, pts, grad []geom.Point, lr float64) error {
	if err := checkLens(methodStep, dst, pts, grad); err != nil {
		return err
	}
	for i := range pts {
		dst[i] = pts[i].Sub(grad[i].Scale(lr))
		if !dst[i].IsFinite() {
			return fmt.Errorf("%s: node %d: %w", methodStep, i, ErrDiverged)
		}
	}

	return nil
}

// DefaultClip is the component bound of the Riemannian step.
const DefaultClip = 1.0

// Riemannian is the clipped Poincaré-disk rule
//
//	P' = P − clip(∇E·(1 − ‖P‖²)²/4, −Clip, Clip)·lr.
//
// A zero Clip means DefaultClip.
type Riemannian struct {
	Clip float64
}

var _ Stepper = Riemannian{}

// Step implements Stepper.
func (r Riemannian) Step(dst, pts, grad []geom.Point, lr float64) error {
	if err := checkLens(methodRiemann, dst, pts, grad); err != nil {
		return err
	}
	bound := r.Clip
	if bound == 0 {
		bound = DefaultClip
	}
	if !(bound > 0) || math.IsInf(bound, 0) {
		return fmt.Errorf("%s: clip=%g: %w", methodRiemann, bound, ErrOptionViolation)
	}

	for i := range pts {
		rg := grad[i].Scale(geom.InverseMetricScale(pts[i])).Clip(bound)
		dst[i] = pts[i].Sub(rg.Scale(lr))
		if !geom.InDisk(dst[i]) {
			return fmt.Errorf("%s: node %d moved to %v: %w", methodRiemann, i, dst[i], geom.ErrOutsideDisk)
		}
	}

	return nil
}

func checkLens(method string, dst, pts, grad []geom.Point) error {
	if len(dst) != len(pts) || len(grad) != len(pts) {
		return fmt.Errorf("%s: len(dst)=%d len(pts)=%d len(grad)=%d: %w",
			method, len(dst), len(pts), len(grad), energy.ErrSizeMismatch)
	}

	return nil
}
