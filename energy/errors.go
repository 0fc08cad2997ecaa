// SPDX-License-Identifier: MIT
// Package: treeembed/energy
//
// errors.go — sentinel errors for energy evaluation.
//
// Numeric failures from the metric itself surface as the geom sentinels
// (geom.ErrCoincidentPoints, geom.ErrOutsideDisk) wrapped with node context.

package energy

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch indicates a point or gradient slice whose length differs
	// from the tree's node count.
	ErrSizeMismatch = errors.New("energy: point count does not match tree")

	// ErrNonFinite indicates a NaN or infinite coordinate in the input.
	ErrNonFinite = errors.New("energy: non-finite coordinate")

	// ErrNilTree indicates a constructor received a nil topology.
	ErrNilTree = errors.New("energy: tree is nil")
)

// Method tags used as error prefixes.
const (
	methodEnergy   = "Energy"
	methodGradient = "Gradient"
	methodEvaluate = "Evaluate"
	methodCheck    = "CheckGradient"
)

func nodeErrorf(method string, i int, p fmt.Stringer, err error) error {
	return fmt.Errorf("%s: node %d at %v: %w", method, i, p, err)
}

func pairErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("%s: nodes %d and %d: %w", method, i, j, err)
}
