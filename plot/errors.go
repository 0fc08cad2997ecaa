// SPDX-License-Identifier: MIT
// Package: treeembed/plot
//
// errors.go — sentinel errors for rendering.

package plot

import "errors"

var (
	// ErrNoPoints indicates an empty point collection.
	ErrNoPoints = errors.New("plot: no points")

	// ErrSizeMismatch indicates len(parents) != len(pts), or a parent index
	// outside the collection.
	ErrSizeMismatch = errors.New("plot: parents do not match points")

	// ErrNonFinite indicates a NaN or infinite coordinate.
	ErrNonFinite = errors.New("plot: non-finite coordinate")

	// ErrScreenTooSmall indicates a screen with no usable plot area.
	ErrScreenTooSmall = errors.New("plot: screen too small")
)

const (
	methodRender = "Render"
	methodCSV    = "WriteCSV"
)
