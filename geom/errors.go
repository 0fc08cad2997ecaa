package geom

import "errors"

var (
	// ErrCoincidentPoints indicates two distinct nodes share the same
	// coordinates, where 1/r and the distance gradients are singular.
	ErrCoincidentPoints = errors.New("geom: coincident points")

	// ErrOutsideDisk indicates a point with ‖x‖ ≥ 1 (or a NaN coordinate)
	// where a Poincaré-disk quantity was requested.
	ErrOutsideDisk = errors.New("geom: point outside the open unit disk")
)
