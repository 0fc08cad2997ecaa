// SPDX-License-Identifier: MIT
// Package: treeembed/descent
//
// errors.go — sentinel errors for initialization, stepping and the driver.

package descent

import "errors"

var (
	// ErrOptionViolation indicates an invalid Option value (non-positive
	// iteration count, negative report cadence, bad learning rate…).
	// Recorded by the option and surfaced by Run before the loop starts.
	ErrOptionViolation = errors.New("descent: invalid option supplied")

	// ErrTooFewPoints indicates InitialPoints was asked for n ≤ 0 points.
	ErrTooFewPoints = errors.New("descent: point count must be positive")

	// ErrBadScale indicates a non-positive or non-finite initialization scale.
	ErrBadScale = errors.New("descent: initialization scale must be positive and finite")

	// ErrNilFunction indicates Run received a nil energy function or stepper.
	ErrNilFunction = errors.New("descent: nil function or stepper")

	// ErrDiverged indicates an update produced a NaN or infinite coordinate.
	ErrDiverged = errors.New("descent: iterate is not finite")
)

// Method tags used as error prefixes.
const (
	methodRun     = "Run"
	methodInit    = "InitialPoints"
	methodStep    = "Step"
	methodRiemann = "Riemannian.Step"
)
