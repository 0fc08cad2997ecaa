// SPDX-License-Identifier: MIT
// Package: treeembed/store
//
// errors.go — sentinel errors for the run archive.

package store

import "errors"

var (
	// ErrRunNotFound indicates no run with the requested id exists.
	ErrRunNotFound = errors.New("store: run not found")

	// ErrNodeOutOfRange indicates a node index outside [0, n_points).
	ErrNodeOutOfRange = errors.New("store: node index out of range")

	// ErrIncompleteOutcome indicates SaveRun received an outcome without a
	// tree, result or matching point count.
	ErrIncompleteOutcome = errors.New("store: incomplete outcome")

	// ErrBadEmbedding indicates a stored embedding BLOB of the wrong size.
	ErrBadEmbedding = errors.New("store: invalid embedding blob")
)

const (
	methodOpen    = "Open"
	methodSave    = "SaveRun"
	methodLoad    = "LoadRun"
	methodList    = "ListRuns"
	methodNearest = "Nearest"
)
