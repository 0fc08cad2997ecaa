// SPDX-License-Identifier: MIT
// Package: treeembed/topology
//
// errors.go — sentinel errors for the topology package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Context is attached at the call site with %w, never baked into the
//     sentinel text.
//   • Option constructors (WithX) panic on meaningless input; New never panics.

package topology

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates that the requested node count is below the minimum
// of one root node.
var ErrTooFewNodes = errors.New("topology: node count too small")

// ErrNodeOutOfRange indicates that a node index does not belong to the tree.
var ErrNodeOutOfRange = errors.New("topology: node index out of range")

// topologyErrorf prefixes a formatted message with the method name and wraps
// the given sentinel, producing "<Method>: <message>: <sentinel>".
func topologyErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
