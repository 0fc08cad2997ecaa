// SPDX-License-Identifier: MIT
// Package: treeembed/topology
//
// options.go — functional options for New.
//
// Contract:
//   • Options mutate treeConfig before the tree is materialized.
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     New itself only returns sentinel errors.

package topology

import "fmt"

// Option customizes tree construction.
type Option func(*treeConfig)

// WithBranching sets the number of children owned by every internal node.
// Panics when k < MinBranching.
// Complexity: O(1).
func WithBranching(k int) Option {
	if k < MinBranching {
		panic(fmt.Sprintf("topology: WithBranching(%d)", k))
	}
	return func(c *treeConfig) {
		c.branching = k
	}
}
