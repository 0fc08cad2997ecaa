// SPDX-License-Identifier: MIT
// Package: treeembed/topology
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • branching = DefaultBranching (4)

package topology

// treeConfig aggregates all knobs used by New. Passed by value.
type treeConfig struct {
	branching int
}

// newTreeConfig starts from defaults and applies options in order
// (later options override earlier ones).
// Complexity: O(len(opts)).
func newTreeConfig(opts ...Option) treeConfig {
	cfg := treeConfig{
		branching: DefaultBranching,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
