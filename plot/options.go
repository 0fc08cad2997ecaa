// SPDX-License-Identifier: MIT
// Package: treeembed/plot
//
// options.go — rendering options.

package plot

// Option customizes Render.
type Option func(*config)

type config struct {
	title string
	disk  bool
}

// WithTitle draws s on the top row; the plot area starts below it.
func WithTitle(s string) Option {
	return func(c *config) { c.title = s }
}

// WithDisk fixes the view to [-1, 1]² and traces the unit circle.
func WithDisk() Option {
	return func(c *config) { c.disk = true }
}
