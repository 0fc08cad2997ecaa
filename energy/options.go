package energy

import (
	"fmt"
	"math"
)

// Default term weights.
const (
	DefaultRepulsion  = 1.0
	DefaultAttraction = 1.0
)

// config holds the resolved weights for one energy instance.
type config struct {
	repulsion  float64
	attraction float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		repulsion:  DefaultRepulsion,
		attraction: DefaultAttraction,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option customizes an energy instance.
type Option func(*config)

// WithRepulsion sets wr, the weight of every 1/d term.
// Panics on negative, NaN or infinite weights.
func WithRepulsion(w float64) Option {
	mustWeight("WithRepulsion", w)

	return func(c *config) { c.repulsion = w }
}

// WithAttraction sets wa, the weight of every d² spring term.
// Panics on negative, NaN or infinite weights.
func WithAttraction(w float64) Option {
	mustWeight("WithAttraction", w)

	return func(c *config) { c.attraction = w }
}

func mustWeight(name string, w float64) {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		panic(fmt.Sprintf("energy: %s(%g)", name, w))
	}
}
