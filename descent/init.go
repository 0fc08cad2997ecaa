package descent

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/treeembed/geom"
)

// DefaultInitScale keeps the initial cloud near the degenerate all-at-origin
// configuration.
const DefaultInitScale = 1e-3

// InitialPoints draws n points whose coordinates are independent
// N(0, 1)·scale samples.
//
// Determinism: a master source seeded with seed is split into n sub-seeds,
// and point i is drawn from its own sub-stream. The same (n, scale, seed)
// always yields the same points, and point i does not depend on how many
// points follow it.
//
// Errors:
//   - ErrTooFewPoints if n ≤ 0.
//   - ErrBadScale if scale ≤ 0, NaN or ±Inf.
//
// Complexity: O(n).
func InitialPoints(n int, scale float64, seed int64) ([]geom.Point, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodInit, n, ErrTooFewPoints)
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%s: scale=%g: %w", methodInit, scale, ErrBadScale)
	}

	master := rand.New(rand.NewSource(seed))
	pts := make([]geom.Point, n)
	for i := range pts {
		sub := rand.New(rand.NewSource(master.Int63()))
		pts[i] = geom.Point{X: sub.NormFloat64() * scale, Y: sub.NormFloat64() * scale}
	}

	return pts, nil
}
