package energy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/treeembed/geom"
)

// DefaultCheckStep is the central-difference step used when CheckGradient
// receives h ≤ 0.
const DefaultCheckStep = 1e-6

// NumericalGradient approximates ∇E(pts) with central differences of step h
// and stores it into grad. pts is not modified.
// Complexity: 4·n energy evaluations, i.e. O(n³).
func NumericalGradient(fn Function, pts, grad []geom.Point, h float64) error {
	if len(grad) != len(pts) {
		return fmt.Errorf("%s: len(grad)=%d, want %d: %w", methodCheck, len(grad), len(pts), ErrSizeMismatch)
	}
	if h <= 0 {
		h = DefaultCheckStep
	}
	work := make([]geom.Point, len(pts))
	copy(work, pts)

	probe := func(i int, delta geom.Point) (float64, error) {
		work[i] = pts[i].Add(delta)
		e, err := fn.Energy(work)
		work[i] = pts[i]

		return e, err
	}

	for i := range pts {
		xp, err := probe(i, geom.Point{X: h})
		if err != nil {
			return err
		}
		xm, err := probe(i, geom.Point{X: -h})
		if err != nil {
			return err
		}
		yp, err := probe(i, geom.Point{Y: h})
		if err != nil {
			return err
		}
		ym, err := probe(i, geom.Point{Y: -h})
		if err != nil {
			return err
		}
		grad[i] = geom.Point{X: (xp - xm) / (2 * h), Y: (yp - ym) / (2 * h)}
	}

	return nil
}

// CheckGradient returns the relative discrepancy between fn's analytic
// gradient and central differences at pts:
//
//	max_i,axis |analytic − numeric| / max(max_i,axis |analytic|, 1e-12)
func CheckGradient(fn Function, pts []geom.Point, h float64) (float64, error) {
	analytic := make([]geom.Point, len(pts))
	if err := fn.Gradient(pts, analytic); err != nil {
		return math.NaN(), fmt.Errorf("%s: %w", methodCheck, err)
	}
	numeric := make([]geom.Point, len(pts))
	if err := NumericalGradient(fn, pts, numeric, h); err != nil {
		return math.NaN(), fmt.Errorf("%s: %w", methodCheck, err)
	}

	var maxDiff, maxMag float64
	for i := range analytic {
		maxDiff = math.Max(maxDiff, math.Abs(analytic[i].X-numeric[i].X))
		maxDiff = math.Max(maxDiff, math.Abs(analytic[i].Y-numeric[i].Y))
		maxMag = math.Max(maxMag, math.Abs(analytic[i].X))
		maxMag = math.Max(maxMag, math.Abs(analytic[i].Y))
	}

	return maxDiff / math.Max(maxMag, 1e-12), nil
}
