package geom

import "math"

// InDisk reports whether p lies strictly inside the unit disk.
// NaN coordinates are never inside.
func InDisk(p Point) bool {
	return p.NormSq() < 1
}

// ConformalFactor returns λ(p) = 2 / (1 − ‖p‖²), the scale of the Poincaré
// metric relative to the Euclidean one at p.
//
// Errors:
//   - ErrOutsideDisk when p is not strictly inside the disk.
func ConformalFactor(p Point) (float64, error) {
	if !InDisk(p) {
		return math.NaN(), ErrOutsideDisk
	}

	return 2 / (1 - p.NormSq()), nil
}

// InverseMetricScale returns 1/λ(p)² = (1 − ‖p‖²)² / 4, the factor that turns
// an ambient gradient into the Riemannian gradient at p.
// Outside the disk the formula is still evaluated; callers that need domain
// validity check InDisk first.
func InverseMetricScale(p Point) float64 {
	a := 1 - p.NormSq()

	return a * a / 4
}

// PoincareDistance returns the hyperbolic distance between x and y.
// Coincident points yield 0 without error.
//
// Errors:
//   - ErrOutsideDisk when either point is not strictly inside the disk.
//
// Complexity: O(1).
func PoincareDistance(x, y Point) (float64, error) {
	if !InDisk(x) || !InDisk(y) {
		return math.NaN(), ErrOutsideDisk
	}
	a := 1 - x.NormSq()
	b := 1 - y.NormSq()
	t := 2 * x.DistSq(y) / (a * b)

	return math.Log1p(t + math.Sqrt(t*(t+2))), nil
}

// PoincareGrad returns d = d(x, y) together with ∂d/∂x and ∂d/∂y taken with
// respect to the ambient (Euclidean) coordinates.
//
// With a = 1 − ‖x‖², b = 1 − ‖y‖², s = ‖x − y‖², t = 2s/(ab):
//
//	∂t/∂x =  4(x − y)/(ab) + 4s·x/(a²b)
//	∂t/∂y = −4(x − y)/(ab) + 4s·y/(ab²)
//	∂d/∂t = 1 / √(t(t+2))
//
// Errors:
//   - ErrOutsideDisk when either point is not strictly inside the disk.
//   - ErrCoincidentPoints when x == y (∂d/∂t is singular).
func PoincareGrad(x, y Point) (d float64, gx, gy Point, err error) {
	if !InDisk(x) || !InDisk(y) {
		return math.NaN(), Point{}, Point{}, ErrOutsideDisk
	}
	diff := x.Sub(y)
	s := diff.NormSq()
	if s == 0 {
		return 0, Point{}, Point{}, ErrCoincidentPoints
	}
	a := 1 - x.NormSq()
	b := 1 - y.NormSq()
	ab := a * b
	t := 2 * s / ab
	q := math.Sqrt(t * (t + 2))
	d = math.Log1p(t + q)

	dtdx := diff.Scale(4 / ab).Add(x.Scale(4 * s / (a * ab)))
	dtdy := diff.Scale(-4 / ab).Add(y.Scale(4 * s / (ab * b)))

	return d, dtdx.Scale(1 / q), dtdy.Scale(1 / q), nil
}
