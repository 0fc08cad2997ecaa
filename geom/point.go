package geom

import (
	"fmt"
	"math"
)

// Point is a position in the plane (or in the Poincaré disk model of it).
type Point struct {
	X, Y float64
}

// Origin is the zero point.
var Origin = Point{}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p − q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns s·p.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the Euclidean inner product.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// NormSq returns ‖p‖².
func (p Point) NormSq() float64 { return p.X*p.X + p.Y*p.Y }

// Norm returns ‖p‖.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the Euclidean distance ‖p − q‖.
func (p Point) Dist(q Point) float64 { return p.Sub(q).Norm() }

// DistSq returns ‖p − q‖².
func (p Point) DistSq(q Point) float64 { return p.Sub(q).NormSq() }

// Rotate turns p by theta radians counter-clockwise about the origin.
func (p Point) Rotate(theta float64) Point {
	sin, cos := math.Sincos(theta)

	return Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

// Clip clamps each coordinate into [-bound, bound]. The direction of the
// vector is not preserved once a component saturates.
func (p Point) Clip(bound float64) Point {
	return Point{clamp(p.X, -bound, bound), clamp(p.Y, -bound, bound)}
}

// IsFinite reports whether both coordinates are neither NaN nor ±Inf.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// String renders the point as "(x, y)".
func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// EuclideanGrad returns r = ‖x − y‖ and ∂r/∂x = (x − y)/r; ∂r/∂y is the
// negation.
//
// Errors:
//   - ErrCoincidentPoints when x == y.
func EuclideanGrad(x, y Point) (r float64, gx Point, err error) {
	diff := x.Sub(y)
	r = diff.Norm()
	if r == 0 {
		return 0, Point{}, ErrCoincidentPoints
	}

	return r, diff.Scale(1 / r), nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
