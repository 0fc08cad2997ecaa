// SPDX-License-Identifier: MIT
// Package: treeembed/energy
//
// energy.go — the Function contract and the pairwise tree energy.
//
// Contract:
//   • len(pts) MUST equal tree.Len() (else ErrSizeMismatch).
//   • Energy is pure: identical input ⇒ identical output, no hidden state.
//   • Gradient writes into a caller-owned slice; it never allocates.
//   • Errors carry the offending node or pair; callers branch with errors.Is.

package energy

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/treeembed/geom"
	"github.com/katalvlaran/treeembed/topology"
)

// Function is a differentiable scalar objective over a fixed-size point
// collection.
type Function interface {
	// Len is the number of points the function expects.
	Len() int
	// Energy returns E(pts).
	Energy(pts []geom.Point) (float64, error)
	// Gradient stores ∇E(pts) into grad (len(grad) == Len()).
	Gradient(pts, grad []geom.Point) error
	// Evaluate returns E(pts) and stores ∇E(pts) into grad in one pass.
	Evaluate(pts, grad []geom.Point) (float64, error)
}

// Geometry selects the metric the energy is measured in.
type Geometry int

const (
	// GeometryEuclidean measures plain distances in the plane.
	GeometryEuclidean Geometry = iota
	// GeometryHyperbolic measures Poincaré-disk distances.
	GeometryHyperbolic
)

// ErrUnknownGeometry indicates an unrecognized geometry name or value.
var ErrUnknownGeometry = errors.New("energy: unknown geometry")

// String returns the canonical lowercase name.
func (g Geometry) String() string {
	switch g {
	case GeometryEuclidean:
		return "euclidean"
	case GeometryHyperbolic:
		return "hyperbolic"
	default:
		return fmt.Sprintf("Geometry(%d)", int(g))
	}
}

// ParseGeometry maps "euclidean"/"hyperbolic" (also "poincare") to a Geometry.
func ParseGeometry(s string) (Geometry, error) {
	switch s {
	case "euclidean", "euclid", "flat":
		return GeometryEuclidean, nil
	case "hyperbolic", "poincare":
		return GeometryHyperbolic, nil
	default:
		return 0, fmt.Errorf("ParseGeometry: %q: %w", s, ErrUnknownGeometry)
	}
}

// kernel returns d(x, y) with its partial derivatives in x and y.
type kernel func(x, y geom.Point) (d float64, gx, gy geom.Point, err error)

func euclideanKernel(x, y geom.Point) (float64, geom.Point, geom.Point, error) {
	r, g, err := geom.EuclideanGrad(x, y)

	return r, g, g.Scale(-1), err
}

// Pairwise is the tree energy of the package doc measured in one geometry.
// A Pairwise is immutable and safe for concurrent use.
type Pairwise struct {
	tree     *topology.Tree
	geometry Geometry
	cfg      config
	kernel   kernel
}

var _ Function = (*Pairwise)(nil)

// New builds the energy for the given geometry over tree.
//
// Errors:
//   - ErrNilTree if tree is nil.
//   - ErrUnknownGeometry for unsupported geometries.
func New(g Geometry, tree *topology.Tree, opts ...Option) (*Pairwise, error) {
	if tree == nil {
		return nil, fmt.Errorf("New: %w", ErrNilTree)
	}
	p := &Pairwise{tree: tree, geometry: g, cfg: newConfig(opts...)}
	switch g {
	case GeometryEuclidean:
		p.kernel = euclideanKernel
	case GeometryHyperbolic:
		p.kernel = geom.PoincareGrad
	default:
		return nil, fmt.Errorf("New: %v: %w", g, ErrUnknownGeometry)
	}

	return p, nil
}

// NewEuclidean is New(GeometryEuclidean, tree, opts...).
func NewEuclidean(tree *topology.Tree, opts ...Option) (*Pairwise, error) {
	return New(GeometryEuclidean, tree, opts...)
}

// NewHyperbolic is New(GeometryHyperbolic, tree, opts...).
func NewHyperbolic(tree *topology.Tree, opts ...Option) (*Pairwise, error) {
	return New(GeometryHyperbolic, tree, opts...)
}

// Len returns the tree's node count.
func (p *Pairwise) Len() int { return p.tree.Len() }

// Tree returns the topology the energy is defined over.
func (p *Pairwise) Tree() *topology.Tree { return p.tree }

// Geometry returns the metric in use.
func (p *Pairwise) Geometry() Geometry { return p.geometry }

// Weights returns (wr, wa).
func (p *Pairwise) Weights() (repulsion, attraction float64) {
	return p.cfg.repulsion, p.cfg.attraction
}

// Energy returns E(pts).
func (p *Pairwise) Energy(pts []geom.Point) (float64, error) {
	rep, att, err := p.run(methodEnergy, pts, nil)

	return rep + att, err
}

// Gradient stores ∇E(pts) into grad.
func (p *Pairwise) Gradient(pts, grad []geom.Point) error {
	if grad == nil {
		return fmt.Errorf("%s: nil gradient buffer: %w", methodGradient, ErrSizeMismatch)
	}
	_, _, err := p.run(methodGradient, pts, grad)

	return err
}

// Evaluate returns E(pts) and stores ∇E(pts) into grad.
func (p *Pairwise) Evaluate(pts, grad []geom.Point) (float64, error) {
	if grad == nil {
		return math.NaN(), fmt.Errorf("%s: nil gradient buffer: %w", methodEvaluate, ErrSizeMismatch)
	}
	rep, att, err := p.run(methodEvaluate, pts, grad)

	return rep + att, err
}

// Breakdown returns the repulsion and attraction parts of E(pts) separately.
func (p *Pairwise) Breakdown(pts []geom.Point) (repulsion, attraction float64, err error) {
	return p.run(methodEnergy, pts, nil)
}

// run is the single O(n²) pass behind every public method. grad may be nil.
//
// Each unordered pair {i, j} is visited once: the ordered-pair repulsion
// contributes 2·wr/d, and a tree edge in either direction contributes
// wa·d². With ∂d/∂x, ∂d/∂y from the kernel:
//
//	∂(2wr/d) = −2wr/d² · ∂d
//	∂(wa·d²) =  2wa·d  · ∂d
func (p *Pairwise) run(method string, pts, grad []geom.Point) (rep, att float64, err error) {
	if err = p.validate(method, pts); err != nil {
		return math.NaN(), math.NaN(), err
	}
	if grad != nil {
		if len(grad) != len(pts) {
			return math.NaN(), math.NaN(), fmt.Errorf("%s: len(grad)=%d, want %d: %w",
				method, len(grad), len(pts), ErrSizeMismatch)
		}
		for i := range grad {
			grad[i] = geom.Point{}
		}
	}

	wr, wa := p.cfg.repulsion, p.cfg.attraction
	n := len(pts)

	var (
		i, j   int
		d, c   float64
		gx, gy geom.Point
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d, gx, gy, err = p.kernel(pts[i], pts[j])
			if err != nil {
				if errors.Is(err, geom.ErrCoincidentPoints) {
					return math.Inf(1), 0, pairErrorf(method, i, j, err)
				}

				return math.NaN(), math.NaN(), pairErrorf(method, i, j, err)
			}

			rep += 2 * wr / d
			if grad != nil {
				c = -2 * wr / (d * d)
				grad[i] = grad[i].Add(gx.Scale(c))
				grad[j] = grad[j].Add(gy.Scale(c))
			}

			if !p.tree.Adjacent(i, j) {
				continue
			}
			att += wa * d * d
			if grad != nil {
				c = 2 * wa * d
				grad[i] = grad[i].Add(gx.Scale(c))
				grad[j] = grad[j].Add(gy.Scale(c))
			}
		}
	}

	return rep, att, nil
}

// validate enforces the size contract and the geometry's domain.
func (p *Pairwise) validate(method string, pts []geom.Point) error {
	if len(pts) != p.tree.Len() {
		return fmt.Errorf("%s: len(pts)=%d, want %d: %w", method, len(pts), p.tree.Len(), ErrSizeMismatch)
	}
	for i, pt := range pts {
		if !pt.IsFinite() {
			return nodeErrorf(method, i, pt, ErrNonFinite)
		}
		if p.geometry == GeometryHyperbolic && !geom.InDisk(pt) {
			return nodeErrorf(method, i, pt, geom.ErrOutsideDisk)
		}
	}

	return nil
}
