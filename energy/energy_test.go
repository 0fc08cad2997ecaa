package energy_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treeembed/energy"
	"github.com/katalvlaran/treeembed/geom"
	"github.com/katalvlaran/treeembed/topology"
)

// planePoints draws n points with N(0, scale²) coordinates.
func planePoints(seed int64, n int, scale float64) []geom.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: rng.NormFloat64() * scale, Y: rng.NormFloat64() * scale}
	}

	return pts
}

// diskPoints draws n points uniformly from the disk of radius rmax.
func diskPoints(seed int64, n int, rmax float64) []geom.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]geom.Point, n)
	for i := range pts {
		r := rmax * math.Sqrt(rng.Float64())
		pts[i] = geom.Point{X: r}.Rotate(2 * math.Pi * rng.Float64())
	}

	return pts
}

func tree21(t *testing.T) *topology.Tree {
	t.Helper()
	tr, err := topology.New(21)
	require.NoError(t, err)

	return tr
}

func transform(pts []geom.Point, f func(geom.Point) geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = f(p)
	}

	return out
}

// TestNew_Validation covers constructor errors and option panics.
func TestNew_Validation(t *testing.T) {
	_, err := energy.NewEuclidean(nil)
	assert.ErrorIs(t, err, energy.ErrNilTree)

	_, err = energy.New(energy.Geometry(9), tree21(t))
	assert.ErrorIs(t, err, energy.ErrUnknownGeometry)

	assert.Panics(t, func() { energy.WithRepulsion(-1) })
	assert.Panics(t, func() { energy.WithAttraction(math.NaN()) })
	assert.Panics(t, func() { energy.WithAttraction(math.Inf(1)) })
}

// TestParseGeometry maps names and rejects unknown ones.
func TestParseGeometry(t *testing.T) {
	g, err := energy.ParseGeometry("hyperbolic")
	require.NoError(t, err)
	assert.Equal(t, energy.GeometryHyperbolic, g)
	assert.Equal(t, "hyperbolic", g.String())

	g, err = energy.ParseGeometry("euclidean")
	require.NoError(t, err)
	assert.Equal(t, energy.GeometryEuclidean, g)

	_, err = energy.ParseGeometry("spherical")
	assert.ErrorIs(t, err, energy.ErrUnknownGeometry)
}

// TestEuclidean_TwoNodeEquilibrium: E(d) = 2/d + d² has its minimum 3 at d = 1
// where the gradient vanishes.
func TestEuclidean_TwoNodeEquilibrium(t *testing.T) {
	tr, err := topology.New(2)
	require.NoError(t, err)
	fn, err := energy.NewEuclidean(tr)
	require.NoError(t, err)

	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	grad := make([]geom.Point, 2)
	e, err := fn.Evaluate(pts, grad)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, e, 1e-15)
	assert.InDelta(t, 0.0, grad[0].Norm(), 1e-15)
	assert.InDelta(t, 0.0, grad[1].Norm(), 1e-15)

	// At d = 2 the spring dominates: E = 1 + 4, gradient pulls nodes together.
	pts[1] = geom.Point{X: 2}
	e, err = fn.Evaluate(pts, grad)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, e, 1e-15)
	assert.InDelta(t, -3.5, grad[0].X, 1e-15)
	assert.InDelta(t, 3.5, grad[1].X, 1e-15)
}

// TestEuclidean_DoubleCountedRepulsion verifies that repulsion runs over
// ordered pairs while springs are counted once per edge.
func TestEuclidean_DoubleCountedRepulsion(t *testing.T) {
	tr, err := topology.New(3, topology.WithBranching(1)) // path 0→1→2
	require.NoError(t, err)
	fn, err := energy.NewEuclidean(tr)
	require.NoError(t, err)

	pts := []geom.Point{{X: 0}, {X: 1}, {X: 3}}
	rep, att, err := fn.Breakdown(pts)
	require.NoError(t, err)
	assert.InDelta(t, 2*(1.0/1+1.0/3+1.0/2), rep, 1e-15)
	assert.InDelta(t, 1.0+4.0, att, 1e-15)

	weighted, err := energy.NewEuclidean(tr, energy.WithRepulsion(0.5), energy.WithAttraction(2))
	require.NoError(t, err)
	e, err := weighted.Energy(pts)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*rep+2*att, e, 1e-12)
	wr, wa := weighted.Weights()
	assert.Equal(t, 0.5, wr)
	assert.Equal(t, 2.0, wa)
}

// TestEuclidean_RigidInvariance: rotation and translation leave the
// Euclidean energy unchanged.
func TestEuclidean_RigidInvariance(t *testing.T) {
	fn, err := energy.NewEuclidean(tree21(t))
	require.NoError(t, err)
	pts := planePoints(11, 21, 1)

	base, err := fn.Energy(pts)
	require.NoError(t, err)

	rot, err := fn.Energy(transform(pts, func(p geom.Point) geom.Point { return p.Rotate(0.9) }))
	require.NoError(t, err)
	assert.InDelta(t, base, rot, 1e-9*base)

	shift := geom.Point{X: 3.5, Y: -1.25}
	tr, err := fn.Energy(transform(pts, func(p geom.Point) geom.Point { return p.Add(shift) }))
	require.NoError(t, err)
	assert.InDelta(t, base, tr, 1e-9*base)
}

// TestHyperbolic_RotationOnlyInvariance: rotation about the origin is a
// disk isometry, a Euclidean shift is not.
func TestHyperbolic_RotationOnlyInvariance(t *testing.T) {
	fn, err := energy.NewHyperbolic(tree21(t))
	require.NoError(t, err)
	pts := diskPoints(5, 21, 0.5)

	base, err := fn.Energy(pts)
	require.NoError(t, err)

	rot, err := fn.Energy(transform(pts, func(p geom.Point) geom.Point { return p.Rotate(-2.3) }))
	require.NoError(t, err)
	assert.InDelta(t, base, rot, 1e-9*base)

	shift := geom.Point{X: 0.2, Y: 0.1}
	moved, err := fn.Energy(transform(pts, func(p geom.Point) geom.Point { return p.Add(shift) }))
	require.NoError(t, err)
	assert.Greater(t, math.Abs(moved-base), 1e-6*base, "translation must change the hyperbolic energy")
}

// TestGradient_MatchesFiniteDifferences is the gradient check for both
// geometries on several random configurations.
func TestGradient_MatchesFiniteDifferences(t *testing.T) {
	tr := tree21(t)
	euc, err := energy.NewEuclidean(tr)
	require.NoError(t, err)
	hyp, err := energy.NewHyperbolic(tr)
	require.NoError(t, err)

	for seed := int64(1); seed <= 4; seed++ {
		rel, err := energy.CheckGradient(euc, planePoints(seed, 21, 1), 1e-6)
		require.NoError(t, err)
		assert.Less(t, rel, 1e-3, "euclidean seed=%d", seed)

		rel, err = energy.CheckGradient(hyp, diskPoints(seed, 21, 0.8), 1e-7)
		require.NoError(t, err)
		assert.Less(t, rel, 1e-3, "hyperbolic seed=%d", seed)
	}
}

// TestEnergy_Pure: repeated evaluation returns bit-identical values and does
// not touch the input.
func TestEnergy_Pure(t *testing.T) {
	fn, err := energy.NewHyperbolic(tree21(t))
	require.NoError(t, err)
	pts := diskPoints(3, 21, 0.7)
	snapshot := append([]geom.Point(nil), pts...)

	e1, err := fn.Energy(pts)
	require.NoError(t, err)
	grad := make([]geom.Point, 21)
	e2, err := fn.Evaluate(pts, grad)
	require.NoError(t, err)
	e3, err := fn.Energy(pts)
	require.NoError(t, err)

	assert.Equal(t, e1, e2)
	assert.Equal(t, e1, e3)
	assert.Equal(t, snapshot, pts)
}

// TestEnergy_SiblingSwapChangesEdges swaps the coordinates of two leaves
// hanging off different parents; the spring terms follow the indices.
func TestEnergy_SiblingSwapChangesEdges(t *testing.T) {
	fn, err := energy.NewEuclidean(tree21(t))
	require.NoError(t, err)
	pts := planePoints(21, 21, 1)

	base, err := fn.Energy(pts)
	require.NoError(t, err)
	pts[5], pts[9] = pts[9], pts[5] // children of 1 and 2 respectively
	swapped, err := fn.Energy(pts)
	require.NoError(t, err)
	assert.NotEqual(t, base, swapped)

	// Swapping two children of the same parent keeps the multiset of terms.
	pts[5], pts[9] = pts[9], pts[5]
	pts[5], pts[6] = pts[6], pts[5]
	same, err := fn.Energy(pts)
	require.NoError(t, err)
	assert.InDelta(t, base, same, 1e-9*base)
}

// TestEnergy_NumericFailures covers every surfaced failure class.
func TestEnergy_NumericFailures(t *testing.T) {
	tr := tree21(t)
	euc, err := energy.NewEuclidean(tr)
	require.NoError(t, err)
	hyp, err := energy.NewHyperbolic(tr)
	require.NoError(t, err)

	// Coincident points: +Inf plus a wrapped sentinel.
	pts := planePoints(1, 21, 0.1)
	pts[7] = pts[3]
	e, err := euc.Energy(pts)
	assert.ErrorIs(t, err, geom.ErrCoincidentPoints)
	assert.True(t, math.IsInf(e, 1))
	e, err = hyp.Energy(pts)
	assert.ErrorIs(t, err, geom.ErrCoincidentPoints)
	assert.True(t, math.IsInf(e, 1))

	// Outside the disk: NaN for hyperbolic, fine for Euclidean.
	pts = diskPoints(2, 21, 0.5)
	pts[4] = geom.Point{X: 0.8, Y: 0.7}
	e, err = hyp.Energy(pts)
	assert.ErrorIs(t, err, geom.ErrOutsideDisk)
	assert.True(t, math.IsNaN(e))
	_, err = euc.Energy(pts)
	assert.NoError(t, err)

	// Non-finite coordinates.
	pts[4] = geom.Point{X: math.NaN()}
	_, err = euc.Energy(pts)
	assert.ErrorIs(t, err, energy.ErrNonFinite)

	// Size contract.
	_, err = euc.Energy(pts[:20])
	assert.ErrorIs(t, err, energy.ErrSizeMismatch)
	err = euc.Gradient(planePoints(1, 21, 1), make([]geom.Point, 3))
	assert.ErrorIs(t, err, energy.ErrSizeMismatch)
	_, err = euc.Evaluate(planePoints(1, 21, 1), nil)
	assert.ErrorIs(t, err, energy.ErrSizeMismatch)
}
