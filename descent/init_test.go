package descent_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treeembed/descent"
)

// TestInitialPoints_Validation rejects empty collections and bad scales.
func TestInitialPoints_Validation(t *testing.T) {
	_, err := descent.InitialPoints(0, 1, 1)
	assert.ErrorIs(t, err, descent.ErrTooFewPoints)

	for _, s := range []float64{0, -1e-3, math.NaN(), math.Inf(1)} {
		_, err = descent.InitialPoints(21, s, 1)
		assert.ErrorIs(t, err, descent.ErrBadScale, "scale=%g", s)
	}
}

// TestInitialPoints_Deterministic: same seed ⇒ same points; sub-streams make
// every prefix stable; another seed differs.
func TestInitialPoints_Deterministic(t *testing.T) {
	a, err := descent.InitialPoints(21, descent.DefaultInitScale, 42)
	require.NoError(t, err)
	b, err := descent.InitialPoints(21, descent.DefaultInitScale, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	prefix, err := descent.InitialPoints(5, descent.DefaultInitScale, 42)
	require.NoError(t, err)
	assert.Equal(t, a[:5], prefix)

	c, err := descent.InitialPoints(21, descent.DefaultInitScale, 43)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

// TestInitialPoints_Scale: coordinates are small, distinct and roughly
// zero-mean at the requested scale.
func TestInitialPoints_Scale(t *testing.T) {
	pts, err := descent.InitialPoints(400, 1e-3, 7)
	require.NoError(t, err)

	var sum, sumSq float64
	for i, p := range pts {
		assert.Less(t, math.Abs(p.X), 6e-3, "node %d", i)
		assert.Less(t, math.Abs(p.Y), 6e-3, "node %d", i)
		sum += p.X + p.Y
		sumSq += p.X*p.X + p.Y*p.Y
	}
	mean := sum / 800
	std := math.Sqrt(sumSq/800 - mean*mean)
	assert.InDelta(t, 0, mean, 2e-4)
	assert.InDelta(t, 1e-3, std, 2e-4)
	assert.NotEqual(t, pts[0], pts[1])
}
