package experiment_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treeembed/experiment"
)

// TestPresets pins both reference scenarios.
func TestPresets(t *testing.T) {
	a := experiment.EuclideanPreset()
	assert.Equal(t, "euclidean", a.Geometry)
	assert.Equal(t, 21, a.Points)
	assert.Equal(t, 4, a.Branching)
	assert.Equal(t, 100001, a.Iterations)
	assert.Equal(t, 1e-3, a.LearningRate)
	assert.Equal(t, 1e-3, a.InitScale)
	assert.Equal(t, experiment.EuclideanReference, a.Reference)
	require.NoError(t, a.Validate())

	b := experiment.HyperbolicPreset()
	assert.Equal(t, "hyperbolic", b.Geometry)
	assert.Equal(t, 200001, b.Iterations)
	assert.Equal(t, 1e-4, b.LearningRate)
	assert.Equal(t, 1.0, b.ClipBound)
	assert.Equal(t, experiment.HyperbolicReference, b.Reference)
	require.NoError(t, b.Validate())

	p, err := experiment.Preset("poincare")
	require.NoError(t, err)
	assert.Equal(t, b, p)
	_, err = experiment.Preset("spherical")
	assert.ErrorIs(t, err, experiment.ErrUnknownPreset)
}

// TestValidate rejects each out-of-range field.
func TestValidate(t *testing.T) {
	cases := map[string]func(*experiment.Config){
		"geometry":       func(c *experiment.Config) { c.Geometry = "flatland" },
		"zero points":    func(c *experiment.Config) { c.Points = 0 },
		"zero branching": func(c *experiment.Config) { c.Branching = 0 },
		"zero iters":     func(c *experiment.Config) { c.Iterations = 0 },
		"neg report":     func(c *experiment.Config) { c.ReportEvery = -1 },
		"zero lr":        func(c *experiment.Config) { c.LearningRate = 0 },
		"inf lr":         func(c *experiment.Config) { c.LearningRate = math.Inf(1) },
		"neg scale":      func(c *experiment.Config) { c.InitScale = -1 },
		"nan clip":       func(c *experiment.Config) { c.ClipBound = math.NaN() },
		"neg clip":       func(c *experiment.Config) { c.ClipBound = -1 },
		"inf clip":       func(c *experiment.Config) { c.ClipBound = math.Inf(1) },
		"neg reference":  func(c *experiment.Config) { c.Reference = -3 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := experiment.DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), experiment.ErrInvalidConfig)
		})
	}
}

// TestDecode_OverridesPreset: the geometry key selects the base, other keys
// override it, missing keys keep preset values.
func TestDecode_OverridesPreset(t *testing.T) {
	cfg, err := experiment.Decode(strings.NewReader(`{
		"geometry": "hyperbolic",
		"n_points": 13,
		"report_every": 500,
		"seed": 7
	}`))
	require.NoError(t, err)

	want := experiment.HyperbolicPreset()
	want.Points = 13
	want.ReportEvery = 500
	want.Seed = 7
	assert.Equal(t, want, cfg)

	cfg, err = experiment.Decode(strings.NewReader(`{"learning_rate": 0.01}`))
	require.NoError(t, err)
	assert.Equal(t, "euclidean", cfg.Geometry)
	assert.Equal(t, 0.01, cfg.LearningRate)
}

// TestDecode_Rejects unknown keys, bad JSON, bad presets and invalid values.
func TestDecode_Rejects(t *testing.T) {
	_, err := experiment.Decode(strings.NewReader(`{"n_pointz": 3}`))
	assert.Error(t, err)

	_, err = experiment.Decode(strings.NewReader(`{`))
	assert.Error(t, err)

	_, err = experiment.Decode(strings.NewReader(`{"geometry": "spherical"}`))
	assert.ErrorIs(t, err, experiment.ErrUnknownPreset)

	_, err = experiment.Decode(strings.NewReader(`{"iterations": -5}`))
	assert.ErrorIs(t, err, experiment.ErrInvalidConfig)
}

// TestLoad reads a file written by MarshalIndent.
func TestLoad(t *testing.T) {
	cfg := experiment.HyperbolicPreset()
	cfg.Seed = 99
	raw, err := cfg.MarshalIndent()
	require.NoError(t, err)
	assert.True(t, bytes.Contains(raw, []byte(`"learning_rate"`)))

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	got, err := experiment.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	_, err = experiment.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
