// SPDX-License-Identifier: MIT
// Package: treeembed/experiment
//
// config.go — run configuration, presets, validation and JSON loading.
//
// Deterministic defaults come from the presets; a JSON document only
// overrides the keys it names.

package experiment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/treeembed/descent"
	"github.com/katalvlaran/treeembed/energy"
	"github.com/katalvlaran/treeembed/topology"
)

// Reference energies observed for the two presets.
const (
	EuclideanReference  = 183.0256
	HyperbolicReference = 173.55
)

// Config is the complete, serializable description of one run.
type Config struct {
	Geometry     string  `json:"geometry"`
	Points       int     `json:"n_points"`
	Branching    int     `json:"branching"`
	Iterations   int     `json:"iterations"`
	ReportEvery  int     `json:"report_every"`
	LearningRate float64 `json:"learning_rate"`
	Seed         int64   `json:"seed"`
	InitScale    float64 `json:"init_scale"`
	ClipBound    float64 `json:"clip_bound"`

	// Reference is the expected converged energy; 0 means unknown.
	Reference float64 `json:"reference,omitempty"`
}

// EuclideanPreset returns scenario A.
func EuclideanPreset() Config {
	return Config{
		Geometry:     energy.GeometryEuclidean.String(),
		Points:       21,
		Branching:    topology.DefaultBranching,
		Iterations:   descent.DefaultIterations,
		ReportEvery:  descent.DefaultReportEvery,
		LearningRate: descent.DefaultLearningRate,
		InitScale:    descent.DefaultInitScale,
		ClipBound:    descent.DefaultClip,
		Reference:    EuclideanReference,
	}
}

// HyperbolicPreset returns scenario B.
func HyperbolicPreset() Config {
	c := EuclideanPreset()
	c.Geometry = energy.GeometryHyperbolic.String()
	c.Iterations = 200001
	c.LearningRate = 1e-4
	c.Reference = HyperbolicReference

	return c
}

// DefaultConfig is EuclideanPreset.
func DefaultConfig() Config { return EuclideanPreset() }

// Preset returns the preset for a geometry name ("" selects the default).
func Preset(name string) (Config, error) {
	if name == "" {
		return DefaultConfig(), nil
	}
	g, err := energy.ParseGeometry(name)
	if err != nil {
		return Config{}, fmt.Errorf("Preset: %q: %w", name, ErrUnknownPreset)
	}
	if g == energy.GeometryHyperbolic {
		return HyperbolicPreset(), nil
	}

	return EuclideanPreset(), nil
}

// GeometryKind parses the Geometry field.
func (c Config) GeometryKind() (energy.Geometry, error) {
	return energy.ParseGeometry(c.Geometry)
}

// Validate checks every field and reports the first violation.
func (c Config) Validate() error {
	if _, err := c.GeometryKind(); err != nil {
		return fmt.Errorf("Validate: geometry %q: %w", c.Geometry, ErrInvalidConfig)
	}
	switch {
	case c.Points < topology.MinNodes:
		return fmt.Errorf("Validate: n_points=%d must be ≥ %d: %w", c.Points, topology.MinNodes, ErrInvalidConfig)
	case c.Branching < topology.MinBranching:
		return fmt.Errorf("Validate: branching=%d must be ≥ %d: %w", c.Branching, topology.MinBranching, ErrInvalidConfig)
	case c.Iterations < 1:
		return fmt.Errorf("Validate: iterations=%d must be ≥ 1: %w", c.Iterations, ErrInvalidConfig)
	case c.ReportEvery < 0:
		return fmt.Errorf("Validate: report_every=%d cannot be negative: %w", c.ReportEvery, ErrInvalidConfig)
	case !positiveFinite(c.LearningRate):
		return fmt.Errorf("Validate: learning_rate=%g must be positive: %w", c.LearningRate, ErrInvalidConfig)
	case !positiveFinite(c.InitScale):
		return fmt.Errorf("Validate: init_scale=%g must be positive: %w", c.InitScale, ErrInvalidConfig)
	case c.ClipBound < 0 || math.IsNaN(c.ClipBound) || math.IsInf(c.ClipBound, 0):
		return fmt.Errorf("Validate: clip_bound=%g must be finite and ≥ 0 (0 selects the default): %w", c.ClipBound, ErrInvalidConfig)
	case c.Reference < 0 || math.IsNaN(c.Reference):
		return fmt.Errorf("Validate: reference=%g: %w", c.Reference, ErrInvalidConfig)
	}

	return nil
}

// Decode reads a JSON document. The "geometry" key picks the base preset,
// the remaining keys override it; unknown keys are rejected. The result is
// validated.
func Decode(r io.Reader) (Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("Decode: %w", err)
	}

	var probe struct {
		Geometry string `json:"geometry"`
	}
	if err = json.Unmarshal(raw, &probe); err != nil {
		return Config{}, fmt.Errorf("Decode: %w", err)
	}
	cfg, err := Preset(probe.Geometry)
	if err != nil {
		return Config{}, fmt.Errorf("Decode: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("Decode: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("Decode: %w", err)
	}

	return cfg, nil
}

// Load decodes the JSON file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// MarshalIndent renders c as the JSON accepted by Decode.
func (c Config) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
