package energy_test

import (
	"testing"

	"github.com/katalvlaran/treeembed/energy"
	"github.com/katalvlaran/treeembed/geom"
	"github.com/katalvlaran/treeembed/topology"
)

// benchmarkEvaluate measures one fused energy+gradient pass over n nodes.
func benchmarkEvaluate(b *testing.B, g energy.Geometry, n int) {
	tr, err := topology.New(n)
	if err != nil {
		b.Fatalf("topology.New: %v", err)
	}
	fn, err := energy.New(g, tr)
	if err != nil {
		b.Fatalf("energy.New: %v", err)
	}
	pts := diskPoints(1, n, 0.9)
	grad := make([]geom.Point, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fn.Evaluate(pts, grad); err != nil {
			b.Fatalf("Evaluate: %v", err)
		}
	}
}

func BenchmarkEvaluate_Euclidean21(b *testing.B)  { benchmarkEvaluate(b, energy.GeometryEuclidean, 21) }
func BenchmarkEvaluate_Hyperbolic21(b *testing.B) { benchmarkEvaluate(b, energy.GeometryHyperbolic, 21) }
func BenchmarkEvaluate_Hyperbolic341(b *testing.B) {
	benchmarkEvaluate(b, energy.GeometryHyperbolic, 341)
}
