// Package experiment wires topology, energy and descent into the two
// reference tree-embedding runs and exposes them through one Config.
//
// Scenarios:
//
//	A (euclidean):  21 nodes, k=4, lr 1e-3, 100001 iterations, plain steps.
//	                Converges near E ≈ 183.0256.
//	B (hyperbolic): 21 nodes, k=4, lr 1e-4, 200001 iterations, clipped
//	                Riemannian steps in the Poincaré disk. Converges near
//	                E ≈ 173.55.
//
// Configuration keys (JSON):
//
//	{
//	  "geometry":      "euclidean" | "hyperbolic",
//	  "n_points":      21,
//	  "branching":     4,
//	  "iterations":    100001,
//	  "report_every":  10000,
//	  "learning_rate": 0.001,
//	  "seed":          0,
//	  "init_scale":    0.001,
//	  "clip_bound":    1
//	}
//
// Keys that are omitted keep the value of the preset selected by "geometry".
package experiment
