// Package geom provides the two-dimensional point algebra the embedding
// energies are written in: Euclidean helpers, the Poincaré-disk distance and
// its closed-form partial derivatives.
//
// Poincaré disk:
//
//	The open unit disk D = {x : ‖x‖ < 1} with metric λ(x)²·(Euclidean),
//	λ(x) = 2 / (1 − ‖x‖²). Geodesic distance:
//
//	  d(x, y) = arcosh(1 + 2‖x − y‖² / ((1 − ‖x‖²)(1 − ‖y‖²)))
//
//	evaluated here as log1p(t + √(t(t+2))) with t = u − 1 so that
//	near-coincident points keep full precision.
//
// Every function is pure and allocation-free.
package geom
