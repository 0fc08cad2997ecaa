// Package energy defines the scalar objectives minimized by the embedding
// driver and their exact gradients.
//
// What is the energy?
//
//	For points P[0..n-1] placed on the nodes of a rooted tree:
//
//	  E(P) = Σ_{i≠j} wr / d(P[i], P[j])          (repulsion, ordered pairs)
//	       + Σ_{(p→c) ∈ edges} wa · d(P[p], P[c])² (spring attraction)
//
//	The repulsion runs over ORDERED pairs, so every unordered pair is
//	counted twice while each tree edge is counted once. This balance is
//	kept as is; wr and wa (both 1 by default) make it explicit.
//
// Two metrics are provided:
//
//   - Euclidean:  d = ‖x − y‖.
//   - Hyperbolic: d = Poincaré-disk distance (see package geom); every point
//     must stay strictly inside the unit disk.
//
// Gradients are hand-derived closed forms with respect to the ambient
// coordinates. CheckGradient compares them against central differences.
//
// Failure policy:
//
//	Numeric trouble is never masked. Coincident points return +Inf together
//	with an error wrapping geom.ErrCoincidentPoints; points outside the disk
//	return NaN with geom.ErrOutsideDisk; non-finite input returns NaN with
//	ErrNonFinite.
//
// Complexity: O(n²) time per Energy/Gradient/Evaluate call, O(1) extra memory.
package energy
