// Package topology builds the fixed rooted trees that the embedding energies
// are defined over.
//
// What is a Tree here?
//
//	A rooted k-ary tree over node indices 0..n-1 laid out in breadth-first
//	order: node i owns the children k·i+1 … k·i+k that fall below n.
//	Indices past n produce no edge, so the last internal node may own fewer
//	than k children.
//
//	      0
//	   / | | \
//	  1  2  3  4        (n = 21, k = 4)
//	 ||||
//	 5..8  9..12  ...  17..20
//
// The adjacency is materialized once by New and never changes afterwards,
// so energies ask IsEdge instead of redoing index arithmetic in their loops.
//
// Usage:
//
//	tr, err := topology.New(21, topology.WithBranching(4))
//	if err != nil {
//		// errors.Is(err, topology.ErrTooFewNodes)
//	}
//	for _, e := range tr.Edges() {
//		fmt.Println(e.Parent, "→", e.Child)
//	}
//
// Complexity:
//
//   - New:      O(n) time, O(n) memory.
//   - IsEdge:   O(1).
//   - Children: O(k) (defensive copy).
package topology
