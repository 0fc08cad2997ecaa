// SPDX-License-Identifier: MIT
// Package: treeembed/topology
//
// tree.go — the Tree type, its constructor and read-only queries.
//
// Contract:
//   • n ≥ MinNodes (else ErrTooFewNodes).
//   • Node i owns children k·i+1 … k·i+k that are < n; emission order of
//     Edges() is parent-ascending, then child-ascending.
//   • A Tree is immutable after New; every query is safe for concurrent use.

package topology

// Edge is a directed parent → child link.
type Edge struct {
	Parent int
	Child  int
}

// Tree is an immutable rooted k-ary tree over indices 0..Len()-1.
type Tree struct {
	n         int
	branching int
	parent    []int   // parent[0] == noParent
	children  [][]int // children[i] ascending
	edges     []Edge  // stable order, see Edges
}

// New materializes a rooted k-ary tree of n nodes.
//
// Errors:
//   - ErrTooFewNodes if n < MinNodes.
//
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) (*Tree, error) {
	if n < MinNodes {
		return nil, topologyErrorf(methodNew, ErrTooFewNodes, "n=%d < min=%d", n, MinNodes)
	}
	cfg := newTreeConfig(opts...)

	t := &Tree{
		n:         n,
		branching: cfg.branching,
		parent:    make([]int, n),
		children:  make([][]int, n),
		edges:     make([]Edge, 0, n-1),
	}
	t.parent[0] = noParent

	var i, slot, child int
	for i = 0; i < n; i++ {
		for slot = 1; slot <= cfg.branching; slot++ {
			child = cfg.branching*i + slot
			if child >= n {
				// Out-of-range child slots silently produce no edge.
				break
			}
			t.parent[child] = i
			t.children[i] = append(t.children[i], child)
			t.edges = append(t.edges, Edge{Parent: i, Child: child})
		}
	}

	return t, nil
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return t.n }

// Branching returns the configured branching factor k.
func (t *Tree) Branching() int { return t.branching }

// EdgeCount returns the number of parent → child links (always Len()-1).
func (t *Tree) EdgeCount() int { return len(t.edges) }

// Contains reports whether i is a valid node index.
func (t *Tree) Contains(i int) bool { return i >= 0 && i < t.n }

// IsEdge reports whether j is a child of i. Out-of-range indices are never
// edges.
// Complexity: O(1).
func (t *Tree) IsEdge(i, j int) bool {
	if !t.Contains(i) || !t.Contains(j) {
		return false
	}

	return t.parent[j] == i && j != 0
}

// Adjacent reports whether i and j are linked in either direction.
func (t *Tree) Adjacent(i, j int) bool {
	return t.IsEdge(i, j) || t.IsEdge(j, i)
}

// Parent returns the parent of i. ok is false for the root and for
// out-of-range indices.
func (t *Tree) Parent(i int) (parent int, ok bool) {
	if !t.Contains(i) || i == 0 {
		return noParent, false
	}

	return t.parent[i], true
}

// Children returns a copy of i's children in ascending order, or nil for
// leaves and out-of-range indices.
// Complexity: O(k).
func (t *Tree) Children(i int) []int {
	if !t.Contains(i) || len(t.children[i]) == 0 {
		return nil
	}
	out := make([]int, len(t.children[i]))
	copy(out, t.children[i])

	return out
}

// IsLeaf reports whether i is a valid node without children.
func (t *Tree) IsLeaf(i int) bool {
	return t.Contains(i) && len(t.children[i]) == 0
}

// Leaves returns all leaf indices ascending.
func (t *Tree) Leaves() []int {
	var out []int
	for i := 0; i < t.n; i++ {
		if len(t.children[i]) == 0 {
			out = append(out, i)
		}
	}

	return out
}

// Internal returns all indices that own at least one child, ascending.
func (t *Tree) Internal() []int {
	var out []int
	for i := 0; i < t.n; i++ {
		if len(t.children[i]) > 0 {
			out = append(out, i)
		}
	}

	return out
}

// Edges returns a copy of all edges, ordered by parent then child.
// Complexity: O(n).
func (t *Tree) Edges() []Edge {
	out := make([]Edge, len(t.edges))
	copy(out, t.edges)

	return out
}

// Depth returns the number of edges between the root and i.
//
// Errors:
//   - ErrNodeOutOfRange if i is not a node.
//
// Complexity: O(depth).
func (t *Tree) Depth(i int) (int, error) {
	if !t.Contains(i) {
		return 0, topologyErrorf(methodDepth, ErrNodeOutOfRange, "i=%d, n=%d", i, t.n)
	}
	d := 0
	for i != 0 {
		i = t.parent[i]
		d++
	}

	return d, nil
}

// Height returns the depth of the deepest node (0 for a lone root).
// Node indices grow with depth, so the last node is always the deepest.
func (t *Tree) Height() int {
	h, _ := t.Depth(t.n - 1)

	return h
}
