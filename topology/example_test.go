package topology_test

import (
	"fmt"

	"github.com/katalvlaran/treeembed/topology"
)

// ExampleNew builds the 21-node quaternary tree used by the embedding
// experiments and lists the children of the root and of node 4.
func ExampleNew() {
	tr, err := topology.New(21, topology.WithBranching(4))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("edges:", tr.EdgeCount())
	fmt.Println("root:", tr.Children(0))
	fmt.Println("node 4:", tr.Children(4))
	fmt.Println("leaf 20:", tr.IsLeaf(20))
	// Output:
	// edges: 20
	// root: [1 2 3 4]
	// node 4: [17 18 19 20]
	// leaf 20: true
}
