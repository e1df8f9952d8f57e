package core_test

import (
	"fmt"

	"github.com/SoerenHenning/MIM-Width-Project/core"
)

// ExampleGraph_Cut derives the bipartite cut of a path against one of
// its sides: only edges crossing the boundary survive.
func ExampleGraph_Cut() {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "d")

	cut := g.Cut(core.NewVertexSet("a", "b"))
	for _, e := range cut.Edges() {
		fmt.Println(e.U, "-", e.V)
	}
	fmt.Println("vertices:", cut.VertexCount())
	// Output:
	// b - c
	// vertices: 4
}
