// cut.go implements the derived graphs the decomposition heuristic
// scores: induced subgraphs and bipartite cut graphs.

package core

// InducedSubgraph returns the subgraph of g induced by sub: the vertices
// of g that are members of sub, and every edge of g with both endpoints
// in sub. Vertices of sub absent from g are ignored. The result shares
// no state with g and preserves g's insertion order.
// Complexity: O(V+E).
func (g *Graph[T]) InducedSubgraph(sub VertexSet[T]) *Graph[T] {
	out := NewGraph[T]()
	for _, v := range g.order {
		if sub.Contains(v) {
			out.AddVertex(v)
		}
	}
	for _, e := range g.edges {
		if sub.Contains(e.U) && sub.Contains(e.V) {
			_ = out.AddEdge(e.U, e.V) // g is simple, so no dup/loop possible
		}
	}
	return out
}

// Cut returns the bipartite graph of edges crossing between sub and its
// complement in g: all vertices of g are kept, but only edges with
// exactly one endpoint in sub survive. This is the graph whose maximum
// induced matching defines the mim value of the cut.
// The result shares no state with g and preserves g's insertion order.
// Complexity: O(V+E).
func (g *Graph[T]) Cut(sub VertexSet[T]) *Graph[T] {
	out := NewGraph[T]()
	for _, v := range g.order {
		out.AddVertex(v)
	}
	for _, e := range g.edges {
		if sub.Contains(e.U) != sub.Contains(e.V) {
			_ = out.AddEdge(e.U, e.V)
		}
	}
	return out
}
