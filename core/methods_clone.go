// methods_clone.go implements deep copying. The matching estimator runs
// each greedy trial on a Clone so the shared input graph is never
// mutated.

package core

// Clone returns a deep copy of g. The copy shares no state with the
// receiver and preserves vertex, edge and neighbor insertion order, so a
// clone enumerates identically to its source.
// Complexity: O(V+E).
func (g *Graph[T]) Clone() *Graph[T] {
	c := NewGraph[T]()
	c.order = make([]T, len(g.order))
	copy(c.order, g.order)
	for v, nbrs := range g.index {
		set := make(map[T]struct{}, len(nbrs))
		for w := range nbrs {
			set[w] = struct{}{}
		}
		c.index[v] = set
	}
	for v, nbrs := range g.adjacency {
		ordered := make([]T, len(nbrs))
		copy(ordered, nbrs)
		c.adjacency[v] = ordered
	}
	c.edges = make([]Edge[T], len(g.edges))
	copy(c.edges, g.edges)
	return c
}
