// methods_adjacent.go implements the neighborhood queries: Degree,
// AdjacentNodes and IsIsolated.

package core

import "fmt"

// Degree returns the number of edges incident to v.
// Returns ErrVertexNotFound for unknown vertices.
// Complexity: O(1).
func (g *Graph[T]) Degree(v T) (int, error) {
	nbrs, ok := g.index[v]
	if !ok {
		return 0, fmt.Errorf("Degree(%v): %w", v, ErrVertexNotFound)
	}
	return len(nbrs), nil
}

// AdjacentNodes returns the neighbors of v in insertion order. The slice
// is a copy and safe to retain.
// Returns ErrVertexNotFound for unknown vertices.
// Complexity: O(deg(v)).
func (g *Graph[T]) AdjacentNodes(v T) ([]T, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("AdjacentNodes(%v): %w", v, ErrVertexNotFound)
	}
	nbrs := g.adjacency[v]
	out := make([]T, len(nbrs))
	copy(out, nbrs)
	return out, nil
}

// IsIsolated reports whether v has no incident edges.
// Returns ErrVertexNotFound for unknown vertices.
// Complexity: O(1).
func (g *Graph[T]) IsIsolated(v T) (bool, error) {
	deg, err := g.Degree(v)
	if err != nil {
		return false, err
	}
	return deg == 0, nil
}
