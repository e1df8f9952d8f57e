// set.go declares VertexSet, the subset representation used as bag
// content by the decomposition and as the argument of InducedSubgraph
// and Cut.

package core

// VertexSet is a set of vertices. The decomposition code treats sets
// handed to it (and sets it returns inside bags) as immutable values:
// derive modified sets with Clone rather than mutating shared ones.
type VertexSet[T comparable] map[T]struct{}

// NewVertexSet returns a set containing the given vertices.
func NewVertexSet[T comparable](vs ...T) VertexSet[T] {
	s := make(VertexSet[T], len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v.
func (s VertexSet[T]) Add(v T) { s[v] = struct{}{} }

// Remove deletes v; absent vertices are a no-op.
func (s VertexSet[T]) Remove(v T) { delete(s, v) }

// Contains reports membership of v.
func (s VertexSet[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the cardinality of the set.
func (s VertexSet[T]) Len() int { return len(s) }

// Clone returns an independent copy of the set.
func (s VertexSet[T]) Clone() VertexSet[T] {
	c := make(VertexSet[T], len(s))
	for v := range s {
		c[v] = struct{}{}
	}
	return c
}
