// types.go declares Edge, Graph, the sentinel errors, and the NewGraph
// constructor. Mutators and queries live in methods*.go; derived graphs
// (Clone, InducedSubgraph, Cut) in methods_clone.go and cut.go.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loops not supported")

	// ErrDuplicateEdge indicates an attempt to add an already-present edge.
	ErrDuplicateEdge = errors.New("core: parallel edges not supported")
)

// Edge is an unordered pair of vertices. U holds the endpoint that was
// named first at insertion time; the pair {U,V} and {V,U} denote the same
// edge everywhere in this package.
type Edge[T comparable] struct {
	U, V T
}

// Touches reports whether v is one of the edge's endpoints.
func (e Edge[T]) Touches(v T) bool {
	return e.U == v || e.V == v
}

// Other returns the endpoint opposite to v, and false if v is not an
// endpoint of e.
func (e Edge[T]) Other(v T) (T, bool) {
	switch v {
	case e.U:
		return e.V, true
	case e.V:
		return e.U, true
	}
	var zero T
	return zero, false
}

// Graph is an undirected simple graph over vertices of type T.
//
// order and edges record insertion sequence for deterministic
// enumeration; index provides O(1) membership checks; adjacency mirrors
// index with insertion-ordered neighbor slices.
type Graph[T comparable] struct {
	order     []T                 // vertex insertion order
	index     map[T]map[T]struct{} // vertex -> neighbor set
	adjacency map[T][]T           // vertex -> neighbors in insertion order
	edges     []Edge[T]           // edge insertion order
}

// NewGraph creates an empty graph.
// Complexity: O(1).
func NewGraph[T comparable]() *Graph[T] {
	return &Graph[T]{
		index:     make(map[T]map[T]struct{}),
		adjacency: make(map[T][]T),
	}
}
