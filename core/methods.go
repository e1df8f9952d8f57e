// methods.go implements vertex and edge mutators plus the enumeration
// queries. All enumerations honor the insertion-order contract stated in
// doc.go.

package core

import "fmt"

// AddVertex inserts v and reports whether it was newly added.
// Adding an existing vertex is a no-op returning false.
// Complexity: O(1).
func (g *Graph[T]) AddVertex(v T) bool {
	if _, ok := g.index[v]; ok {
		return false
	}
	g.index[v] = make(map[T]struct{})
	g.order = append(g.order, v)
	return true
}

// HasVertex reports whether v is present.
// Complexity: O(1).
func (g *Graph[T]) HasVertex(v T) bool {
	_, ok := g.index[v]
	return ok
}

// AddEdge inserts the undirected edge {u,v}, creating missing endpoints.
// Returns ErrSelfLoop if u == v and ErrDuplicateEdge if the edge already
// exists.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddEdge(u, v T) error {
	if u == v {
		return fmt.Errorf("AddEdge(%v,%v): %w", u, v, ErrSelfLoop)
	}
	g.AddVertex(u)
	g.AddVertex(v)
	if _, dup := g.index[u][v]; dup {
		return fmt.Errorf("AddEdge(%v,%v): %w", u, v, ErrDuplicateEdge)
	}
	g.index[u][v] = struct{}{}
	g.index[v][u] = struct{}{}
	g.adjacency[u] = append(g.adjacency[u], v)
	g.adjacency[v] = append(g.adjacency[v], u)
	g.edges = append(g.edges, Edge[T]{U: u, V: v})
	return nil
}

// HasEdge reports whether the undirected edge {u,v} is present.
// Complexity: O(1).
func (g *Graph[T]) HasEdge(u, v T) bool {
	_, ok := g.index[u][v]
	return ok
}

// RemoveEdge deletes the undirected edge {u,v}.
// Returns ErrEdgeNotFound if the edge is absent (including unknown
// endpoints). Endpoints themselves are kept, possibly as isolated
// vertices.
// Complexity: O(deg(u)+deg(v)+|E|) due to ordered-slice maintenance.
func (g *Graph[T]) RemoveEdge(u, v T) error {
	if !g.HasEdge(u, v) {
		return fmt.Errorf("RemoveEdge(%v,%v): %w", u, v, ErrEdgeNotFound)
	}
	delete(g.index[u], v)
	delete(g.index[v], u)
	g.adjacency[u] = dropFirst(g.adjacency[u], v)
	g.adjacency[v] = dropFirst(g.adjacency[v], u)
	for i, e := range g.edges {
		if (e.U == u && e.V == v) || (e.U == v && e.V == u) {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			break
		}
	}
	return nil
}

// dropFirst removes the first occurrence of v from s, preserving order.
func dropFirst[T comparable](s []T, v T) []T {
	for i, w := range s {
		if w == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// Vertices returns all vertices in insertion order. The slice is a copy
// and safe to retain.
// Complexity: O(V).
func (g *Graph[T]) Vertices() []T {
	out := make([]T, len(g.order))
	copy(out, g.order)
	return out
}

// Edges returns all edges in insertion order. The slice is a copy and
// safe to retain.
// Complexity: O(E).
func (g *Graph[T]) Edges() []Edge[T] {
	out := make([]Edge[T], len(g.edges))
	copy(out, g.edges)
	return out
}

// VertexCount returns |V|.
func (g *Graph[T]) VertexCount() int {
	return len(g.order)
}

// EdgeCount returns |E|.
func (g *Graph[T]) EdgeCount() int {
	return len(g.edges)
}
