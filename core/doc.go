// Package core defines the undirected simple-graph type consumed by the
// width-heuristic packages (matching, mimwidth) and the fixture builder.
//
// The graph is generic over its vertex type T, which only needs to be
// comparable (vertices are used as map keys). Self-loops and parallel
// edges are rejected at insertion time; edges are unordered pairs.
//
// # Determinism
//
// Vertices(), Edges() and AdjacentNodes() enumerate in insertion order.
// This is a contract, not an accident: the decomposition heuristic breaks
// residual ties by candidate iteration order, and the matching estimator
// must consume its random source in a reproducible sequence. Callers that
// build the same graph in the same order always observe the same
// enumeration.
//
// # Concurrency
//
// Unlike a general-purpose graph store, this type carries no locks. Every
// consumer in this module is a synchronous, single-goroutine computation
// that either reads a shared graph or mutates a private Clone. Do not
// mutate a Graph from multiple goroutines.
//
// # Derived graphs
//
// Clone, InducedSubgraph and Cut return fresh graphs that share no state
// with the receiver. Cut builds the bipartite graph of crossing edges
// between a vertex subset and its complement, which is the structure the
// mim-width heuristic scores.
package core
