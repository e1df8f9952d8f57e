// Package builder provides deterministic constructors for common graph
// topologies: cycles, paths, stars, complete and complete bipartite
// graphs, grids and Erdős–Rényi random graphs.
//
// All constructors produce vertices through a configurable ID scheme
// (index to string, decimal by default) and emit vertices and edges in
// a stable documented order, so two builds with identical parameters
// and seed yield identical graphs. Stochastic constructors require an
// explicit random source via WithSeed or WithRand; there is no hidden
// global randomness.
//
// Usage:
//
//	g, err := builder.BuildGraph(nil, builder.Cycle(6))
//
// or compose several constructors over one graph:
//
//	g, err := builder.BuildGraph(
//	    []builder.Option{builder.WithSeed(42)},
//	    builder.Path(4),
//	    builder.RandomSparse(8, 0.25),
//	)
//
// Constructors validate their parameters and return sentinel errors
// (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource); they
// never panic at runtime. Option constructors panic on meaningless
// input such as WithIDScheme(nil).
package builder
