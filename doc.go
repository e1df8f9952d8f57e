// Package mimwidthproject computes heuristic tree decompositions of
// undirected graphs optimized for mim-width, the maximum induced
// matching size over the cuts of the decomposition.
//
// The module is organized as small per-concern packages:
//
//	core/      — generic undirected Graph with deterministic enumeration,
//	             vertex sets, induced subgraphs and cuts
//	matching/  — randomized greedy maximum-induced-matching estimator
//	mimwidth/  — the decomposition heuristic: greedy vertex peeling with
//	             pluggable tie-breaking policies
//	builder/   — deterministic topology constructors (cycles, paths,
//	             stars, grids, random graphs) for fixtures and benchmarks
//	graphexpr/ — textual graph input: edge-run expressions and the PACE
//	             .gr format
//	render/    — Graphviz DOT output plus SVG/PNG rasterization
//	cmd/       — the mimwidth command-line tool
//
// Start with mimwidth.Decompose; everything else supports it.
package mimwidthproject
