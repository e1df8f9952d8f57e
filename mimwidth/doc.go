// Package mimwidth computes heuristic tree decompositions of undirected
// graphs optimized for mim-width (maximum-induced-matching width).
//
// The mim-width of a decomposition is the maximum, over all of its cuts,
// of the size of a maximum induced matching in the bipartite graph of
// edges crossing the cut. Finding a decomposition of minimum mim-width
// is NP-hard; Decompose is a greedy randomized heuristic and its widths
// are estimates, not optima.
//
// # Shape of the result
//
// Decompose peels one vertex per step: starting from the bag holding all
// vertices, each step attaches two children to the current frontier bag,
// a singleton {v} and the remaining set, then descends into the latter.
// The result is a caterpillar-shaped rooted tree with 2n-1 bags for an
// n-vertex graph. Singleton bags carry an exact width (0 for vertices
// isolated in the input, 1 otherwise); the remaining-set bags carry the
// estimated induced-matching size of their cut.
//
// # Vertex selection
//
// Each step scores every candidate x by max(single(x), cut(x)), where
// single(x) is the exact 0/1 width of {x} and cut(x) is the estimated
// MIM of the cut separating the pool minus x from the rest of the input
// graph (package matching). Candidates with minimal score are narrowed
// by two pluggable tie-breaking policies evaluated on the subgraph
// induced by the pool: a reducing policy (default: keep maximum-degree
// vertices) and a final policy (default: pick the vertex with the
// largest neighbor degree, falling back to pool order). Residual ties
// are never broken randomly.
//
// # Reproducibility
//
// All randomness flows through a single *rand.Rand consumed sequentially
// by the matching estimator. A fixed Options.Rand seed and repetition
// count make Decompose fully deterministic; with a nil Rand a
// time-seeded source is used and both the estimated widths and the
// resulting tree may vary between runs.
package mimwidth
