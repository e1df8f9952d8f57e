// Package matching provides a randomized greedy estimator for the
// maximum induced matching (MIM) of a graph.
//
// An induced matching is a set of vertex-disjoint edges such that the
// graph contains no edge between the endpoints of any two chosen edges.
// Computing the maximum induced matching is NP-hard, so Estimate is an
// explicit heuristic: it runs several independent greedy trials and keeps
// the largest matching found. The result is a lower bound on the true
// maximum with no approximation guarantee.
//
// # Greedy rule
//
// Each trial repeatedly picks an edge whose endpoint degree sum is
// minimal in the remaining working graph (low-degree edges are the least
// likely to conflict with later picks), breaking ties uniformly at random
// from the injected source. After a pick, the trial removes every edge
// incident to the picked endpoints' neighbors and to those neighbors'
// own neighbors. This two-hop closure is deliberately stricter than the
// textbook induced-matching condition; the decomposition widths reported
// by package mimwidth depend on it, so it must not be relaxed.
//
// # Reproducibility
//
// Trials run sequentially and draw from a single shared *rand.Rand
// (WithRand / WithSeed); ties between trials of equal size are resolved
// in favor of the earlier trial. A fixed seed and repetition count
// therefore always produce the same matching. Without an injected
// source, a time-seeded one is used and results vary between runs.
package matching
