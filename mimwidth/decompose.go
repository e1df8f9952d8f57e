// decompose.go implements the decomposition loop and the per-step vertex
// selection described in doc.go.

package mimwidth

import (
	"fmt"

	"github.com/SoerenHenning/MIM-Width-Project/core"
	"github.com/SoerenHenning/MIM-Width-Project/matching"
)

// Decompose computes a heuristic mim-width tree decomposition of g.
//
// opts may be nil for the documented defaults. The input graph is never
// mutated. Returns ErrNilGraph or ErrOptionViolation for invalid input;
// every graph, including the empty one, is otherwise valid.
// Complexity: O(n² · cost(Estimate)) — each of the n-1 peeling steps
// scores every remaining candidate with one estimator run.
func Decompose[T comparable](g *core.Graph[T], opts *Options[T]) (*Decomposition[T], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	dec := &Decomposition[T]{Widths: make(map[*Bag[T]]int)}
	remaining := g.Vertices()
	if len(remaining) == 0 {
		return dec, nil // empty graph: a tree with no nodes
	}

	dec.Root = &Bag[T]{Vertices: remaining}
	frontier := dec.Root
	for len(remaining) > 1 {
		v, width, err := chooseVertex(g, remaining, &o)
		if err != nil {
			return nil, err
		}

		// Copy-on-write: rest is a fresh slice, so the bag holding it
		// stays immutable while the loop keeps shrinking remaining.
		rest := without(remaining, v)

		singleton := &Bag[T]{Vertices: []T{v}}
		restBag := &Bag[T]{Vertices: rest}
		frontier.Children = []*Bag[T]{singleton, restBag}

		sw, err := singletonWidth(g, v)
		if err != nil {
			return nil, err
		}
		dec.Widths[singleton] = sw
		dec.Widths[restBag] = width

		remaining = rest
		frontier = restBag
	}
	return dec, nil
}

// chooseVertex scores every candidate in pool and returns the winner
// together with its score (the width recorded for the remaining bag).
// Ties on the score are narrowed by the reducing policy and, if needed,
// resolved by the final policy, both evaluated on the subgraph induced
// by pool. Returns ErrNoCandidates for an empty pool.
func chooseVertex[T comparable](g *core.Graph[T], pool []T, o *Options[T]) (T, int, error) {
	var zero T
	if len(pool) == 0 {
		return zero, 0, ErrNoCandidates
	}

	scores := make(map[T]int, len(pool))
	bestScore := -1
	for _, x := range pool {
		score, err := scoreCandidate(g, pool, x, o)
		if err != nil {
			return zero, 0, err
		}
		scores[x] = score
		if bestScore < 0 || score < bestScore {
			bestScore = score
		}
	}

	// Collect ties in pool order to keep downstream behavior stable.
	var tied []T
	for _, x := range pool {
		if scores[x] == bestScore {
			tied = append(tied, x)
		}
	}
	if len(tied) == 1 {
		return tied[0], bestScore, nil
	}

	induced := g.InducedSubgraph(core.NewVertexSet(pool...))
	reduced := o.Reduce(induced, tied)
	if len(reduced) == 0 {
		reduced = tied // a policy must not erase the tie entirely
	}
	if len(reduced) == 1 {
		return reduced[0], bestScore, nil
	}
	return o.Final(induced, reduced), bestScore, nil
}

// scoreCandidate computes max(single(x), cut(x)) for candidate x: the
// exact singleton width against the estimated induced-matching size of
// the cut separating pool\{x} from the rest of the input graph.
func scoreCandidate[T comparable](g *core.Graph[T], pool []T, x T, o *Options[T]) (int, error) {
	single, err := singletonWidth(g, x)
	if err != nil {
		return 0, err
	}

	side := core.NewVertexSet(pool...)
	side.Remove(x)
	m, err := matching.Estimate(g.Cut(side),
		matching.WithRand(o.Rand),
		matching.WithRepetitions(o.Repetitions))
	if err != nil {
		return 0, fmt.Errorf("mimwidth: scoring candidate %v: %w", x, err)
	}
	return max(single, m.Size()), nil
}

// singletonWidth is the exact cut width of a one-vertex bag: 0 when the
// vertex is isolated in the original graph, 1 otherwise.
func singletonWidth[T comparable](g *core.Graph[T], v T) (int, error) {
	iso, err := g.IsIsolated(v)
	if err != nil {
		return 0, err
	}
	if iso {
		return 0, nil
	}
	return 1, nil
}

// without returns a fresh copy of pool with the first occurrence of v
// removed, preserving order.
func without[T comparable](pool []T, v T) []T {
	out := make([]T, 0, len(pool)-1)
	for _, w := range pool {
		if w != v {
			out = append(out, w)
		}
	}
	return out
}
