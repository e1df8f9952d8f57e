// tiebreak.go implements the default tie-breaking policies. Both receive
// the subgraph induced by the current candidate pool and must preserve
// determinism: equal inputs, equal outputs.

package mimwidth

import "github.com/SoerenHenning/MIM-Width-Project/core"

// MaxDegreeReduce keeps the candidates of maximum degree in g. It is the
// default ReducePolicy: among equally scored candidates, vertices with
// many neighbors inside the pool are the most urgent to peel off.
// Candidates absent from g are dropped; an all-absent input is returned
// unchanged.
func MaxDegreeReduce[T comparable](g *core.Graph[T], candidates []T) []T {
	var (
		kept    []T
		bestDeg = -1
	)
	for _, v := range candidates {
		deg, err := g.Degree(v)
		if err != nil {
			continue
		}
		switch {
		case deg > bestDeg:
			bestDeg = deg
			kept = append(kept[:0], v)
		case deg == bestDeg:
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return candidates
	}
	return kept
}

// MaxNeighborDegreeFinal picks the candidate whose largest neighbor
// degree in g is maximal. It is the default FinalPolicy; residual ties
// resolve to the earliest candidate, never randomly.
func MaxNeighborDegreeFinal[T comparable](g *core.Graph[T], candidates []T) T {
	var (
		pick    T
		bestDeg = -1
	)
	pick = candidates[0]
	for _, v := range candidates {
		nd := maxNeighborDegree(g, v)
		if nd > bestDeg {
			bestDeg = nd
			pick = v
		}
	}
	return pick
}

// maxNeighborDegree returns the largest degree among v's neighbors in g,
// or -1 when v is unknown or has no neighbors.
func maxNeighborDegree[T comparable](g *core.Graph[T], v T) int {
	nbrs, err := g.AdjacentNodes(v)
	if err != nil {
		return -1
	}
	widest := -1
	for _, w := range nbrs {
		if deg, err := g.Degree(w); err == nil && deg > widest {
			widest = deg
		}
	}
	return widest
}
