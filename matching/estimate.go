// estimate.go implements the randomized greedy MIM estimator described
// in doc.go.

package matching

import (
	"math/rand"
	"time"

	"github.com/SoerenHenning/MIM-Width-Project/core"
)

// Estimate returns a heuristic maximum induced matching of g.
//
// It runs Options.Repetitions independent greedy trials, each on a fresh
// clone of g (g itself is never mutated), and returns the largest
// matching found; earlier trials win size ties. See the package
// documentation for the greedy rule and the reproducibility contract.
// Returns ErrNilGraph or ErrOptionViolation for invalid input.
// Complexity: O(Repetitions · E²) worst case.
func Estimate[T comparable](g *core.Graph[T], opts ...Option) (Matching[T], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	best := Matching[T]{}
	for trial := 0; trial < o.Repetitions; trial++ {
		m, err := greedyTrial(g.Clone(), rng)
		if err != nil {
			return nil, err
		}
		// Strict improvement only: the first trial reaching a size keeps
		// it, which makes results reproducible for a fixed seed.
		if m.Size() > best.Size() {
			best = m
		}
	}
	return best, nil
}

// greedyTrial consumes work, which it owns and mutates freely.
func greedyTrial[T comparable](work *core.Graph[T], rng *rand.Rand) (Matching[T], error) {
	var m Matching[T]
	for work.EdgeCount() > 0 {
		pick, err := minDegreeSumEdge(work, rng)
		if err != nil {
			return nil, err
		}
		m = append(m, pick)
		if err := removeClosure(work, pick); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// minDegreeSumEdge selects an edge minimizing deg(U)+deg(V) in work,
// breaking ties uniformly at random. The random source is consumed only
// when an actual tie exists, keeping draws deterministic for a fixed
// seed and graph.
func minDegreeSumEdge[T comparable](work *core.Graph[T], rng *rand.Rand) (core.Edge[T], error) {
	var (
		tied    []core.Edge[T]
		bestSum = -1
	)
	for _, e := range work.Edges() {
		du, err := work.Degree(e.U)
		if err != nil {
			return core.Edge[T]{}, err
		}
		dv, err := work.Degree(e.V)
		if err != nil {
			return core.Edge[T]{}, err
		}
		switch sum := du + dv; {
		case bestSum < 0 || sum < bestSum:
			bestSum = sum
			tied = append(tied[:0], e)
		case sum == bestSum:
			tied = append(tied, e)
		}
	}
	if len(tied) == 1 {
		return tied[0], nil
	}
	return tied[rng.Intn(len(tied))], nil
}

// removeClosure removes the matched edge and then every edge incident to
// the closure of its endpoints: their neighbors plus those neighbors'
// own neighbors. Eliminating the second hop as well is what guarantees
// no later pick can become adjacent to this one.
func removeClosure[T comparable](work *core.Graph[T], e core.Edge[T]) error {
	if err := work.RemoveEdge(e.U, e.V); err != nil {
		return err
	}

	closure := core.NewVertexSet[T]()
	var ordered []T
	collect := func(vs []T) {
		for _, v := range vs {
			if !closure.Contains(v) {
				closure.Add(v)
				ordered = append(ordered, v)
			}
		}
	}

	// First hop: the matched endpoints' remaining neighbors.
	for _, end := range []T{e.U, e.V} {
		nbrs, err := work.AdjacentNodes(end)
		if err != nil {
			return err
		}
		collect(nbrs)
	}
	// Second hop: those neighbors' neighbors, collected before any
	// removal so the closure reflects the pre-removal structure.
	firstHop := len(ordered)
	for i := 0; i < firstHop; i++ {
		nbrs, err := work.AdjacentNodes(ordered[i])
		if err != nil {
			return err
		}
		collect(nbrs)
	}

	// Strip every edge incident to the closure.
	for _, v := range ordered {
		nbrs, err := work.AdjacentNodes(v)
		if err != nil {
			return err
		}
		for _, w := range nbrs {
			if err := work.RemoveEdge(v, w); err != nil {
				return err
			}
		}
	}
	return nil
}
