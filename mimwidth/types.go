// types.go declares the decomposition result types, the tie-breaking
// policy signatures and the Options struct. The algorithm itself lives
// in decompose.go, the default policies in tiebreak.go.

package mimwidth

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/SoerenHenning/MIM-Width-Project/core"
	"github.com/SoerenHenning/MIM-Width-Project/matching"
)

// Sentinel errors for decomposition.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("mimwidth: graph is nil")

	// ErrNoCandidates is returned when vertex selection is invoked with
	// an empty candidate pool. The decomposition loop guarantees a
	// non-empty pool, so seeing this error signals a logic bug, not a
	// recoverable condition.
	ErrNoCandidates = errors.New("mimwidth: empty candidate set")

	// ErrOptionViolation is returned for invalid Options values.
	ErrOptionViolation = errors.New("mimwidth: invalid option supplied")
)

// DefaultRepetitions is the matching-estimator trial count used when
// Options.Repetitions is zero.
const DefaultRepetitions = matching.DefaultRepetitions

// Bag is a node of the decomposition tree, identified by the vertex set
// it holds. Vertices preserves the input graph's enumeration order.
type Bag[T comparable] struct {
	Vertices []T
	Children []*Bag[T]
}

// Leaf reports whether the bag has no children.
func (b *Bag[T]) Leaf() bool { return len(b.Children) == 0 }

// Set returns the bag's content as a fresh VertexSet.
func (b *Bag[T]) Set() core.VertexSet[T] {
	return core.NewVertexSet(b.Vertices...)
}

// Decomposition is the result of Decompose: a rooted caterpillar tree of
// bags plus the per-cut width annotations.
//
// Widths holds exactly one entry per non-root bag: the heuristic mim
// value of the cut separating that bag from its sibling. Singleton-bag
// entries are exact (0 or 1); remaining-set entries are estimates.
type Decomposition[T comparable] struct {
	// Root is the bag holding every vertex of the input graph, or nil
	// for the empty graph (a decomposition with no nodes).
	Root *Bag[T]

	// Widths maps each non-root bag to its cut width.
	Widths map[*Bag[T]]int
}

// Size returns the number of bags in the tree: 2n-1 for an n-vertex
// input (n >= 1), 0 for the empty graph.
func (d *Decomposition[T]) Size() int {
	return len(d.Bags())
}

// Bags returns all bags in preorder (root first). The slice is freshly
// allocated.
func (d *Decomposition[T]) Bags() []*Bag[T] {
	if d.Root == nil {
		return nil
	}
	var out []*Bag[T]
	stack := []*Bag[T]{d.Root}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, b)
		for i := len(b.Children) - 1; i >= 0; i-- {
			stack = append(stack, b.Children[i])
		}
	}
	return out
}

// MimWidth returns the largest width over all cuts, i.e. the heuristic
// mim-width of the decomposition. A decomposition without cuts (empty or
// single-vertex input) has mim-width 0.
func (d *Decomposition[T]) MimWidth() int {
	widest := 0
	for _, w := range d.Widths {
		if w > widest {
			widest = w
		}
	}
	return widest
}

// Validate checks the structural invariants of the decomposition: every
// internal bag has exactly two children of which one is a singleton,
// leaves are singletons (the root of a single-vertex input counts as a
// leaf), and Widths holds exactly one entry per non-root bag.
func (d *Decomposition[T]) Validate() error {
	if d.Root == nil {
		if len(d.Widths) != 0 {
			return fmt.Errorf("mimwidth: empty tree with %d width entries", len(d.Widths))
		}
		return nil
	}
	bags := d.Bags()
	for _, b := range bags {
		switch {
		case b.Leaf():
			if b != d.Root && len(b.Vertices) != 1 {
				return fmt.Errorf("mimwidth: non-singleton leaf bag of size %d", len(b.Vertices))
			}
		case len(b.Children) == 2:
			if len(b.Children[0].Vertices) != 1 && len(b.Children[1].Vertices) != 1 {
				return fmt.Errorf("mimwidth: internal bag without singleton child")
			}
		default:
			return fmt.Errorf("mimwidth: internal bag with %d children", len(b.Children))
		}
	}
	if want := len(bags) - 1; len(d.Widths) != want {
		return fmt.Errorf("mimwidth: %d width entries for %d non-root bags", len(d.Widths), want)
	}
	for b, w := range d.Widths {
		if b == d.Root {
			return fmt.Errorf("mimwidth: width entry for root bag")
		}
		if w < 0 {
			return fmt.Errorf("mimwidth: negative width %d", w)
		}
	}
	return nil
}

// ReducePolicy narrows a set of tied candidates; it may resolve the tie
// completely or return a smaller still-tied subset. The graph passed in
// is the subgraph induced by the full candidate pool of the current
// step, not the whole input graph.
type ReducePolicy[T comparable] func(g *core.Graph[T], candidates []T) []T

// FinalPolicy resolves a tie to a single vertex. It must be
// deterministic; residual ties inside the policy should fall back to
// candidate order, never to randomness.
type FinalPolicy[T comparable] func(g *core.Graph[T], candidates []T) T

// Options holds the decomposition parameters. The zero value of every
// field means "use the documented default", so Decompose(g, nil) runs
// the default heuristic.
type Options[T comparable] struct {
	// Rand is the shared pseudo-random source handed to the matching
	// estimator. nil seeds from the clock at call time.
	Rand *rand.Rand

	// Repetitions is the estimator trial count per candidate cut;
	// zero means DefaultRepetitions, negative is rejected.
	Repetitions int

	// Reduce is the first-stage tie-breaker; nil means MaxDegreeReduce.
	Reduce ReducePolicy[T]

	// Final is the second-stage tie-breaker; nil means
	// MaxNeighborDegreeFinal.
	Final FinalPolicy[T]
}

// DefaultOptions returns the documented defaults: max-degree reduction,
// max-neighbor-degree final pick, DefaultRepetitions trials, clock-
// seeded randomness.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		Repetitions: DefaultRepetitions,
		Reduce:      MaxDegreeReduce[T],
		Final:       MaxNeighborDegreeFinal[T],
	}
}

// resolveOptions fills defaults into a caller-supplied Options value and
// validates it. opts may be nil.
func resolveOptions[T comparable](opts *Options[T]) (Options[T], error) {
	o := DefaultOptions[T]()
	if opts != nil {
		if opts.Repetitions < 0 {
			return o, fmt.Errorf("%w: Repetitions must not be negative (%d)", ErrOptionViolation, opts.Repetitions)
		}
		if opts.Rand != nil {
			o.Rand = opts.Rand
		}
		if opts.Repetitions > 0 {
			o.Repetitions = opts.Repetitions
		}
		if opts.Reduce != nil {
			o.Reduce = opts.Reduce
		}
		if opts.Final != nil {
			o.Final = opts.Final
		}
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o, nil
}
