// Package matching option plumbing and result type; the estimator itself
// lives in estimate.go.

package matching

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/SoerenHenning/MIM-Width-Project/core"
)

// Sentinel errors for estimation.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("matching: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matching: invalid option supplied")
)

// DefaultRepetitions is the number of independent greedy trials Estimate
// runs unless overridden with WithRepetitions.
const DefaultRepetitions = 5

// Matching is a set of edges forming an induced matching.
type Matching[T comparable] []core.Edge[T]

// Size returns the number of matched edges.
func (m Matching[T]) Size() int { return len(m) }

// IsInduced reports whether m is a valid induced matching in g: every
// edge of m exists in g, no two edges share an endpoint, and g contains
// no edge between the endpoints of two different matched pairs.
// Complexity: O(|m|² + |m|).
func (m Matching[T]) IsInduced(g *core.Graph[T]) bool {
	for i, e := range m {
		if !g.HasEdge(e.U, e.V) {
			return false
		}
		for _, f := range m[i+1:] {
			if f.Touches(e.U) || f.Touches(e.V) {
				return false
			}
			if g.HasEdge(e.U, f.U) || g.HasEdge(e.U, f.V) ||
				g.HasEdge(e.V, f.U) || g.HasEdge(e.V, f.V) {
				return false
			}
		}
	}
	return true
}

// Option configures Estimate via functional arguments. Invalid options
// are recorded and surfaced as ErrOptionViolation when Estimate runs.
type Option func(*Options)

// Options holds the estimation parameters.
type Options struct {
	// Rand is the shared pseudo-random source used for tie-breaking.
	// nil means "seed from the clock at call time" (non-reproducible).
	Rand *rand.Rand

	// Repetitions is the number of independent greedy trials; the
	// largest matching across trials wins.
	Repetitions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultRepetitions trials and no
// injected random source.
func DefaultOptions() Options {
	return Options{Repetitions: DefaultRepetitions}
}

// WithRand injects the shared random source; nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed injects a fresh random source seeded deterministically.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRepetitions sets the trial count.
//
//	n >= 1: run n trials
//	n < 1:  invalid option → ErrOptionViolation
func WithRepetitions(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Repetitions must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Repetitions = n
	}
}
