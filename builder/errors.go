// errors.go declares the package sentinels. Constructors attach context
// with %w wrapping; callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices reports a size parameter below the constructor's
// documented minimum (e.g. Cycle needs n >= 3, Path needs n >= 2).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability reports an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource reports a stochastic constructor invoked without a
// random source; set WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed reports an orchestration failure such as a nil
// constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
