// options.go declares the functional options. Option constructors
// validate eagerly and panic on programmer error; the builders
// themselves only ever return errors.

package builder

import "math/rand"

// Option customizes a build by mutating the builderConfig before any
// constructor runs.
type Option func(*builderConfig)

// WithIDScheme sets the vertex ID generator (index to string). Panics
// on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand supplies an explicit random source for stochastic
// constructors. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh source seeded with the given value, locking
// the outcome of stochastic constructors.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPartitionPrefix sets the bipartite side labels. Empty strings
// fall back to the defaults "L" and "R".
func WithPartitionPrefix(left, right string) Option {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}
