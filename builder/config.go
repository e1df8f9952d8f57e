// config.go holds the resolved builder configuration and its
// deterministic defaults.

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors. It is passed
// by value, so constructors cannot leak state into each other.
type builderConfig struct {
	// idFn maps a vertex index to its ID. Deterministic by contract.
	idFn func(int) string

	// rng drives stochastic constructors; nil means "no randomness
	// available" and RandomSparse will reject it for 0 < p < 1.
	rng *rand.Rand

	// Bipartite side prefixes. Empty values resolve to the defaults.
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies opts in order over the defaults; later
// options override earlier ones.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:        decimalID,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}
	return cfg
}

// decimalID renders an index as a base-10 string ("0", "1", ...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}
