// api.go is the public entry point: the Constructor type and the
// BuildGraph orchestrator. Topology implementations live in impl_*.go.

package builder

import (
	"fmt"

	"github.com/SoerenHenning/MIM-Width-Project/core"
)

// Constructor applies one deterministic graph mutation using the
// resolved configuration. Constructors validate their parameters early,
// return sentinel errors and never panic.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a fresh graph, resolves opts and applies all
// constructors in order. The first constructor error is wrapped and
// returned immediately; no partial cleanup is attempted.
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string]()
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, nil
}
