package builder

import (
	"fmt"

	"github.com/SoerenHenning/MIM-Width-Project/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor building the n-vertex cycle C_n (n >= 3).
// Vertices are added in index order 0..n-1 and ring edges in order
// i -> (i+1) mod n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodCycle, u, v, err)
			}
		}
		return nil
	}
}
