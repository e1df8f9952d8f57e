package builder

import (
	"fmt"

	"github.com/SoerenHenning/MIM-Width-Project/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor building the simple path P_n (n >= 2) with
// edges i -> i+1 for i = 0..n-2.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n-1; i++ {
			u, v := cfg.idFn(i), cfg.idFn(i+1)
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodPath, u, v, err)
			}
		}
		return nil
	}
}
