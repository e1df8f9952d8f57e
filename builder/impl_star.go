package builder

import (
	"fmt"

	"github.com/SoerenHenning/MIM-Width-Project/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	starCenterID = "Center"
)

// Star returns a Constructor building a star with fixed hub "Center"
// and n-1 leaves (n >= 2). Leaves use cfg's ID scheme with indices
// 0..n-2; spokes are emitted in leaf index order.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		g.AddVertex(starCenterID)
		for i := 0; i < n-1; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddEdge(starCenterID, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodStar, starCenterID, leaf, err)
			}
		}
		return nil
	}
}
