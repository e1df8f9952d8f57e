package builder

import (
	"fmt"

	"github.com/SoerenHenning/MIM-Width-Project/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor building K_{n1,n2}
// (n1, n2 >= 1). Side IDs combine the partition prefixes with the
// index: "L0".."L<n1-1>" and "R0".."R<n2-1>" by default, configurable
// via WithPartitionPrefix. Left vertices are added first, then right,
// then edges left-major.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: sides %dx%d, min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		for i := 0; i < n1; i++ {
			g.AddVertex(cfg.leftPrefix + cfg.idFn(i))
		}
		for j := 0; j < n2; j++ {
			g.AddVertex(cfg.rightPrefix + cfg.idFn(j))
		}
		for i := 0; i < n1; i++ {
			u := cfg.leftPrefix + cfg.idFn(i)
			for j := 0; j < n2; j++ {
				v := cfg.rightPrefix + cfg.idFn(j)
				if err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodCompleteBipartite, u, v, err)
				}
			}
		}
		return nil
	}
}
