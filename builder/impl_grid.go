package builder

import (
	"fmt"

	"github.com/SoerenHenning/MIM-Width-Project/core"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid returns a Constructor building a rows x cols 4-neighborhood grid
// with IDs "r,c" in row-major order. Each cell links to its right and
// lower neighbor, so every edge is emitted exactly once.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], _ builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: %dx%d, min side=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddVertex(id(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := g.AddEdge(id(r, c), id(r, c+1)); err != nil {
						return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodGrid, id(r, c), id(r, c+1), err)
					}
				}
				if r+1 < rows {
					if err := g.AddEdge(id(r, c), id(r+1, c)); err != nil {
						return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodGrid, id(r, c), id(r+1, c), err)
					}
				}
			}
		}
		return nil
	}
}
