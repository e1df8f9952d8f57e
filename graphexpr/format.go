// format.go is the inverse of parse.go: it serializes a graph back
// into an edge-run expression.

package graphexpr

import (
	"strings"

	"github.com/SoerenHenning/MIM-Width-Project/core"
)

// Format renders g as an edge-run expression that Parse accepts:
// every edge becomes a two-vertex run, isolated vertices become their
// own parts. Enumeration order makes the output deterministic. The
// empty graph formats to the empty string.
func Format(g *core.Graph[string]) string {
	var parts []string

	edges := g.Edges()
	runs := make([]string, len(edges))
	for i, e := range edges {
		runs[i] = e.U + "-" + e.V
	}
	if len(runs) > 0 {
		parts = append(parts, strings.Join(runs, ", "))
	}

	for _, v := range g.Vertices() {
		if iso, err := g.IsIsolated(v); err == nil && iso {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, "; ")
}
