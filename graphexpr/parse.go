// parse.go implements the edge-run expression parser on top of a
// participle grammar.

package graphexpr

import (
	"errors"
	"fmt"

	"github.com/SoerenHenning/MIM-Width-Project/core"
	"github.com/alecthomas/participle/v2"
)

// ErrEmptyExpr is returned by Parse for an expression with no vertices.
var ErrEmptyExpr = errors.New("graphexpr: empty expression")

// graphExpr is the grammar root: parts separated by ";".
type graphExpr struct {
	Parts []*part `parser:"(@@ (\";\" @@)*)?"`
}

// part groups edge runs separated by ",".
type part struct {
	Runs []*edgeRun `parser:"(@@ (\",\" @@)*)?"`
}

// edgeRun is a start vertex followed by zero or more "-" hops.
type edgeRun struct {
	Start *vertex `parser:"@@"`
	Hops  []*hop  `parser:"@@*"`
}

type hop struct {
	End *vertex `parser:"\"-\" @@"`
}

// vertex accepts identifiers and bare integers as names.
type vertex struct {
	Name string `parser:"@(Ident | Int)"`
}

var exprParser = participle.MustBuild[graphExpr]()

// Parse converts an edge-run expression into an undirected graph whose
// vertex IDs are the literal names from the expression, in first-mention
// order. Repeated edges are ignored; a self-hop such as "a-a" is
// rejected with core.ErrSelfLoop.
func Parse(expr string) (*core.Graph[string], error) {
	ast, err := exprParser.ParseString("", expr)
	if err != nil {
		return nil, fmt.Errorf("graphexpr: %w", err)
	}

	g := core.NewGraph[string]()
	for _, p := range ast.Parts {
		for _, run := range p.Runs {
			if err := applyRun(g, run); err != nil {
				return nil, err
			}
		}
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyExpr
	}
	return g, nil
}

// applyRun walks one chain, adding each vertex on first mention and the
// edge of every hop.
func applyRun(g *core.Graph[string], run *edgeRun) error {
	prev := run.Start.Name
	g.AddVertex(prev)
	for _, h := range run.Hops {
		next := h.End.Name
		g.AddVertex(next)
		if !g.HasEdge(prev, next) {
			if err := g.AddEdge(prev, next); err != nil {
				return fmt.Errorf("graphexpr: edge %s-%s: %w", prev, next, err)
			}
		}
		prev = next
	}
	return nil
}
