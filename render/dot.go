package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/SoerenHenning/MIM-Width-Project/core"
	"github.com/SoerenHenning/MIM-Width-Project/mimwidth"
)

// Options configures decomposition rendering.
type Options struct {
	// HideWidths omits the per-cut width annotation from bag labels.
	HideWidths bool
}

// ToDOT converts a decomposition tree to Graphviz DOT. Bags appear in
// preorder with stable numeric node IDs; singleton bags are drawn with
// a grey fill. The empty decomposition yields a valid empty digraph.
func ToDOT[T comparable](d *mimwidth.Decomposition[T], opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph decomposition {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	bags := d.Bags()
	ids := make(map[*mimwidth.Bag[T]]int, len(bags))
	for i, b := range bags {
		ids[b] = i
		attrs := []string{fmt.Sprintf("label=%q", bagLabel(d, b, opts))}
		if len(b.Vertices) == 1 {
			attrs = append(attrs, "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", i, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, b := range bags {
		for _, child := range b.Children {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", ids[b], ids[child])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// GraphToDOT converts an undirected graph to DOT, with vertices and
// edges in enumeration order.
func GraphToDOT[T comparable](g *core.Graph[T]) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  node [shape=circle];\n")
	buf.WriteString("\n")
	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %q;\n", fmt.Sprint(v))
	}
	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", fmt.Sprint(e.U), fmt.Sprint(e.V))
	}
	buf.WriteString("}\n")
	return buf.String()
}

// bagLabel renders the vertex set of b, one line, plus the width
// annotation for non-root bags.
func bagLabel[T comparable](d *mimwidth.Decomposition[T], b *mimwidth.Bag[T], opts Options) string {
	names := make([]string, len(b.Vertices))
	for i, v := range b.Vertices {
		names[i] = fmt.Sprint(v)
	}
	label := "{" + strings.Join(names, " ") + "}"
	if !opts.HideWidths && b != d.Root {
		label += fmt.Sprintf("\nwidth: %d", d.Widths[b])
	}
	return label
}
