// Package graphexpr parses textual graph descriptions into core graphs.
//
// Two formats are supported. Parse reads a compact edge-run expression
// where "-" chains adjacent vertices, "," starts a new run and ";"
// separates connected parts:
//
//	"a-b-c-a; x"        a triangle plus the isolated vertex x
//	"1-2-3, 2-4"        a path 1-2-3 with an extra edge 2-4
//
// ReadPACE reads the PACE challenge .gr format: a "p" problem line
// announcing the vertex and edge counts, "c" comment lines, and one
// "u v" pair per edge with 1-based integer vertices.
//
// Both parsers are tolerant of repeated edges (later mentions are
// ignored) and reject self-loops, matching the core graph constraints.
package graphexpr
