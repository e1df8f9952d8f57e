// Package render converts graphs and decompositions to Graphviz DOT and
// rasterizes them to SVG or PNG through the embedded Graphviz engine.
//
// ToDOT lays out a decomposition tree top-down with the root bag first;
// singleton bags are filled grey and annotated with their cut width.
// GraphToDOT emits the plain undirected input graph. Both DOT encoders
// are deterministic: bags and edges appear in the enumeration order of
// their sources, so output is stable across runs and safe for golden
// tests.
package render
