// Package render draws step graphs as node-link diagrams.
//
// # Overview
//
// [ToDOT] converts a [dag.Graph] into Graphviz DOT source. Output is
// deterministic: nodes and edges are written in ascending order so the same
// graph always produces the same bytes, which keeps golden files and diffs
// stable.
//
//	dot := render.ToDOT(g, render.Options{Order: order})
//	svg, err := render.SVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Order: when set, each node label is prefixed with its 1-based position
//     in that schedule, and nodes missing from it are drawn dashed.
//
// # Dependencies
//
// [SVG] uses [github.com/goccy/go-graphviz] for in-process rendering; no
// Graphviz installation is required.
package render
