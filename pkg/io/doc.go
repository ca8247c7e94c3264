// Package io reads puzzle input and writes step graphs.
//
// # Input
//
// Puzzle input is line oriented text. [ReadLines] decodes a stream into one
// string per line, stripping the line terminator ("\n" or "\r\n"). A line
// that is not valid UTF-8 fails the whole read, naming the line number, so
// solvers never see partially decoded input. [ImportLines] does the same for
// a file path. An empty stream yields zero lines, not an error.
//
// [Ints] converts lines to integers for solvers that take a list of numbers.
//
// # Graph export
//
// [WriteJSON] encodes a [dag.Graph] as JSON with two top-level arrays:
//
//	{
//	  "nodes": ["A", "B", "C"],
//	  "edges": [
//	    {"from": "A", "to": "B"},
//	    {"from": "B", "to": "C"}
//	  ]
//	}
//
// Edges point from a prerequisite to the node that waits on it. Nodes and
// edges are sorted, so equal graphs always encode to identical bytes.
//
// [dag.Graph]: github.com/matzehuels/aoc2018/pkg/dag.Graph
package io
