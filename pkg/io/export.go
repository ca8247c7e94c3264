package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/aoc2018/pkg/dag"
)

type graph struct {
	Nodes []string `json:"nodes"`
	Edges []edge   `json:"edges"`
}

type edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteJSON encodes a step graph as JSON and writes it to w.
func WriteJSON(g *dag.Graph, w io.Writer) error {
	out := graph{
		Nodes: append([]string{}, g.Nodes()...),
		Edges: make([]edge, 0, g.EdgeCount()),
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edge{From: e[0], To: e[1]})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a step graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *dag.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
