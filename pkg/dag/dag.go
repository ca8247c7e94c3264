package dag

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] and [Graph.AddEdge] when
	// a node ID is empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrGraphHasCycle is returned by [Graph.Validate] when a cycle is detected.
	// Cycles are detected using depth-first search with white/gray/black coloring.
	ErrGraphHasCycle = errors.New("graph contains a cycle")

	// ErrIncompleteSchedule is matched (via errors.Is) by the *IncompleteError
	// returned from [Graph.Schedule] and [Graph.Simulate] when no node is ready
	// but some remain unscheduled.
	ErrIncompleteSchedule = errors.New("incomplete schedule")
)

// Graph maps each node to the set of prerequisites that must be done before
// it becomes ready.
//
// Nodes that only ever appear as a prerequisite are still members of the
// graph, so root detection sees them.
//
// The zero value is not usable - use New to create a valid Graph instance.
// Graph is not safe for concurrent mutation; once built it is only read.
type Graph struct {
	nodes    map[string]struct{}
	prereqs  map[string]map[string]struct{} // node -> prerequisites
	children map[string][]string            // prerequisite -> dependents, insertion order
	edges    int
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]struct{}),
		prereqs:  make(map[string]map[string]struct{}),
		children: make(map[string][]string),
	}
}

// AddNode registers a node with no prerequisites. Adding an existing node is
// a no-op. Returns ErrInvalidNodeID if id is empty.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	g.nodes[id] = struct{}{}
	return nil
}

// AddEdge records that prereq must be done before node. Both endpoints are
// added to the graph. Duplicate edges are collapsed. A self-edge is kept as
// the smallest possible cycle: its node never becomes ready.
func (g *Graph) AddEdge(prereq, node string) error {
	if prereq == "" || node == "" {
		return ErrInvalidNodeID
	}
	g.nodes[prereq] = struct{}{}
	g.nodes[node] = struct{}{}

	set, ok := g.prereqs[node]
	if !ok {
		set = make(map[string]struct{})
		g.prereqs[node] = set
	}
	if _, dup := set[prereq]; dup {
		return nil
	}
	set[prereq] = struct{}{}
	g.children[prereq] = append(g.children[prereq], node)
	g.edges++
	return nil
}

// Has reports whether id is a node of the graph.
func (g *Graph) Has(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all node IDs in ascending order.
func (g *Graph) Nodes() []string {
	return slices.Sorted(maps.Keys(g.nodes))
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct (prerequisite, node) pairs.
func (g *Graph) EdgeCount() int { return g.edges }

// Prerequisites returns the prerequisites of id in ascending order.
// Returns nil if id has none or is unknown.
func (g *Graph) Prerequisites(id string) []string {
	set := g.prereqs[id]
	if len(set) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(set))
}

// Dependents returns the nodes that list id as a prerequisite, in the order
// the edges were added. The returned slice must not be modified.
func (g *Graph) Dependents(id string) []string { return g.children[id] }

// Edges returns every (prerequisite, node) pair, sorted by node then
// prerequisite.
func (g *Graph) Edges() [][2]string {
	edges := make([][2]string, 0, g.edges)
	for _, node := range g.Nodes() {
		for _, p := range g.Prerequisites(node) {
			edges = append(edges, [2]string{p, node})
		}
	}
	return edges
}

// Roots returns the nodes with no prerequisites in ascending order. These are
// ready before anything has been done.
func (g *Graph) Roots() []string {
	return g.Ready(nil)
}

// Ready returns, in ascending order, every node not in done whose
// prerequisites are all in done. Nodes without recorded prerequisites are
// vacuously ready. A nil done set is treated as empty.
//
// The result is a fresh snapshot; neither done nor the graph is modified.
func (g *Graph) Ready(done map[string]bool) []string {
	var ready []string
	for id := range g.nodes {
		if done[id] {
			continue
		}
		if g.satisfied(id, done) {
			ready = append(ready, id)
		}
	}
	slices.Sort(ready)
	return ready
}

func (g *Graph) satisfied(id string, done map[string]bool) bool {
	for p := range g.prereqs[id] {
		if !done[p] {
			return false
		}
	}
	return true
}

// Validate returns ErrGraphHasCycle if the prerequisite relation contains a
// directed cycle, nil otherwise. Runs in O(N+E).
func (g *Graph) Validate() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.nodes))
	var hasCycle bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, child := range g.children[id] {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				hasCycle = true
			}
			if hasCycle {
				return
			}
		}
		color[id] = black
	}

	for _, id := range g.Nodes() {
		if color[id] == white {
			dfs(id)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}

// PosMap creates a position lookup map from a slice of node IDs.
// The returned map maps each ID to its index in the slice.
func PosMap(ids []string) map[string]int {
	m := make(map[string]int, len(ids))
	for i, id := range ids {
		m[id] = i
	}
	return m
}
