package dag

// Reduce returns a copy of g without redundant edges.
//
// An edge (p, n) is redundant when n is also reachable from p through some
// other dependent of p. For example, given C→A, A→B and C→B, the edge C→B
// is implied by C→A→B and is dropped. Reduction keeps reachability intact,
// so the reduced graph schedules in exactly the same order.
//
// Reduce returns ErrGraphHasCycle if g contains a cycle. Time complexity is
// O(V·E) for the reachability pass; space is O(V²).
func (g *Graph) Reduce() (*Graph, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	nodes := g.Nodes()
	index := PosMap(nodes)
	adjacency := make([][]int, len(nodes))
	for i, id := range nodes {
		for _, child := range g.children[id] {
			adjacency[i] = append(adjacency[i], index[child])
		}
	}
	reachable := computeReachability(adjacency)

	out := New()
	for _, id := range nodes {
		_ = out.AddNode(id)
	}
	for _, e := range g.Edges() {
		src, dst := index[e[0]], index[e[1]]
		redundant := false
		for _, mid := range adjacency[src] {
			if mid != dst && reachable[mid][dst] {
				redundant = true
				break
			}
		}
		if !redundant {
			_ = out.AddEdge(e[0], e[1])
		}
	}
	return out, nil
}

// computeReachability returns r where r[i][j] reports a path from i to j.
// Every node reaches itself.
func computeReachability(adjacency [][]int) [][]bool {
	n := len(adjacency)
	reachable := make([][]bool, n)
	for i := range reachable {
		reachable[i] = make([]bool, n)
	}

	var dfs func(source, current int)
	dfs = func(source, current int) {
		if reachable[source][current] {
			return
		}
		reachable[source][current] = true
		for _, next := range adjacency[current] {
			dfs(source, next)
		}
	}

	for i := range reachable {
		dfs(i, i)
	}
	return reachable
}
