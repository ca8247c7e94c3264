// Package dag orders steps that depend on one another.
//
// # Overview
//
// A [Graph] maps every node to the set of prerequisites that must be done
// before it may start. It is built once from parsed input with [New],
// [Graph.AddNode] and [Graph.AddEdge], and is only read afterwards.
//
//	g := dag.New()
//	_ = g.AddEdge("C", "A") // C must be finished before A
//	_ = g.AddEdge("A", "B")
//	order, err := g.Schedule()
//
// # Readiness
//
// [Graph.Ready] computes, from a done set, every node that is not yet done
// and whose prerequisites all are. Nodes that never appear with a
// prerequisite are vacuously ready, including nodes that only ever appear
// as someone else's prerequisite. Each call returns a fresh, sorted
// snapshot; nothing is accumulated between rounds.
//
// # Scheduling
//
// [Graph.Schedule] repeats scan, sort and emit until a scan finds nothing
// ready. Two strategies are available:
//
//   - [Sequential] (default) emits the smallest ready node and rescans, so a
//     node unlocked by that emission may overtake nodes that were already
//     waiting.
//   - [Batch] emits the whole ready snapshot, in ascending order, before
//     rescanning.
//
// Both produce a linear extension of the prerequisite relation and both
// emit nodes that were ready in the same round in ascending order. They
// differ in how later-unlocked nodes interleave: for the edges
// C→A, C→F, A→B, A→D, B→E, D→E, F→E the sequential order is CABDFE and the
// batch order is CAFBDE.
//
// If a scan finds nothing ready while nodes remain, the graph contains a
// cycle (or nodes blocked behind one). Schedule then returns the partial
// order together with an [*IncompleteError], which matches
// [ErrIncompleteSchedule] via errors.Is. [Graph.Validate] reports cycles up
// front.
//
// # Workers
//
// [Graph.Simulate] plays the same readiness rules out over time with a fixed
// pool of workers and a per-node cost, and returns the completion time.
//
// # Reduction
//
// [Graph.Reduce] drops edges implied by longer paths. Readiness depends only
// on reachability, so a reduced graph schedules identically and draws with
// far fewer arrows.
//
// # Concurrency
//
// Graph instances are not safe for concurrent mutation. A fully built graph
// may be scheduled from several goroutines since scheduling only reads it.
package dag
