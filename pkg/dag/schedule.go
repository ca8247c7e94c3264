package dag

import (
	"fmt"
	"strings"
)

// Strategy selects how many ready nodes a scheduling round emits.
type Strategy int

const (
	// Sequential emits only the smallest ready node per round, then
	// recomputes readiness. A node unlocked by that emission competes with
	// the nodes that were already waiting.
	Sequential Strategy = iota

	// Batch emits every node ready in a round, in ascending order, before
	// recomputing readiness. It does not reproduce the sequential order: for
	// the edges C→A, C→F, A→B, A→D, B→E, D→E, F→E it yields CAFBDE where
	// Sequential yields CABDFE.
	Batch
)

// String returns the strategy name as accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case Batch:
		return "batch"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts "sequential" or "batch" to a Strategy, ignoring
// case. Any other value, including the empty string, is an error.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "sequential":
		return Sequential, nil
	case "batch":
		return Batch, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (available: sequential, batch)", s)
	}
}

// RoundFunc observes a scheduling round: its 1-based number and the ready
// snapshot the round started from.
type RoundFunc func(round int, ready []string)

type scheduleOptions struct {
	strategy Strategy
	onRound  RoundFunc
}

// ScheduleOption configures Schedule.
type ScheduleOption func(*scheduleOptions)

// WithStrategy selects the emission strategy. The default is Sequential.
func WithStrategy(s Strategy) ScheduleOption {
	return func(o *scheduleOptions) { o.strategy = s }
}

// WithRoundHook registers fn to be called at the start of every round that
// found at least one ready node.
func WithRoundHook(fn RoundFunc) ScheduleOption {
	return func(o *scheduleOptions) { o.onRound = fn }
}

// IncompleteError reports that scheduling stopped with nodes left over,
// which happens when the remaining nodes form or depend on a cycle.
type IncompleteError struct {
	Order     []string // nodes scheduled before progress stopped
	Remaining []string // unscheduled nodes, ascending
}

// Error implements the error interface.
func (e *IncompleteError) Error() string {
	return fmt.Sprintf("incomplete schedule: %d of %d nodes scheduled, blocked: %s",
		len(e.Order), len(e.Order)+len(e.Remaining), strings.Join(e.Remaining, ","))
}

// Is reports whether target is ErrIncompleteSchedule.
func (e *IncompleteError) Is(target error) bool { return target == ErrIncompleteSchedule }

// Schedule returns a linear extension of the graph: every node appears once
// and after all of its prerequisites. Among nodes ready in the same round,
// output is ascending.
//
// Each round computes a fresh ready snapshot from the done set. The round
// emits according to the strategy, marks the emitted nodes done, and scans
// again. Scheduling terminates when a scan finds nothing ready. If nodes
// remain at that point the partial order is returned together with an
// *IncompleteError.
//
// Schedule is deterministic: it never depends on map iteration order.
func (g *Graph) Schedule(opts ...ScheduleOption) ([]string, error) {
	o := scheduleOptions{strategy: Sequential}
	for _, opt := range opts {
		opt(&o)
	}

	done := make(map[string]bool, len(g.nodes))
	order := make([]string, 0, len(g.nodes))

	for round := 1; ; round++ {
		ready := g.Ready(done)
		if len(ready) == 0 {
			break
		}
		if o.onRound != nil {
			o.onRound(round, ready)
		}

		emit := ready
		if o.strategy == Sequential {
			emit = ready[:1]
		}
		for _, id := range emit {
			order = append(order, id)
			done[id] = true
		}
	}

	if len(order) < len(g.nodes) {
		return order, &IncompleteError{Order: order, Remaining: g.remaining(done)}
	}
	return order, nil
}

func (g *Graph) remaining(done map[string]bool) []string {
	var rest []string
	for _, id := range g.Nodes() {
		if !done[id] {
			rest = append(rest, id)
		}
	}
	return rest
}
