package dag

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNoWorkers is returned by [Graph.Simulate] when the worker count is below one.
var ErrNoWorkers = errors.New("at least one worker is required")

// CostFunc returns how many time units a node takes to complete. It must
// return a value of at least 1.
type CostFunc func(id string) int

// Simulate runs the graph on a pool of identical workers and returns the
// time at which the last node completes.
//
// Whenever a worker is idle it takes the smallest node that is ready and not
// yet started. Nodes finishing at the same instant are marked done together
// before idle workers look for new work. A graph whose remaining nodes can
// never become ready yields an *IncompleteError.
func (g *Graph) Simulate(workers int, cost CostFunc) (int, error) {
	if workers < 1 {
		return 0, ErrNoWorkers
	}

	type job struct {
		id     string
		finish int
	}

	done := make(map[string]bool, len(g.nodes))
	started := make(map[string]bool, len(g.nodes))
	var (
		order   []string
		running []job
		now     int
	)

	for {
		for _, id := range g.Ready(done) {
			if len(running) == workers {
				break
			}
			if started[id] {
				continue
			}
			c := cost(id)
			if c < 1 {
				return 0, fmt.Errorf("cost of %q must be positive, got %d", id, c)
			}
			started[id] = true
			running = append(running, job{id: id, finish: now + c})
		}

		if len(running) == 0 {
			break
		}

		now = slices.MinFunc(running, func(a, b job) int { return a.finish - b.finish }).finish
		var finished []string
		running = slices.DeleteFunc(running, func(j job) bool {
			if j.finish == now {
				finished = append(finished, j.id)
				return true
			}
			return false
		})
		slices.Sort(finished)
		for _, id := range finished {
			done[id] = true
			order = append(order, id)
		}
	}

	if len(done) < len(g.nodes) {
		return now, &IncompleteError{Order: order, Remaining: g.remaining(done)}
	}
	return now, nil
}
