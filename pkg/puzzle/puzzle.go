package puzzle

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/aoc2018/pkg/dag"
	"github.com/matzehuels/aoc2018/pkg/observability"
)

// Default options for puzzles that simulate parallel work.
const (
	DefaultWorkers      = 5
	DefaultBaseDuration = 60
)

// Answer holds the printed result of a solve. Part2 is empty when the puzzle
// has no second part.
type Answer struct {
	Part1 string
	Part2 string
}

// Lines returns the answer formatted for output, one "Part N: value" per part.
func (a Answer) Lines() []string {
	lines := []string{"Part 1: " + a.Part1}
	if a.Part2 != "" {
		lines = append(lines, "Part 2: "+a.Part2)
	}
	return lines
}

// Options carries tunables that some puzzles consult. Puzzles ignore the
// fields they do not need.
type Options struct {
	// Workers is the size of the simulated worker pool.
	Workers int
	// BaseDuration is the fixed cost added to every simulated step.
	BaseDuration int
	// Strategy selects how dependency schedules emit ready nodes.
	Strategy dag.Strategy
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Workers:      DefaultWorkers,
		BaseDuration: DefaultBaseDuration,
		Strategy:     dag.Sequential,
	}
}

// SolveFunc computes the answer for the given input lines.
type SolveFunc func(ctx context.Context, lines []string, opts Options) (Answer, error)

// Puzzle describes one day's solver.
type Puzzle struct {
	// Day is the calendar day, 1-25.
	Day int
	// Title is the puzzle's name as published.
	Title string
	// Solve computes the answer.
	Solve SolveFunc
}

// Name returns the zero-padded identifier used for input files, e.g. "day07".
func (p *Puzzle) Name() string { return fmt.Sprintf("day%02d", p.Day) }

// Find returns the puzzle registered for day, or nil.
func Find(day int, all []*Puzzle) *Puzzle {
	for _, p := range all {
		if p.Day == day {
			return p
		}
	}
	return nil
}

// Run solves p and reports the solve to the registered observability hooks.
// It returns ctx.Err() without solving if ctx is already done.
func Run(ctx context.Context, p *Puzzle, lines []string, opts Options) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}

	hooks := observability.Solve()
	hooks.OnSolveStart(ctx, p.Day, len(lines))
	start := time.Now()

	ans, err := p.Solve(ctx, lines, opts)

	hooks.OnSolveComplete(ctx, p.Day, time.Since(start), err)
	if err != nil {
		return Answer{}, fmt.Errorf("%s: %w", p.Name(), err)
	}
	return ans, nil
}
