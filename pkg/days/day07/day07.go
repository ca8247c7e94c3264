// Package day07 solves "The Sum of Its Parts": ordering assembly steps that
// depend on one another.
package day07

import (
	"context"
	stderrors "errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/aoc2018/pkg/dag"
	"github.com/matzehuels/aoc2018/pkg/errors"
	"github.com/matzehuels/aoc2018/pkg/observability"
	"github.com/matzehuels/aoc2018/pkg/puzzle"
)

// Puzzle is the registered day 7 solver.
var Puzzle = &puzzle.Puzzle{
	Day:   7,
	Title: "The Sum of Its Parts",
	Solve: solve,
}

const statement = "Step X must be finished before step Y can begin."

var statementRe = regexp.MustCompile(`^Step ([A-Z]) must be finished before step ([A-Z]) can begin\.$`)

// Parse builds the step graph from precedence statements. Surrounding
// whitespace on a line is ignored. Every line must be a statement; the first
// that is not aborts parsing with a MALFORMED_LINE error naming it. A step
// listed as its own prerequisite is kept and later blocks the schedule.
// Zero lines give an empty graph.
func Parse(lines []string) (*dag.Graph, error) {
	g := dag.New()
	for i, line := range lines {
		m := statementRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return nil, errors.Malformed(i, line, statement)
		}
		if err := g.AddEdge(m[1], m[2]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedLine, err, "line %d: %q", i+1, line)
		}
	}
	return g, nil
}

// Order returns the steps concatenated in schedule order. A graph that
// cannot be fully scheduled yields an INCOMPLETE_SCHEDULE error whose
// message includes the partial order.
func Order(ctx context.Context, g *dag.Graph, strategy dag.Strategy) (string, error) {
	logger := puzzle.Logger(ctx)
	hooks := observability.Schedule()

	order, err := g.Schedule(
		dag.WithStrategy(strategy),
		dag.WithRoundHook(func(round int, ready []string) {
			logger.Debug("Scheduling round", "round", round, "ready", strings.Join(ready, ""))
			hooks.OnRound(ctx, round, ready)
		}),
	)
	if err != nil {
		return "", incomplete(err, g)
	}
	return strings.Join(order, ""), nil
}

// Duration returns the time needed to complete every step with the given
// number of workers, where step X takes base + (X - 'A' + 1) seconds.
func Duration(g *dag.Graph, workers, base int) (int, error) {
	if err := errors.ValidateWorkers(workers, base); err != nil {
		return 0, err
	}
	total, err := g.Simulate(workers, func(id string) int {
		return base + int(id[0]-'A') + 1
	})
	if err != nil {
		return 0, incomplete(err, g)
	}
	return total, nil
}

func incomplete(err error, g *dag.Graph) error {
	var ie *dag.IncompleteError
	if stderrors.As(err, &ie) {
		return errors.Wrap(errors.ErrCodeIncompleteSchedule, err,
			"scheduled %q before stalling (%d of %d steps)", strings.Join(ie.Order, ""), len(ie.Order), g.NodeCount())
	}
	return errors.Wrap(errors.ErrCodeInternal, err, "schedule steps")
}

func solve(ctx context.Context, lines []string, opts puzzle.Options) (puzzle.Answer, error) {
	g, err := Parse(lines)
	if err != nil {
		return puzzle.Answer{}, err
	}
	puzzle.Logger(ctx).Debug("Parsed steps", "steps", g.NodeCount(), "edges", g.EdgeCount())

	order, err := Order(ctx, g, opts.Strategy)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if g.NodeCount() == 0 {
		return puzzle.Answer{Part1: order}, nil
	}

	total, err := Duration(g, opts.Workers, opts.BaseDuration)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: order, Part2: strconv.Itoa(total)}, nil
}
