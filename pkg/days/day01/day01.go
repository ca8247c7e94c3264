// Package day01 solves "Chronal Calibration".
package day01

import (
	"context"
	"strconv"

	"github.com/matzehuels/aoc2018/pkg/errors"
	pkgio "github.com/matzehuels/aoc2018/pkg/io"
	"github.com/matzehuels/aoc2018/pkg/puzzle"
)

// Puzzle is the registered day 1 solver.
var Puzzle = &puzzle.Puzzle{
	Day:   1,
	Title: "Chronal Calibration",
	Solve: solve,
}

// Sum returns the resulting frequency after applying every change once.
func Sum(changes []int) int {
	var f int
	for _, c := range changes {
		f += c
	}
	return f
}

// FirstRepeat cycles through changes, starting at frequency 0, and returns
// the first running frequency reached twice.
func FirstRepeat(changes []int) (int, error) {
	if len(changes) == 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "no frequency changes")
	}

	limit := maxPasses(changes) * len(changes)
	seen := map[int]struct{}{0: {}}
	f := 0
	for i := 0; i < limit; i++ {
		f += changes[i%len(changes)]
		if _, ok := seen[f]; ok {
			return f, nil
		}
		seen[f] = struct{}{}
	}
	return 0, errors.New(errors.ErrCodeNoSolution, "no frequency repeats after %d changes", limit)
}

// maxPasses bounds how many passes over changes can precede the first
// repeat. Every pass shifts each running frequency by the total drift, so
// once the shifts have covered the spread of the first pass nothing new
// can collide.
func maxPasses(changes []int) int {
	drift := Sum(changes)
	if drift == 0 {
		return 1
	}
	lo, hi, f := 0, 0, 0
	for _, c := range changes {
		f += c
		lo, hi = min(lo, f), max(hi, f)
	}
	if drift < 0 {
		drift = -drift
	}
	return (hi-lo)/drift + 2
}

func solve(ctx context.Context, lines []string, _ puzzle.Options) (puzzle.Answer, error) {
	changes, err := pkgio.Ints(lines)
	if err != nil {
		return puzzle.Answer{}, err
	}
	puzzle.Logger(ctx).Debug("Parsed changes", "count", len(changes))

	repeat, err := FirstRepeat(changes)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: strconv.Itoa(Sum(changes)),
		Part2: strconv.Itoa(repeat),
	}, nil
}
