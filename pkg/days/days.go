// Package days provides the complete list of implemented puzzle solvers.
//
// This package exists to break import cycles: the individual day packages
// import pkg/puzzle, so pkg/puzzle cannot import them back. Consumers that
// need the full list import this package instead.
//
// Usage:
//
//	import "github.com/matzehuels/aoc2018/pkg/days"
//
//	for _, p := range days.All {
//	    fmt.Println(p.Name(), p.Title)
//	}
package days

import (
	"github.com/matzehuels/aoc2018/pkg/days/day01"
	"github.com/matzehuels/aoc2018/pkg/days/day02"
	"github.com/matzehuels/aoc2018/pkg/days/day03"
	"github.com/matzehuels/aoc2018/pkg/days/day04"
	"github.com/matzehuels/aoc2018/pkg/days/day05"
	"github.com/matzehuels/aoc2018/pkg/days/day07"
	"github.com/matzehuels/aoc2018/pkg/puzzle"
)

// All lists the implemented puzzles in day order.
var All = []*puzzle.Puzzle{
	day01.Puzzle,
	day02.Puzzle,
	day03.Puzzle,
	day04.Puzzle,
	day05.Puzzle,
	day07.Puzzle,
}

// Find returns the puzzle for day, or nil if it is not implemented.
func Find(day int) *puzzle.Puzzle {
	return puzzle.Find(day, All)
}
