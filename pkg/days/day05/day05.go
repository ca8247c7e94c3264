// Package day05 solves "Alchemical Reduction": collapsing a polymer.
package day05

import (
	"context"
	"strconv"
	"strings"

	"github.com/matzehuels/aoc2018/pkg/errors"
	"github.com/matzehuels/aoc2018/pkg/puzzle"
)

// Puzzle is the registered day 5 solver.
var Puzzle = &puzzle.Puzzle{
	Day:   5,
	Title: "Alchemical Reduction",
	Solve: solve,
}

// reacts reports whether a and b are the same unit type with opposite
// polarity, e.g. 'a' and 'A'.
func reacts(a, b byte) bool {
	return a != b && a|0x20 == b|0x20
}

// React fully reduces the polymer and returns what remains.
func React(polymer string) string {
	return string(react([]byte(polymer), 0))
}

// react reduces polymer in a single pass using a stack, skipping any unit
// of type skip (in either polarity). A zero skip keeps every unit.
func react(polymer []byte, skip byte) []byte {
	stack := make([]byte, 0, len(polymer))
	for _, u := range polymer {
		if skip != 0 && u|0x20 == skip {
			continue
		}
		if n := len(stack); n > 0 && reacts(stack[n-1], u) {
			stack = stack[:n-1]
			continue
		}
		stack = append(stack, u)
	}
	return stack
}

// Shortest removes each unit type in turn and returns the one whose removal
// yields the shortest fully reacted polymer, with that length. Ties go to
// the earliest letter.
func Shortest(polymer string) (unit byte, length int) {
	// Removing a unit type never undoes a reaction, so start from the reduced form.
	reduced := react([]byte(polymer), 0)
	unit, length = 'a', len(reduced)+1
	for u := byte('a'); u <= 'z'; u++ {
		if n := len(react(reduced, u)); n < length {
			unit, length = u, n
		}
	}
	return unit, length
}

func validate(polymer string) error {
	if polymer == "" {
		return errors.New(errors.ErrCodeInvalidInput, "empty polymer")
	}
	for i := 0; i < len(polymer); i++ {
		if c := polymer[i] | 0x20; c < 'a' || c > 'z' {
			return errors.Malformed(0, polymer, "<letters>")
		}
	}
	return nil
}

func solve(ctx context.Context, lines []string, _ puzzle.Options) (puzzle.Answer, error) {
	polymer := strings.TrimSpace(strings.Join(lines, ""))
	if err := validate(polymer); err != nil {
		return puzzle.Answer{}, err
	}

	reduced := React(polymer)
	unit, length := Shortest(polymer)
	puzzle.Logger(ctx).Debug("Reacted polymer", "units", len(polymer), "remaining", len(reduced), "removed", string(unit))

	return puzzle.Answer{Part1: strconv.Itoa(len(reduced)), Part2: strconv.Itoa(length)}, nil
}
