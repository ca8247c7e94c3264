// Package day02 solves "Inventory Management System".
package day02

import (
	"context"
	"strconv"
	"strings"

	"github.com/matzehuels/aoc2018/pkg/errors"
	"github.com/matzehuels/aoc2018/pkg/puzzle"
)

// Puzzle is the registered day 2 solver.
var Puzzle = &puzzle.Puzzle{
	Day:   2,
	Title: "Inventory Management System",
	Solve: solve,
}

// Checksum multiplies the number of box IDs containing some letter exactly
// twice by the number containing some letter exactly three times. IDs must
// consist of lowercase ASCII letters.
func Checksum(ids []string) (int, error) {
	var doubles, triples int
	for i, id := range ids {
		var counts [26]int
		for j := 0; j < len(id); j++ {
			b := id[j]
			if b < 'a' || b > 'z' {
				return 0, errors.Malformed(i, id, "<lowercase letters>")
			}
			counts[b-'a']++
		}

		var two, three bool
		for _, n := range counts {
			two = two || n == 2
			three = three || n == 3
		}
		if two {
			doubles++
		}
		if three {
			triples++
		}
	}
	return doubles * triples, nil
}

// Common finds the first pair of IDs that differ in exactly one position and
// returns the letters they share. IDs of different lengths never pair.
func Common(ids []string) (string, error) {
	for j := 0; j < len(ids); j++ {
		for k := j + 1; k < len(ids); k++ {
			if distance(ids[j], ids[k]) == 1 {
				return shared(ids[j], ids[k]), nil
			}
		}
	}
	return "", errors.New(errors.ErrCodeNoSolution, "no two box IDs differ by exactly one character")
}

// distance returns the number of positions at which a and b differ, or -1
// if their lengths differ.
func distance(a, b string) int {
	if len(a) != len(b) {
		return -1
	}
	var d int
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

func shared(a, b string) string {
	out := make([]byte, 0, len(a))
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			out = append(out, a[i])
		}
	}
	return string(out)
}

func solve(_ context.Context, lines []string, _ puzzle.Options) (puzzle.Answer, error) {
	ids := make([]string, len(lines))
	for i, line := range lines {
		ids[i] = strings.TrimSpace(line)
	}

	sum, err := Checksum(ids)
	if err != nil {
		return puzzle.Answer{}, err
	}
	common, err := Common(ids)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: strconv.Itoa(sum), Part2: common}, nil
}
