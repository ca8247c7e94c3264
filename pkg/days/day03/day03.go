// Package day03 solves "No Matter How You Slice It": overlapping fabric
// claims.
package day03

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/aoc2018/pkg/errors"
	"github.com/matzehuels/aoc2018/pkg/puzzle"
)

// Puzzle is the registered day 3 solver.
var Puzzle = &puzzle.Puzzle{
	Day:   3,
	Title: "No Matter How You Slice It",
	Solve: solve,
}

const claimFormat = "#<id> @ <left>,<top>: <width>x<height>"

var claimRe = regexp.MustCompile(`^#(\d+) @ (\d+),(\d+): (\d+)x(\d+)$`)

// Claim is a rectangle of fabric, in square inches from the top left edge.
type Claim struct {
	ID     int
	Left   int
	Top    int
	Width  int
	Height int
}

// ParseClaim parses "#<id> @ <left>,<top>: <width>x<height>",
// for example "#123 @ 3,2: 5x4". Surrounding whitespace is ignored.
func ParseClaim(s string) (Claim, error) {
	m := claimRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Claim{}, errors.New(errors.ErrCodeMalformedLine, "%q does not match %q", s, claimFormat)
	}

	var nums [5]int
	for i := range nums {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Claim{}, errors.Wrap(errors.ErrCodeMalformedLine, err, "%q", s)
		}
		nums[i] = n
	}
	return Claim{ID: nums[0], Left: nums[1], Top: nums[2], Width: nums[3], Height: nums[4]}, nil
}

// Intersects reports whether c and o share at least one square inch.
func (c Claim) Intersects(o Claim) bool {
	return c.Left < o.Left+o.Width && o.Left < c.Left+c.Width &&
		c.Top < o.Top+o.Height && o.Top < c.Top+c.Height
}

type point struct{ x, y int }

// coverage counts how many claims cover each square inch.
func coverage(claims []Claim) map[point]int {
	grid := make(map[point]int)
	for _, c := range claims {
		for y := c.Top; y < c.Top+c.Height; y++ {
			for x := c.Left; x < c.Left+c.Width; x++ {
				grid[point{x, y}]++
			}
		}
	}
	return grid
}

// Overlapping returns the number of square inches within two or more claims.
func Overlapping(claims []Claim) int {
	var n int
	for _, count := range coverage(claims) {
		if count >= 2 {
			n++
		}
	}
	return n
}

// Intact returns the ID of the only claim that overlaps no other claim.
// It fails unless exactly one such claim exists.
func Intact(claims []Claim) (int, error) {
	grid := coverage(claims)

	var ids []int
	for _, c := range claims {
		if alone(c, grid) {
			ids = append(ids, c.ID)
		}
	}
	if len(ids) != 1 {
		return 0, errors.New(errors.ErrCodeNoSolution, "non-overlapping claims not exactly 1: %d", len(ids))
	}
	return ids[0], nil
}

func alone(c Claim, grid map[point]int) bool {
	for y := c.Top; y < c.Top+c.Height; y++ {
		for x := c.Left; x < c.Left+c.Width; x++ {
			if grid[point{x, y}] > 1 {
				return false
			}
		}
	}
	return true
}

// ParseClaims parses one claim per line.
func ParseClaims(lines []string) ([]Claim, error) {
	claims := make([]Claim, 0, len(lines))
	for i, line := range lines {
		c, err := ParseClaim(line)
		if err != nil {
			return nil, errors.Malformed(i, line, claimFormat)
		}
		claims = append(claims, c)
	}
	return claims, nil
}

func solve(ctx context.Context, lines []string, _ puzzle.Options) (puzzle.Answer, error) {
	claims, err := ParseClaims(lines)
	if err != nil {
		return puzzle.Answer{}, err
	}
	logger := puzzle.Logger(ctx)
	logger.Debug("Parsed claims", "count", len(claims))

	overlap := Overlapping(claims)
	logger.Debug("Counted overlap", "squares", overlap)

	id, err := Intact(claims)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: strconv.Itoa(overlap), Part2: strconv.Itoa(id)}, nil
}
