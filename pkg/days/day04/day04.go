// Package day04 solves "Repose Record": finding the sleepiest guard.
package day04

import (
	"context"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/aoc2018/pkg/errors"
	"github.com/matzehuels/aoc2018/pkg/puzzle"
)

// Puzzle is the registered day 4 solver.
var Puzzle = &puzzle.Puzzle{
	Day:   4,
	Title: "Repose Record",
	Solve: solve,
}

const (
	recordFormat = "[YYYY-MM-DD hh:mm] <event>"
	stampLayout  = "2006-01-02 15:04"
)

var (
	recordRe = regexp.MustCompile(`^\[(\d{4}-\d{2}-\d{2} \d{2}:\d{2})\] (.+)$`)
	shiftRe  = regexp.MustCompile(`^Guard #(\d+) begins shift$`)
)

// Action is what happened at a record's timestamp.
type Action int

const (
	BeginShift Action = iota
	FallAsleep
	WakeUp
)

// Record is one timestamped line of the guard log. Guard is only set for
// BeginShift records.
type Record struct {
	Time   time.Time
	Action Action
	Guard  int
}

// ParseRecord parses a single log line.
func ParseRecord(s string) (Record, error) {
	m := recordRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Record{}, errors.New(errors.ErrCodeMalformedLine, "%q does not match %q", s, recordFormat)
	}
	t, err := time.Parse(stampLayout, m[1])
	if err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeMalformedLine, err, "bad timestamp %q", m[1])
	}

	r := Record{Time: t}
	switch event := m[2]; event {
	case "falls asleep":
		r.Action = FallAsleep
	case "wakes up":
		r.Action = WakeUp
	default:
		g := shiftRe.FindStringSubmatch(event)
		if g == nil {
			return Record{}, errors.New(errors.ErrCodeMalformedLine, "unknown event %q", event)
		}
		id, err := strconv.Atoi(g[1])
		if err != nil {
			return Record{}, errors.Wrap(errors.ErrCodeMalformedLine, err, "bad guard id %q", g[1])
		}
		r.Action = BeginShift
		r.Guard = id
	}
	return r, nil
}

// ParseRecords parses every line and returns the records in time order.
// Log lines may appear in any order.
func ParseRecords(lines []string) ([]Record, error) {
	records := make([]Record, 0, len(lines))
	for i, line := range lines {
		r, err := ParseRecord(line)
		if err != nil {
			return nil, errors.Malformed(i, line, recordFormat)
		}
		records = append(records, r)
	}
	slices.SortStableFunc(records, func(a, b Record) int { return a.Time.Compare(b.Time) })
	return records, nil
}

// Minutes holds, per minute of the midnight hour, how many times a guard
// was asleep.
type Minutes [60]int

// Total returns the number of minutes slept.
func (m *Minutes) Total() int {
	var n int
	for _, c := range m {
		n += c
	}
	return n
}

// Peak returns the minute slept most often and its count. Ties go to the
// earliest minute.
func (m *Minutes) Peak() (minute, count int) {
	for i, c := range m {
		if c > count {
			minute, count = i, c
		}
	}
	return minute, count
}

// Tally replays time-ordered records into per-guard sleep minutes.
func Tally(records []Record) (map[int]*Minutes, error) {
	sleep := make(map[int]*Minutes)
	guard := -1
	asleep := -1

	for _, r := range records {
		switch r.Action {
		case BeginShift:
			if asleep >= 0 {
				return nil, errors.New(errors.ErrCodeInvalidInput, "guard #%d never woke up before %s", guard, r.Time.Format(stampLayout))
			}
			guard = r.Guard
			if sleep[guard] == nil {
				sleep[guard] = &Minutes{}
			}
		case FallAsleep:
			if guard < 0 || asleep >= 0 {
				return nil, errors.New(errors.ErrCodeInvalidInput, "unexpected sleep at %s", r.Time.Format(stampLayout))
			}
			asleep = r.Time.Minute()
		case WakeUp:
			if asleep < 0 {
				return nil, errors.New(errors.ErrCodeInvalidInput, "unexpected wake up at %s", r.Time.Format(stampLayout))
			}
			for m := asleep; m < r.Time.Minute(); m++ {
				sleep[guard][m]++
			}
			asleep = -1
		}
	}
	if asleep >= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "guard #%d is still asleep at end of log", guard)
	}
	return sleep, nil
}

// MostAsleep picks the guard with the most total minutes asleep and
// returns that guard's ID multiplied by their sleepiest minute.
func MostAsleep(sleep map[int]*Minutes) (int, error) {
	return pick(sleep, func(m *Minutes) int { return m.Total() })
}

// MostFrequent picks the guard most frequently asleep on the same minute
// and returns that guard's ID multiplied by the minute.
func MostFrequent(sleep map[int]*Minutes) (int, error) {
	return pick(sleep, func(m *Minutes) int {
		_, count := m.Peak()
		return count
	})
}

// pick selects the guard with the highest score, breaking ties by lowest ID.
func pick(sleep map[int]*Minutes, score func(*Minutes) int) (int, error) {
	ids := make([]int, 0, len(sleep))
	for id := range sleep {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	best, bestScore := -1, 0
	for _, id := range ids {
		if s := score(sleep[id]); s > bestScore {
			best, bestScore = id, s
		}
	}
	if best < 0 {
		return 0, errors.New(errors.ErrCodeNoSolution, "no guard was ever asleep")
	}
	minute, _ := sleep[best].Peak()
	return best * minute, nil
}

func solve(ctx context.Context, lines []string, _ puzzle.Options) (puzzle.Answer, error) {
	records, err := ParseRecords(lines)
	if err != nil {
		return puzzle.Answer{}, err
	}
	sleep, err := Tally(records)
	if err != nil {
		return puzzle.Answer{}, err
	}
	puzzle.Logger(ctx).Debug("Tallied guard log", "records", len(records), "guards", len(sleep))

	p1, err := MostAsleep(sleep)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p2, err := MostFrequent(sleep)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: strconv.Itoa(p1), Part2: strconv.Itoa(p2)}, nil
}
