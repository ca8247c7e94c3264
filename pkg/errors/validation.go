package errors

import (
	"strconv"
	"strings"
	"unicode"
)

// MaxDay is the last day of an Advent of Code calendar.
const MaxDay = 25

// ParseDay parses a day argument such as "7" or "07".
//
// Validation rules:
//   - Must be a single base-10 integer (no signs, spaces, or suffixes)
//   - Must fall within 1..MaxDay
func ParseDay(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, New(ErrCodeInvalidDay, "day must be supplied as a single integer")
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return 0, New(ErrCodeInvalidDay, "day must be supplied as a single integer")
		}
	}

	day, err := strconv.Atoi(s)
	if err != nil {
		return 0, Wrap(ErrCodeInvalidDay, err, "day must be supplied as a single integer")
	}
	if day < 1 || day > MaxDay {
		return 0, New(ErrCodeInvalidDay, "day %d out of range (1-%d)", day, MaxDay)
	}
	return day, nil
}

// ValidateWorkers checks the parameters of a worker simulation.
func ValidateWorkers(count, baseDuration int) error {
	if count < 1 {
		return New(ErrCodeInvalidConfig, "worker count must be at least 1, got %d", count)
	}
	if baseDuration < 0 {
		return New(ErrCodeInvalidConfig, "base duration cannot be negative, got %d", baseDuration)
	}
	return nil
}
