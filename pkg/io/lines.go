package io

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/aoc2018/pkg/errors"
)

// maxLineSize bounds a single input line. Puzzle inputs are far smaller, but
// day 5 ships its whole polymer on one line.
const maxLineSize = 1 << 20

// ReadLines decodes r into lines without their terminators.
//
// ReadLines returns an INVALID_INPUT error if a line is not valid UTF-8 or
// exceeds the maximum line size. ReadLines does not close r.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if !utf8.ValidString(line) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "line %d is not valid UTF-8", len(lines)+1)
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read line %d", len(lines)+1)
	}
	return lines, nil
}

// ImportLines reads the file at path with [ReadLines].
// A missing file is reported as FILE_NOT_FOUND.
func ImportLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadLines(f)
}

// Ints parses every line as a signed base-10 integer. A leading '+' is
// accepted. Surrounding whitespace is ignored.
func Ints(lines []string) ([]int, error) {
	nums := make([]int, 0, len(lines))
	for i, line := range lines {
		n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(line), "+"))
		if err != nil {
			return nil, errors.Malformed(i, line, "<integer>")
		}
		nums = append(nums, n)
	}
	return nums, nil
}
