// Package puzzle describes a daily solver and runs it.
//
// Each day lives in its own package under pkg/days and exports a [Puzzle]
// value. The CLI looks puzzles up by day number with [Find] and calls [Run],
// which wraps the solve with observability hooks and cancellation checks.
//
// Solvers receive already decoded input lines and return an [Answer]. Each
// line is matched after trimming surrounding whitespace. Solvers report
// malformed input with a MALFORMED_LINE error from pkg/errors and
// never print. Diagnostic output goes through the logger carried by the
// context (see [Logger]).
package puzzle
