// Package observability provides hooks for timing and tracing puzzle solves.
//
// Solvers stay free of logging concerns. The CLI registers hooks at startup
// and [puzzle.Run] emits events around every solve.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSolveHooks(&mySolveHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Solve().OnSolveStart(ctx, day, len(lines))
//	// ... solve ...
//	observability.Solve().OnSolveComplete(ctx, day, duration, err)
//
// [puzzle.Run]: github.com/matzehuels/aoc2018/pkg/puzzle.Run
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Solve Hooks
// =============================================================================

// SolveHooks receives events from puzzle solving.
type SolveHooks interface {
	// OnSolveStart records that day is about to be solved with the given
	// number of input lines.
	OnSolveStart(ctx context.Context, day int, lines int)

	// OnSolveComplete records the outcome of a solve.
	OnSolveComplete(ctx context.Context, day int, duration time.Duration, err error)
}

// ScheduleHooks receives events from dependency scheduling.
type ScheduleHooks interface {
	// OnRound records one scheduling round and the nodes ready in it.
	OnRound(ctx context.Context, round int, ready []string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSolveHooks is a no-op implementation of SolveHooks.
type NoopSolveHooks struct{}

func (NoopSolveHooks) OnSolveStart(context.Context, int, int)                     {}
func (NoopSolveHooks) OnSolveComplete(context.Context, int, time.Duration, error) {}

// NoopScheduleHooks is a no-op implementation of ScheduleHooks.
type NoopScheduleHooks struct{}

func (NoopScheduleHooks) OnRound(context.Context, int, []string) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	solveHooks    SolveHooks    = NoopSolveHooks{}
	scheduleHooks ScheduleHooks = NoopScheduleHooks{}
	hooksMu       sync.RWMutex
)

// SetSolveHooks registers custom solve hooks.
// This should be called once at application startup before any solve.
func SetSolveHooks(h SolveHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		solveHooks = h
	}
}

// SetScheduleHooks registers custom schedule hooks.
func SetScheduleHooks(h ScheduleHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		scheduleHooks = h
	}
}

// Solve returns the registered solve hooks.
func Solve() SolveHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return solveHooks
}

// Schedule returns the registered schedule hooks.
func Schedule() ScheduleHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return scheduleHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	solveHooks = NoopSolveHooks{}
	scheduleHooks = NoopScheduleHooks{}
}
