package cli

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/aoc2018/pkg/puzzle"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// withRunID returns a child logger tagged with a fresh invocation ID so the
// lines of one run can be grepped out of a shared log.
func withRunID(l *log.Logger) *log.Logger {
	return l.With("run", uuid.NewString()[:8])
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered graph (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// withLogger returns a new context with the given logger attached. Solvers
// see the same logger through [puzzle.Logger].
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return puzzle.WithLogger(ctx, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	return puzzle.Logger(ctx)
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks reports solves and scheduling rounds through the context logger.
type logHooks struct {
	mu     sync.Mutex
	rounds int
	widest int
}

func newLogHooks() *logHooks { return &logHooks{} }

func (h *logHooks) OnSolveStart(ctx context.Context, day int, lines int) {
	h.mu.Lock()
	h.rounds, h.widest = 0, 0
	h.mu.Unlock()

	loggerFromContext(ctx).Debug("Solving", "day", day, "lines", lines)
}

func (h *logHooks) OnRound(_ context.Context, _ int, ready []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rounds++
	h.widest = max(h.widest, len(ready))
}

func (h *logHooks) OnSolveComplete(ctx context.Context, day int, d time.Duration, err error) {
	logger := loggerFromContext(ctx)
	if err != nil {
		logger.Error("Solve failed", "day", day, "err", err)
		return
	}

	h.mu.Lock()
	rounds, widest := h.rounds, h.widest
	h.mu.Unlock()

	if rounds > 0 {
		logger.Info("Solved", "day", day, "took", d.Round(time.Microsecond), "rounds", rounds, "widest", widest)
		return
	}
	logger.Info("Solved", "day", day, "took", d.Round(time.Microsecond))
}
