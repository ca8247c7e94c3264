package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/aoc2018/pkg/puzzle"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestWithRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := withRunID(newLogger(&buf, log.InfoLevel))
	logger.Info("hello")

	if !strings.Contains(buf.String(), "run=") {
		t.Errorf("log line %q should carry a run id", buf.String())
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))

	time.Sleep(10 * time.Millisecond)
	prog.done("Rendered graph")

	if !strings.Contains(buf.String(), "Rendered graph (") {
		t.Errorf("progress output %q should contain message and duration", buf.String())
	}
}

func TestLoggerSharedWithSolvers(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(context.Background(), logger)
	if loggerFromContext(ctx) != logger {
		t.Error("loggerFromContext should return the attached logger")
	}
	if puzzle.Logger(ctx) != logger {
		t.Error("solvers should see the logger attached by the CLI")
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should return default logger when none set")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.InfoLevel))
	h := newLogHooks()

	h.OnSolveStart(ctx, 7, 3)
	h.OnRound(ctx, 1, []string{"A", "B"})
	h.OnRound(ctx, 2, []string{"C"})
	h.OnSolveComplete(ctx, 7, time.Millisecond, nil)

	out := buf.String()
	for _, want := range []string{"Solved", "day=7", "rounds=2", "widest=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("hook output %q should contain %q", out, want)
		}
	}

	// Counters reset per solve.
	buf.Reset()
	h.OnSolveStart(ctx, 1, 4)
	h.OnSolveComplete(ctx, 1, time.Millisecond, nil)
	if strings.Contains(buf.String(), "rounds=") {
		t.Errorf("hook output %q should not report rounds for a day without scheduling", buf.String())
	}

	buf.Reset()
	h.OnSolveComplete(ctx, 3, time.Millisecond, errors.New("boom"))
	if !strings.Contains(buf.String(), "Solve failed") || !strings.Contains(buf.String(), "boom") {
		t.Errorf("hook output %q should report the failure", buf.String())
	}
}
