// Package cli implements the aoc command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/aoc2018/pkg/buildinfo"
	"github.com/matzehuels/aoc2018/pkg/dag"
	"github.com/matzehuels/aoc2018/pkg/errors"
	"github.com/matzehuels/aoc2018/pkg/observability"
	"github.com/matzehuels/aoc2018/pkg/puzzle"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "aoc2018"

	// stdinPath selects standard input for --input.
	stdinPath = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
	verbose    bool
	workers    int
	base       int
	strategy   string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Solutions to Advent of Code 2018",
		Long:          `aoc solves Advent of Code 2018 puzzles. Each day reads its puzzle input line by line and prints the answers to both parts.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/"+appName+"/config.toml)")
	flags.IntVar(&c.workers, "workers", puzzle.DefaultWorkers, "simulated workers for day 7 part 2")
	flags.IntVar(&c.base, "base-duration", puzzle.DefaultBaseDuration, "fixed seconds added to every day 7 step")
	flags.StringVar(&c.strategy, "strategy", dag.Sequential.String(), "day 7 scheduling strategy: sequential or batch")

	// Register all subcommands
	root.AddCommand(c.runCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file, applies flag overrides and attaches a
// per-invocation logger to the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(c.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = c.verbose
	}
	if flags.Changed("workers") {
		cfg.Workers.Count = c.workers
	}
	if flags.Changed("base-duration") {
		cfg.Workers.BaseDuration = c.base
	}
	if flags.Changed("strategy") {
		cfg.Strategy = c.strategy
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.Config = cfg

	if cfg.Verbose {
		c.SetLogLevel(LogDebug)
	}

	logger := withRunID(c.Logger)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	hooks := newLogHooks()
	observability.SetSolveHooks(hooks)
	observability.SetScheduleHooks(hooks)

	logger.Debug("Loaded config", "workers", cfg.Workers.Count, "base", cfg.Workers.BaseDuration, "strategy", cfg.Strategy, "input_dir", cfg.InputDir)
	return nil
}

// options converts the resolved config into puzzle options.
func (c *CLI) options() (puzzle.Options, error) {
	strategy, err := dag.ParseStrategy(c.Config.Strategy)
	if err != nil {
		return puzzle.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "strategy")
	}
	return puzzle.Options{
		Workers:      c.Config.Workers.Count,
		BaseDuration: c.Config.Workers.BaseDuration,
		Strategy:     strategy,
	}, nil
}
