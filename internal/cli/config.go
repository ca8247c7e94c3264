package cli

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/aoc2018/pkg/dag"
	"github.com/matzehuels/aoc2018/pkg/errors"
	"github.com/matzehuels/aoc2018/pkg/puzzle"
)

// Config is the on-disk configuration. Every field can be overridden by the
// matching command-line flag.
//
// Example config.toml:
//
//	input_dir = "~/aoc/2018"
//	verbose   = false
//	strategy  = "sequential"
//
//	[workers]
//	count         = 5
//	base_duration = 60
type Config struct {
	// InputDir holds puzzle inputs named dayNN.txt. Used when --input is
	// not given.
	InputDir string `toml:"input_dir"`
	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
	// Strategy is the day 7 scheduling strategy name.
	Strategy string `toml:"strategy"`
	// Workers configures the day 7 worker simulation.
	Workers WorkersConfig `toml:"workers"`
}

// WorkersConfig configures the simulated worker pool.
type WorkersConfig struct {
	Count        int `toml:"count"`
	BaseDuration int `toml:"base_duration"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Strategy: dag.Sequential.String(),
		Workers: WorkersConfig{
			Count:        puzzle.DefaultWorkers,
			BaseDuration: puzzle.DefaultBaseDuration,
		},
	}
}

// Validate checks that the configuration can drive a solve.
func (c Config) Validate() error {
	if err := errors.ValidateWorkers(c.Workers.Count, c.Workers.BaseDuration); err != nil {
		return err
	}
	if _, err := dag.ParseStrategy(c.Strategy); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "strategy")
	}
	return nil
}

// LoadConfig reads the config file at path on top of [DefaultConfig]. An
// empty path selects the default location, which may be absent. An explicit
// path must exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			if explicit {
				return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
			}
			return DefaultConfig(), nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.InputDir = expandHome(cfg.InputDir)
	return cfg, nil
}

// =============================================================================
// Paths
// =============================================================================

// configPath returns the config file using XDG standard
// (~/.config/aoc2018/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
