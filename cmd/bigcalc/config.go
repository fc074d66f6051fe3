package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/govalues/bigint/internal/calc"
)

const configFileName = "bigcalc.toml"

// Config is the content of a bigcalc.toml file.
// Keys missing from the file keep their default values.
type Config struct {
	Precision int64  `toml:"precision"`
	Mode      string `toml:"mode"`
	Jobs      int64  `toml:"jobs"`
	Color     string `toml:"color"`
}

func defaultConfig() Config {
	return Config{
		Precision: -1,
		Mode:      "rat",
		Jobs:      0,
		Color:     "auto",
	}
}

// settings are the validated options every subcommand runs with.
type settings struct {
	precision int // negative means "num/den" output
	mode      calc.Mode
	jobs      int
	color     bool
}

// findConfig looks for bigcalc.toml in startDir and its parents.
func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig decodes the file at path over cfg.
func loadConfig(path string, cfg *Config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("precision") && cfg.Precision < 0 {
		return fmt.Errorf("%s: precision must not be negative, got %d", path, cfg.Precision)
	}
	if meta.IsDefined("jobs") && cfg.Jobs < 0 {
		return fmt.Errorf("%s: jobs must not be negative, got %d", path, cfg.Jobs)
	}
	return nil
}

// resolveConfig merges defaults, the config file and the flags explicitly
// set on the command line, in increasing order of priority.
func (a *app) resolveConfig(cmd *cobra.Command) (Config, string, error) {
	cfg := defaultConfig()

	path := a.configPath
	if path == "" {
		found, ok, err := findConfig(a.workDir)
		if err != nil {
			return Config{}, "", err
		}
		if ok {
			path = found
		}
	}
	if path != "" {
		if err := loadConfig(path, &cfg); err != nil {
			return Config{}, "", err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("precision") {
		if a.precision < 0 {
			return Config{}, "", fmt.Errorf("--precision must not be negative, got %d", a.precision)
		}
		cfg.Precision = int64(a.precision)
	}
	if flags.Changed("mode") {
		cfg.Mode = a.mode
	}
	if flags.Changed("jobs") {
		if a.jobs < 0 {
			return Config{}, "", fmt.Errorf("--jobs must not be negative, got %d", a.jobs)
		}
		cfg.Jobs = int64(a.jobs)
	}
	if flags.Changed("color") {
		cfg.Color = a.color
	}
	return cfg, path, nil
}

// setup resolves the settings, the logger and the error color before any
// subcommand runs.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, path, err := a.resolveConfig(cmd)
	if err != nil {
		return err
	}

	mode, err := calc.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	precision, err := safecast.Conv[int](cfg.Precision)
	if err != nil {
		return fmt.Errorf("precision %d: %w", cfg.Precision, err)
	}
	jobs, err := safecast.Conv[int](cfg.Jobs)
	if err != nil {
		return fmt.Errorf("jobs %d: %w", cfg.Jobs, err)
	}
	colored, err := colorEnabled(cfg.Color, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.settings = settings{
		precision: precision,
		mode:      mode,
		jobs:      jobs,
		color:     colored,
	}
	if colored {
		a.errColor.EnableColor()
	} else {
		a.errColor.DisableColor()
	}
	a.log = newLogger(cmd.ErrOrStderr(), a.verbose, colored)

	a.log.Debug().
		Str("config", path).
		Int("precision", precision).
		Stringer("mode", mode).
		Int("jobs", jobs).
		Bool("color", colored).
		Msg("settings resolved")
	return nil
}

// colorEnabled interprets the auto|on|off color mode for output written to w.
func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		f, ok := w.(*os.File)
		return ok && isTerminal(f), nil
	default:
		return false, fmt.Errorf("unsupported color mode %q (must be auto, on or off)", mode)
	}
}
