package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"pystyle/internal/diagfmt"
)

const configFileName = "pystyle.toml"

type projectConfig struct {
	Output outputConfig `toml:"output"`
	Run    runConfig    `toml:"run"`
}

type outputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
	UI     string `toml:"ui"`
}

type runConfig struct {
	Jobs           int  `toml:"jobs"`
	MaxDiagnostics int  `toml:"max_diagnostics"`
	ExitCode       bool `toml:"exit_code"`
}

// loadedConfig remembers which keys the file actually set.
type loadedConfig struct {
	Path   string
	Config projectConfig
	meta   toml.MetaData
}

func (c *loadedConfig) defined(key ...string) bool {
	return c != nil && c.meta.IsDefined(key...)
}

func findConfigFile(startDir string) (string, bool, error) {
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

func loadProjectConfig(path string) (*loadedConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("output", "format") {
		if _, err := diagfmt.ParseFormat(cfg.Output.Format); err != nil {
			return nil, fmt.Errorf("%s: [output].format: %w", path, err)
		}
	}
	if meta.IsDefined("output", "color") {
		if _, err := readColorMode(cfg.Output.Color); err != nil {
			return nil, fmt.Errorf("%s: [output].color: %w", path, err)
		}
	}
	if meta.IsDefined("output", "ui") {
		if _, err := readUIMode(cfg.Output.UI); err != nil {
			return nil, fmt.Errorf("%s: [output].ui: %w", path, err)
		}
	}
	if cfg.Run.Jobs < 0 || cfg.Run.MaxDiagnostics < 0 {
		return nil, fmt.Errorf("%s: [run] values must not be negative", path)
	}
	return &loadedConfig{Path: path, Config: cfg, meta: meta}, nil
}

// discoverConfig loads --config if given, otherwise the nearest pystyle.toml.
// A missing file is not an error.
func discoverConfig(cmd *cobra.Command) (*loadedConfig, error) {
	explicit, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if explicit != "" {
		return loadProjectConfig(explicit)
	}
	path, ok, err := findConfigFile(".")
	if err != nil || !ok {
		return nil, err
	}
	return loadProjectConfig(path)
}

// checkSettings are the effective options of a check run.
type checkSettings struct {
	format         diagfmt.Format
	color          colorMode
	ui             uiMode
	jobs           int
	maxDiagnostics int
	exitCode       bool
	timings        bool
}

// resolveSettings merges defaults, the config file and flags; flags that were
// set explicitly win over the file.
func resolveSettings(cmd *cobra.Command, cfg *loadedConfig) (checkSettings, error) {
	flags := cmd.Flags()
	var s checkSettings

	formatName, _ := flags.GetString("format")
	if !flags.Changed("format") && cfg.defined("output", "format") {
		formatName = cfg.Config.Output.Format
	}
	format, err := diagfmt.ParseFormat(formatName)
	if err != nil {
		return s, err
	}
	s.format = format

	colorName, _ := flags.GetString("color")
	if !flags.Changed("color") && cfg.defined("output", "color") {
		colorName = cfg.Config.Output.Color
	}
	if s.color, err = readColorMode(colorName); err != nil {
		return s, err
	}

	uiName, _ := flags.GetString("ui")
	if !flags.Changed("ui") && cfg.defined("output", "ui") {
		uiName = cfg.Config.Output.UI
	}
	if s.ui, err = readUIMode(uiName); err != nil {
		return s, err
	}

	s.jobs, _ = flags.GetInt("jobs")
	if !flags.Changed("jobs") && cfg.defined("run", "jobs") {
		s.jobs = cfg.Config.Run.Jobs
	}
	if s.jobs < 0 {
		return s, fmt.Errorf("--jobs must not be negative, got %d", s.jobs)
	}

	s.maxDiagnostics, _ = flags.GetInt("max-diagnostics")
	if !flags.Changed("max-diagnostics") && cfg.defined("run", "max_diagnostics") {
		s.maxDiagnostics = cfg.Config.Run.MaxDiagnostics
	}
	if s.maxDiagnostics < 0 {
		return s, fmt.Errorf("--max-diagnostics must not be negative, got %d", s.maxDiagnostics)
	}

	s.exitCode, _ = flags.GetBool("exit-code")
	if !flags.Changed("exit-code") && cfg.defined("run", "exit_code") {
		s.exitCode = cfg.Config.Run.ExitCode
	}

	s.timings, _ = flags.GetBool("timings")
	return s, nil
}
