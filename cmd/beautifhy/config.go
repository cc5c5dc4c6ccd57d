package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/atisharma/beautifhy/internal/rules"
	"github.com/atisharma/beautifhy/internal/theme"
)

// hyfmtConfig is the TOML shape of hyfmt.toml:
//
//	[format]
//	width = 100
//
//	[format.rules.my-macro]
//	inline-head-args = 1
//	body-indent = 2
//
//	[styles]
//	string = "green,bold"
type hyfmtConfig struct {
	Format formatConfig      `toml:"format"`
	Styles map[string]string `toml:"styles"`
}

type formatConfig struct {
	Width int                         `toml:"width"`
	Rules map[string]rules.RuleConfig `toml:"rules"`
}

// appConfig is the resolved configuration every command starts from.
type appConfig struct {
	Path  string // "" when no config file was found
	Width int
	Rules *rules.Table
	Theme *theme.Theme
}

// findHyfmtToml walks upward from startDir looking for hyfmt.toml.
func findHyfmtToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "hyfmt.toml")
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

// loadAppConfig resolves the config file (explicit --config first, then
// the upward search) and validates everything in it. Without a file the
// defaults apply: width 80, built-in rules, default theme.
func loadAppConfig(cmd *cobra.Command) (*appConfig, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path == "" {
		found, ok, err := findHyfmtToml(".")
		if err != nil {
			return nil, err
		}
		if ok {
			path = found
		}
	}
	return loadConfigFile(path)
}

// loadConfigFile validates and applies one hyfmt.toml; the empty path
// yields the defaults.
func loadConfigFile(path string) (*appConfig, error) {
	cfg := &appConfig{
		Width: 80,
		Rules: rules.Default(),
		Theme: theme.Default(),
	}
	if path == "" {
		return cfg, nil
	}

	var file hyfmtConfig
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	cfg.Path = path

	if meta.IsDefined("format", "width") {
		if file.Format.Width <= 0 {
			return nil, fmt.Errorf("%s: [format].width must be positive", path)
		}
		cfg.Width = file.Format.Width
	}
	if len(file.Format.Rules) > 0 {
		if err := cfg.Rules.Merge(file.Format.Rules); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if meta.IsDefined("styles") {
		th, err := theme.FromConfig(file.Styles)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		cfg.Theme = th
	}
	return cfg, nil
}
