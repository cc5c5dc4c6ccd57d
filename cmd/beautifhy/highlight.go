package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atisharma/beautifhy/internal/driver"
	"github.com/atisharma/beautifhy/internal/theme"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [flags] <path> [path...]",
	Short: "Render Hy source with syntax highlighting",
	Long:  `Highlight writes source to stdout with ANSI styling. Malformed files still render; highlighting never fails on bad input. "-" reads stdin.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHighlight,
}

func init() {
	highlightCmd.Flags().String("theme", "", "theme: a built-in name (default|mono) or a TOML file path")
}

func runHighlight(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	th, err := resolveTheme(cmd)
	if err != nil {
		return err
	}
	if !useColor(cmd, os.Stdout) {
		// Style(nil) on a nil theme yields plain output for every span.
		th = nil
	}

	return driver.HighlightPaths(cmd.Context(), os.Stdout, args, th.Style)
}

// resolveTheme picks the theme by precedence: --theme flag, [styles] in
// hyfmt.toml, built-in default.
func resolveTheme(cmd *cobra.Command) (*theme.Theme, error) {
	name, err := cmd.Flags().GetString("theme")
	if err != nil {
		return nil, err
	}
	if name == "" {
		cfg, err := loadAppConfig(cmd)
		if err != nil {
			return nil, err
		}
		return cfg.Theme, nil
	}
	if th, ok := theme.ByName(name); ok {
		return th, nil
	}
	if _, statErr := os.Stat(name); statErr == nil {
		return theme.Load(name)
	}
	return nil, fmt.Errorf("highlight: unknown theme %q", name)
}
