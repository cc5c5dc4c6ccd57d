package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/atisharma/beautifhy/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive format-and-highlight loop",
	Long: `Repl reads forms interactively, waiting for delimiters to balance
before formatting and echoing each one. Nothing is evaluated.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().Int("width", 0, "maximum line width (default: config, then 80)")
	replCmd.Flags().String("theme", "", "theme: a built-in name (default|mono) or a TOML file path")
	replCmd.Flags().String("history", "", "history file (default: $BEAUTIFHY_HISTORY, then ~/.beautifhy_history)")
}

func runRepl(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return err
	}
	historyPath, err := cmd.Flags().GetString("history")
	if err != nil {
		return err
	}

	cfg, err := loadAppConfig(cmd)
	if err != nil {
		return err
	}
	if width <= 0 {
		width = cfg.Width
	}

	th, err := resolveTheme(cmd)
	if err != nil {
		return err
	}
	if !useColor(cmd, os.Stdout) {
		th = nil
	}

	return repl.Run(repl.Options{
		Width:       width,
		Rules:       cfg.Rules,
		Style:       th.Style,
		HistoryPath: historyPath,
	})
}
