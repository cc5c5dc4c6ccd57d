package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atisharma/beautifhy/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "beautifhy",
	Short: "Hy source formatter and highlighter",
	Long:  `beautifhy formats Hy source into a canonical layout and renders it with syntax highlighting`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("config", "", "path to hyfmt.toml (default: search upward from the working directory)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the persistent --color flag against the stream the
// output goes to.
func useColor(cmd *cobra.Command, out *os.File) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch colorFlag {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(out)
	}
}
