package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/atisharma/beautifhy/internal/diagfmt"
	"github.com/atisharma/beautifhy/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.hy|->",
	Short: "Tokenize a Hy source file",
	Long:  `Tokenize breaks a Hy source file into its tokens, leading trivia included. "-" reads stdin.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	var result *driver.TokenizeResult
	if args[0] == "-" {
		data, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return fmt.Errorf("tokenization failed: %w", readErr)
		}
		result = driver.TokenizeSource("<stdin>", data, maxDiagnostics)
	} else {
		result, err = driver.Tokenize(args[0], maxDiagnostics)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	if result.Bag.HasWarnings() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
