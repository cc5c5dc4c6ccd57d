package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atisharma/beautifhy/internal/diag"
	"github.com/atisharma/beautifhy/internal/driver"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] [path...]",
	Short: "Format Hy source files",
	Long:  `Fmt prints Hy source in canonical layout to stdout. Directories are searched recursively for .hy files; "-" reads stdin. Use -w to rewrite files in place, --check to only report files needing changes.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "rewrite changed files in place instead of printing to stdout")
	fmtCmd.Flags().Bool("check", false, "report files that would change without rewriting them")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Int("width", 0, "maximum line width (default: config, then 80)")
	fmtCmd.Flags().Int("jobs", 0, "formatting parallelism (default: number of CPUs)")
	fmtCmd.Flags().Bool("no-cache", false, "bypass the formatted-output cache")
	fmtCmd.Flags().Bool("clear-cache", false, "drop the formatted-output cache before running")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return err
	}

	if clearCache {
		if err := driver.ClearDiskCache(); err != nil {
			return fmt.Errorf("fmt: clearing cache: %w", err)
		}
		// Clearing alone is a valid invocation.
		if len(args) == 0 {
			return nil
		}
	}
	if len(args) == 0 {
		return fmt.Errorf("fmt: at least one path required")
	}

	if write && check {
		return fmt.Errorf("fmt: --write cannot be used with --check")
	}
	writeToStdout := !write && !check
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: stdout output only supports the text format")
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
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

	results, err := driver.FormatPaths(cmd.Context(), args, driver.FormatOptions{
		Check:          check,
		Write:          write,
		Stdout:         writeToStdout,
		Width:          width,
		Rules:          cfg.Rules,
		Jobs:           jobs,
		NoCache:        noCache,
		MaxDiagnostics: maxDiagnostics,
	})
	if err != nil {
		return err
	}

	var hasErrors, hasChanges bool

	switch outputFormat {
	case "text":
		if writeToStdout {
			renderFmtStdout(results, &hasErrors)
			if hasErrors {
				return fmt.Errorf("fmt: failed to format some files")
			}
			return nil
		}
		renderFmtText(results, check, quiet, &hasErrors, &hasChanges)
	case "json":
		if err := renderFmtJSON(results, check, &hasErrors, &hasChanges); err != nil {
			return err
		}
	default:
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

func renderFmtStdout(results []driver.FormatResult, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		os.Stdout.Write(res.Formatted)
	}
}

func renderFmtText(results []driver.FormatResult, check, quiet bool, hasErrors, hasChanges *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			if quiet && len(res.Diags) > 0 {
				fmt.Fprintln(os.Stderr, diag.FormatShortDiagnostics(res.Diags, res.FileSet, false))
			} else {
				fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			}
			continue
		}

		if check {
			if res.Changed {
				*hasChanges = true
				if !quiet {
					fmt.Fprintln(os.Stdout, res.Path)
				}
			}
			continue
		}

		if res.Changed && !quiet {
			fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
		}
	}
}

func renderFmtJSON(results []driver.FormatResult, check bool, hasErrors, hasChanges *bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
			*hasErrors = true
		}
		if res.Changed {
			*hasChanges = true
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
