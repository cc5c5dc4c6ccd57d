// Package driver orchestrates the pipeline for the CLI: file discovery,
// lexing, parsing, rendering, caching and parallelism live here so the
// commands stay thin.
package driver

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/atisharma/beautifhy/internal/diag"
	"github.com/atisharma/beautifhy/internal/format"
	"github.com/atisharma/beautifhy/internal/lexer"
	"github.com/atisharma/beautifhy/internal/parser"
	"github.com/atisharma/beautifhy/internal/rules"
	"github.com/atisharma/beautifhy/internal/source"
)

// SourceExt is the file extension the walkers collect.
const SourceExt = ".hy"

// FormatOptions configures a formatting run.
type FormatOptions struct {
	// Check reports whether files would change without touching them.
	Check bool
	// Write rewrites changed files in place.
	Write bool
	// Stdout returns formatted content in the results instead of writing.
	Stdout bool
	// Width is the maximum line width; format.Options' default when zero.
	Width int
	// Rules overrides the built-in layout rule table.
	Rules *rules.Table
	// Jobs caps formatting parallelism; GOMAXPROCS when zero.
	Jobs int
	// NoCache disables the formatted-output disk cache.
	NoCache bool
	// MaxDiagnostics caps diagnostics per file; 256 when zero.
	MaxDiagnostics int
}

func (o FormatOptions) maxDiag() int {
	if o.MaxDiagnostics <= 0 {
		return 256
	}
	return o.MaxDiagnostics
}

func (o FormatOptions) formatOptions() format.Options {
	return format.Options{Width: o.Width, Rules: o.Rules}
}

// FormatResult captures the outcome for a single file. On a parse
// failure Diags holds everything the pipeline reported and FileSet
// resolves their spans, so renderers can show more than Err's one line.
type FormatResult struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte
	Diags     []diag.Diagnostic
	FileSet   *source.FileSet
}

// FormatPaths formats the given files or directories, collecting SourceExt
// files recursively and in sorted order. The path "-" reads stdin and
// implies Stdout for that entry. Files format in parallel; results come
// back in input order. A parse failure lands in the result's Err as a
// *parser.ParseError rather than aborting the run.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, useStdin, err := collectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 && !useStdin {
		return nil, errors.New("no source files found")
	}

	var cache *DiskCache
	if !opts.NoCache {
		// A missing cache dir is not fatal; we just format everything.
		cache, _ = OpenDiskCache(cacheAppName)
	}

	results := make([]FormatResult, len(files))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(files), 1)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatSingleFile(path, opts, cache)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if useStdin {
		res, err := formatStdin(opts)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func formatSingleFile(path string, opts FormatOptions, cache *DiskCache) FormatResult {
	res := FormatResult{Path: path}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		res.Err = err
		return res
	}
	file := fileSet.Get(fileID)

	key := cacheKey(file.Hash, opts)
	var payload DiskPayload
	if hit, _ := cache.Get(key, &payload); hit {
		res.Changed = !payload.Clean
		res.Formatted = payload.Formatted
		if payload.Clean {
			res.Formatted = file.Content
		}
		return finishFormat(res, path, opts)
	}

	formatted, perr, diags := formatLoaded(fileSet, file, opts)
	if perr != nil {
		res.Err = perr
		res.Diags = diags
		res.FileSet = fileSet
		return res
	}

	res.Changed = !bytes.Equal(file.Content, formatted)
	res.Formatted = formatted
	cache.Put(key, &DiskPayload{
		Schema:    diskCacheSchemaVersion,
		Clean:     !res.Changed,
		Formatted: formatted,
	})
	return finishFormat(res, path, opts)
}

// finishFormat applies the output mode: Check and Stdout leave the file
// alone, Write rewrites it preserving its mode bits.
func finishFormat(res FormatResult, path string, opts FormatOptions) FormatResult {
	if opts.Check || opts.Stdout {
		return res
	}
	if opts.Write && res.Changed {
		mode := os.FileMode(0o644)
		if info, err := os.Stat(path); err == nil {
			mode = info.Mode().Perm()
		}
		if err := os.WriteFile(path, res.Formatted, mode); err != nil {
			res.Err = err
		}
	}
	return res
}

func formatStdin(opts FormatOptions) (FormatResult, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return FormatResult{}, err
	}
	res := FormatResult{Path: "-"}
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual("<stdin>", data)
	formatted, perr, diags := formatLoaded(fileSet, fileSet.Get(fileID), opts)
	if perr != nil {
		res.Err = perr
		res.Diags = diags
		res.FileSet = fileSet
		return res, nil
	}
	res.Formatted = formatted
	res.Changed = !bytes.Equal(data, formatted)
	return res, nil
}

// FormatSource formats in-memory content under a virtual name. The repl
// goes through here.
func FormatSource(name string, content []byte, opts FormatOptions) ([]byte, *parser.ParseError) {
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual(name, content)
	formatted, perr, _ := formatLoaded(fileSet, fileSet.Get(fileID), opts)
	return formatted, perr
}

func formatLoaded(fileSet *source.FileSet, file *source.File, opts FormatOptions) ([]byte, *parser.ParseError, []diag.Diagnostic) {
	bag := diag.NewBag(opts.maxDiag())
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	result := parser.ParseDocument(fileSet, lx, parser.Options{Reporter: reporter})
	if result.Doc == nil {
		perr := parser.FirstError(bag, fileSet)
		if perr == nil {
			perr = &parser.ParseError{Kind: "unknown error", Line: 1, Col: 1}
		}
		bag.Sort()
		return nil, perr, bag.Items()
	}
	return format.Render(result.Doc, opts.formatOptions()), nil, nil
}

// collectSourceFiles expands paths into a deduplicated sorted file list.
// "-" anywhere in the input turns on stdin handling.
func collectSourceFiles(ctx context.Context, paths []string) (files []string, useStdin bool, err error) {
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		if p == "-" {
			useStdin = true
			continue
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, false, err
		}
		if !info.IsDir() {
			// Explicitly named files are taken regardless of extension.
			addFile(p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if filepath.Ext(path) == SourceExt {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, false, err
		}
	}

	sort.Strings(files)
	return files, useStdin, nil
}
