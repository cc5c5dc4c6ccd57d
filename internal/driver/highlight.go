package driver

import (
	"context"
	"io"
	"os"

	"github.com/atisharma/beautifhy/internal/highlight"
	"github.com/atisharma/beautifhy/internal/source"
)

// HighlightPaths renders each collected file to w with ANSI styling.
// Highlighting is total, so malformed files still render; only I/O can
// fail. Multiple files are separated by a blank line.
func HighlightPaths(ctx context.Context, w io.Writer, paths []string, style highlight.StyleFunc) error {
	files, useStdin, err := collectSourceFiles(ctx, paths)
	if err != nil {
		return err
	}

	fileSet := source.NewFileSet()
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		fileID, err := fileSet.Load(path)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := highlight.Render(w, string(fileSet.Get(fileID).Content), style); err != nil {
			return err
		}
	}

	if useStdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		if len(files) > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		return highlight.Render(w, string(data), style)
	}
	return nil
}
