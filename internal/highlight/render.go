package highlight

import (
	"io"

	"github.com/fatih/color"
)

// StyleFunc resolves the display style for a category. A nil result
// leaves the span unstyled.
type StyleFunc func(Category) *color.Color

// Render writes src with ANSI styling applied per span. Gaps between
// spans (whitespace) pass through verbatim, so the output differs from
// the input only by escape sequences.
func Render(w io.Writer, src string, style StyleFunc) error {
	prev := 0
	for _, sp := range Tokenize(src) {
		if sp.Start > prev {
			if _, err := io.WriteString(w, src[prev:sp.Start]); err != nil {
				return err
			}
		}
		text := src[sp.Start:sp.End]
		c := style(sp.Cat)
		var err error
		if c == nil {
			_, err = io.WriteString(w, text)
		} else {
			_, err = io.WriteString(w, c.Sprint(text))
		}
		if err != nil {
			return err
		}
		prev = sp.End
	}
	if prev < len(src) {
		if _, err := io.WriteString(w, src[prev:]); err != nil {
			return err
		}
	}
	return nil
}
