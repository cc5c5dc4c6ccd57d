// Package theme maps highlight categories to terminal styles. Themes
// are validated at load time so rendering never has to handle a bad
// style.
package theme

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"

	"github.com/atisharma/beautifhy/internal/highlight"
)

// Theme resolves a display style per highlight category.
type Theme struct {
	name   string
	styles map[highlight.Category]*color.Color
}

// Name returns the theme's registered or file name.
func (t *Theme) Name() string {
	return t.name
}

// Style returns the color for a category, or nil for plain output. The
// signature matches highlight.StyleFunc.
func (t *Theme) Style(cat highlight.Category) *color.Color {
	if t == nil {
		return nil
	}
	return t.styles[cat]
}

// Default is the built-in color theme.
func Default() *Theme {
	return &Theme{
		name: "default",
		styles: map[highlight.Category]*color.Color{
			highlight.CatPunctuation:    color.New(color.Faint),
			highlight.CatReaderMacro:    color.New(color.FgMagenta),
			highlight.CatSpecialForm:    color.New(color.FgCyan, color.Bold),
			highlight.CatDefinitionName: color.New(color.FgYellow, color.Bold),
			highlight.CatString:         color.New(color.FgGreen),
			highlight.CatDocstring:      color.New(color.FgGreen, color.Italic),
			highlight.CatNumber:         color.New(color.FgBlue),
			highlight.CatKeywordLiteral: color.New(color.FgRed),
			highlight.CatComment:        color.New(color.Faint, color.Italic),
		},
	}
}

// Mono is the built-in colorless theme: structure through weight only.
func Mono() *Theme {
	return &Theme{
		name: "mono",
		styles: map[highlight.Category]*color.Color{
			highlight.CatSpecialForm:    color.New(color.Bold),
			highlight.CatDefinitionName: color.New(color.Bold),
			highlight.CatComment:        color.New(color.Faint),
			highlight.CatDocstring:      color.New(color.Faint),
		},
	}
}

// ByName resolves a built-in theme.
func ByName(name string) (*Theme, bool) {
	switch name {
	case "", "default":
		return Default(), true
	case "mono":
		return Mono(), true
	default:
		return nil, false
	}
}

// styleFile is the TOML shape: a [styles] table of category name to a
// comma-separated attribute list, e.g. string = "green,bold".
type styleFile struct {
	Styles map[string]string `toml:"styles"`
}

// Load reads a theme from a TOML file. Unknown categories or attributes
// are load-time errors.
func Load(path string) (*Theme, error) {
	var file styleFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("styles") {
		return nil, fmt.Errorf("%s: missing [styles] table", path)
	}
	t, err := FromConfig(file.Styles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.name = path
	return t, nil
}

// FromConfig builds a theme over the default, replacing the categories
// named in the config.
func FromConfig(styles map[string]string) (*Theme, error) {
	t := Default()
	t.name = "custom"
	for name, attrList := range styles {
		cat, ok := highlight.ParseCategory(name)
		if !ok {
			return nil, fmt.Errorf("unknown style category %q", name)
		}
		c, err := parseStyle(attrList)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
		if c == nil {
			delete(t.styles, cat)
		} else {
			t.styles[cat] = c
		}
	}
	return t, nil
}

var attributes = map[string]color.Attribute{
	"black":      color.FgBlack,
	"red":        color.FgRed,
	"green":      color.FgGreen,
	"yellow":     color.FgYellow,
	"blue":       color.FgBlue,
	"magenta":    color.FgMagenta,
	"cyan":       color.FgCyan,
	"white":      color.FgWhite,
	"hi-black":   color.FgHiBlack,
	"hi-red":     color.FgHiRed,
	"hi-green":   color.FgHiGreen,
	"hi-yellow":  color.FgHiYellow,
	"hi-blue":    color.FgHiBlue,
	"hi-magenta": color.FgHiMagenta,
	"hi-cyan":    color.FgHiCyan,
	"hi-white":   color.FgHiWhite,
	"bold":       color.Bold,
	"faint":      color.Faint,
	"italic":     color.Italic,
	"underline":  color.Underline,
}

// parseStyle builds a color from a comma-separated attribute list. The
// empty string and "none" mean unstyled.
func parseStyle(list string) (*color.Color, error) {
	list = strings.TrimSpace(list)
	if list == "" || list == "none" {
		return nil, nil
	}
	var attrs []color.Attribute
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		attr, ok := attributes[part]
		if !ok {
			return nil, fmt.Errorf("unknown attribute %q", part)
		}
		attrs = append(attrs, attr)
	}
	return color.New(attrs...), nil
}
