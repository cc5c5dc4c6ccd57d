package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atisharma/beautifhy/internal/highlight"
)

func TestBuiltins(t *testing.T) {
	def, ok := ByName("default")
	if !ok || def.Name() != "default" {
		t.Fatalf("ByName(default) = %v, %t", def, ok)
	}
	if def.Style(highlight.CatString) == nil {
		t.Error("default theme leaves strings unstyled")
	}
	if def.Style(highlight.CatSymbol) != nil {
		t.Error("default theme styles plain symbols")
	}

	mono, ok := ByName("mono")
	if !ok {
		t.Fatal("mono theme missing")
	}
	if mono.Style(highlight.CatSpecialForm) == nil {
		t.Error("mono theme leaves special forms unstyled")
	}

	if _, ok := ByName("solarized"); ok {
		t.Error("unknown theme name resolved")
	}
}

func TestNilThemeIsPlain(t *testing.T) {
	var th *Theme
	if th.Style(highlight.CatString) != nil {
		t.Error("nil theme returned a style")
	}
}

func TestFromConfig(t *testing.T) {
	th, err := FromConfig(map[string]string{
		"string":  "hi-green,underline",
		"comment": "none",
	})
	if err != nil {
		t.Fatal(err)
	}
	if th.Style(highlight.CatString) == nil {
		t.Error("configured category unstyled")
	}
	if th.Style(highlight.CatComment) != nil {
		t.Error("none did not clear the style")
	}
	// Untouched categories keep the default.
	if th.Style(highlight.CatNumber) == nil {
		t.Error("default style lost for untouched category")
	}
}

func TestFromConfigRejectsUnknown(t *testing.T) {
	if _, err := FromConfig(map[string]string{"stringz": "green"}); err == nil {
		t.Error("unknown category accepted")
	}
	if _, err := FromConfig(map[string]string{"string": "chartreuse"}); err == nil {
		t.Error("unknown attribute accepted")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	data := "[styles]\nstring = \"yellow\"\nnumber = \"bold, blue\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if th.Style(highlight.CatNumber) == nil {
		t.Error("loaded style missing")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("width = 80\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("file without [styles] accepted")
	}
}
