package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mwehrli/flowsankey/pkg/errors"
)

const sampleTheme = `
title = "Budget 2025"

palette = ["#1f77b4", "#ff7f0e"]

[format]
locale   = "pl"
unit     = "zł"
incoming = "Wpływy"
outgoing = "Wypływy"
from     = "Z"
to       = "Do"
amount   = "Kwota"
`

func TestParse(t *testing.T) {
	th, err := Parse([]byte(sampleTheme))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if th.Title != "Budget 2025" {
		t.Errorf("Title = %q, want %q", th.Title, "Budget 2025")
	}
	if len(th.Palette) != 2 {
		t.Errorf("len(Palette) = %d, want 2", len(th.Palette))
	}
	if th.Format.Unit != "zł" {
		t.Errorf("Format.Unit = %q, want %q", th.Format.Unit, "zł")
	}
}

func TestParse_InvalidTOML(t *testing.T) {
	_, err := Parse([]byte(`title = [unclosed`))
	if !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidTheme)
	}
}

func TestParse_EmptyPaletteEntry(t *testing.T) {
	_, err := Parse([]byte(`palette = ["#1f77b4", "  "]`))
	if !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidTheme)
	}
}

func TestAnnotateFormat_MergesDefaults(t *testing.T) {
	th, err := Parse([]byte("[format]\nunit = \"EUR\"\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	f := th.AnnotateFormat()
	if f.Unit != "EUR" {
		t.Errorf("Unit = %q, want %q", f.Unit, "EUR")
	}
	// Everything omitted stays at its default.
	if f.Locale != "en" || f.Incoming != "Inflows" || f.Amount != "Amount" {
		t.Errorf("defaults not preserved: %+v", f)
	}
}

func TestAnnotateFormat_FullOverride(t *testing.T) {
	th, err := Parse([]byte(sampleTheme))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	f := th.AnnotateFormat()
	if f.Locale != "pl" || f.Incoming != "Wpływy" || f.From != "Z" {
		t.Errorf("theme fields not applied: %+v", f)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(sampleTheme), 0644); err != nil {
		t.Fatal(err)
	}

	th, raw, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if th.Title != "Budget 2025" {
		t.Errorf("Title = %q, want %q", th.Title, "Budget 2025")
	}
	if string(raw) != sampleTheme {
		t.Error("Load() should return the raw file bytes for hashing")
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}
