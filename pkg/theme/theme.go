// Package theme loads presentation configuration from TOML files.
//
// A theme supplies the presentation settings that are caller configuration
// rather than core logic: the color palette, the diagram title, and the hover
// text labels/locale/unit. Every field is optional; omitted fields fall back to
// the built-in defaults.
//
// Example:
//
//	title = "Budget 2025"
//
//	palette = ["#1f77b4", "#ff7f0e", "#2ca02c"]
//
//	[format]
//	locale   = "pl"
//	unit     = "zł"
//	incoming = "Wpływy"
//	outgoing = "Wypływy"
//	from     = "Z"
//	to       = "Do"
//	amount   = "Kwota"
package theme

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mwehrli/flowsankey/pkg/errors"
	"github.com/mwehrli/flowsankey/pkg/flow/annotate"
)

// Theme is the decoded theme file.
type Theme struct {
	Title   string   `toml:"title"`
	Palette []string `toml:"palette"`
	Format  Format   `toml:"format"`
}

// Format mirrors annotate.Format in TOML form.
type Format struct {
	Locale   string `toml:"locale"`
	Unit     string `toml:"unit"`
	Incoming string `toml:"incoming"`
	Outgoing string `toml:"outgoing"`
	From     string `toml:"from"`
	To       string `toml:"to"`
	Amount   string `toml:"amount"`
}

// Load reads and validates a theme file. The raw file bytes are returned
// alongside the theme so callers can content-hash them for cache keys.
func Load(path string) (Theme, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Theme{}, nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Theme{}, nil, err
	}

	t, err := Parse(data)
	if err != nil {
		return Theme{}, nil, err
	}
	return t, data, nil
}

// Parse decodes and validates theme TOML.
func Parse(data []byte) (Theme, error) {
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "decode theme")
	}

	for i, c := range t.Palette {
		if strings.TrimSpace(c) == "" {
			return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "palette entry %d is empty", i)
		}
	}

	return t, nil
}

// AnnotateFormat converts the theme's format section to an annotate.Format,
// filling omitted fields from the defaults.
func (t Theme) AnnotateFormat() annotate.Format {
	f := annotate.DefaultFormat()
	if t.Format.Locale != "" {
		f.Locale = t.Format.Locale
	}
	if t.Format.Unit != "" {
		f.Unit = t.Format.Unit
	}
	if t.Format.Incoming != "" {
		f.Incoming = t.Format.Incoming
	}
	if t.Format.Outgoing != "" {
		f.Outgoing = t.Format.Outgoing
	}
	if t.Format.From != "" {
		f.From = t.Format.From
	}
	if t.Format.To != "" {
		f.To = t.Format.To
	}
	if t.Format.Amount != "" {
		f.Amount = t.Format.Amount
	}
	return f
}
