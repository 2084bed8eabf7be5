// Package pipeline provides the core rendering pipeline for flowsankey.
//
// The pipeline runs single-threaded in five stages:
//
//  1. Load: decode and validate the input document
//  2. Resolve: map link endpoint ids to node indices, dropping unknown ones
//  3. Classify + Reduce: hide leaf nodes and reindex the visible subgraph
//  4. Annotate: aggregate hover summaries over the unfiltered link set
//  5. Render: emit artifacts in the requested formats
//
// Stages 2–4 are pure functions over immutable inputs; running the pipeline
// twice on identical input yields identical artifacts. The Runner adds
// artifact caching on top.
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/mwehrli/flowsankey/pkg/cache"
	"github.com/mwehrli/flowsankey/pkg/errors"
	"github.com/mwehrli/flowsankey/pkg/flow/annotate"
	"github.com/mwehrli/flowsankey/pkg/render/sankey/sink"
)

// Format constants for output formats.
const (
	FormatHTML = "html"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatHTML: true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// DefaultTitle is used when neither the options nor a theme set one.
const DefaultTitle = "Flow Diagram"

// Options contains all configuration for the rendering pipeline.
type Options struct {
	// Input selection
	Input string `json:"input,omitempty"` // input document path

	// Transform options
	KeepLeaves bool `json:"keep_leaves,omitempty"` // disable leaf pruning

	// Presentation options
	Title   string          `json:"title,omitempty"`
	Palette []string        `json:"palette,omitempty"` // overrides the default palette
	Format  annotate.Format `json:"-"`                 // hover text formatting
	Width   int             `json:"width,omitempty"`
	Height  int             `json:"height,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`

	// Runtime options (not serialized)
	Logger    *log.Logger `json:"-"`
	ThemeHash string      `json:"-"` // content hash of the theme file, for cache keys

	validated bool
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: html, json, dot, svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatHTML}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Format == (annotate.Format{}) {
		o.Format = annotate.DefaultFormat()
	}
	if o.Width == 0 {
		o.Width = sink.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = sink.DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		Title:      o.Title,
		ThemeHash:  o.ThemeHash,
		KeepLeaves: o.KeepLeaves,
		Width:      o.Width,
		Height:     o.Height,
	}
}
