// Package cli implements the flowsankey command-line interface.
//
// This package provides commands for rendering flow diagrams from node/link
// documents, inspecting the classification and hover summaries without
// rendering, and managing the artifact cache. The CLI is built using cobra
// with structured logging via the charmbracelet/log library.
//
// # Commands
//
//   - render: Prune leaf nodes and render a flow diagram (HTML, JSON, DOT, SVG, PNG)
//   - inspect: Report leaf classification and per-node flow summaries
//   - cache: Manage the rendered-artifact cache
//   - completion: Generate shell completion scripts
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mwehrli/flowsankey/pkg/buildinfo"
	"github.com/mwehrli/flowsankey/pkg/cache"
	"github.com/mwehrli/flowsankey/pkg/pipeline"
	"github.com/mwehrli/flowsankey/pkg/theme"
)

// appName is the application name used for directories and display.
const appName = "flowsankey"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Flowsankey renders flow diagrams from node/link documents",
		Long:         `Flowsankey reads a flow-graph document (nodes plus weighted directed links), prunes uninformative leaf nodes while keeping their flows in hover summaries, and renders the result as an interactive diagram.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner backed by the file cache, or the null
// cache when caching is disabled.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	if noCache {
		return pipeline.NewRunner(cache.NewNullCache(), nil, c.Logger), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(fc, nil, c.Logger), nil
}

// cacheDir resolves the artifact cache directory, honoring XDG_CACHE_HOME.
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// applyTheme loads a theme file into the options: title, palette, hover
// format, and the content hash used in cache keys. Flags already set on the
// options win over the theme.
func applyTheme(opts *pipeline.Options, path string) error {
	t, raw, err := theme.Load(path)
	if err != nil {
		return err
	}
	if opts.Title == "" {
		opts.Title = t.Title
	}
	if len(opts.Palette) == 0 {
		opts.Palette = t.Palette
	}
	opts.Format = t.AnnotateFormat()
	opts.ThemeHash = cache.Hash(raw)
	return nil
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["html"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatHTML}
	}
	return strings.Split(s, ",")
}
