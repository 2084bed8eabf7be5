package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwehrli/flowsankey/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file path (or base path for multiple formats)
	themePath string // TOML theme file
	noCache   bool
}

// renderCommand creates the render command for generating flow diagrams.
//
// Default settings:
//   - format: html (self-contained interactive document)
//   - leaf pruning: enabled (disable with --keep-leaves)
//   - caching: enabled (disable with --no-cache)
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var ropts renderOpts
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a flow diagram from a node/link document",
		Long: `Render a flow diagram from a node/link document.

The input is a JSON (or YAML) document with two collections: nodes, each
with an id and a name, and links, each with a source, a target, and a
non-negative value. Leaf nodes - pure sources and pure sinks - are hidden
from the diagram; their flows remain visible in the hover summaries of the
surviving nodes.

Links referencing unknown node ids are dropped with a warning. A document
where every node is a leaf renders an empty diagram.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if ropts.themePath != "" {
				if err := applyTheme(&opts, ropts.themePath); err != nil {
					return err
				}
			}
			return c.runRender(cmd.Context(), opts, ropts)
		},
	}

	cmd.Flags().StringVarP(&ropts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): html (default), json, dot, svg, png (comma-separated)")
	cmd.Flags().StringVar(&ropts.themePath, "theme", "", "TOML theme file (palette, labels, locale, unit)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "diagram title")
	cmd.Flags().BoolVar(&opts.KeepLeaves, "keep-leaves", false, "keep leaf nodes instead of pruning them")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "diagram width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "diagram height in pixels")
	cmd.Flags().BoolVar(&ropts.noCache, "no-cache", false, "disable artifact caching")

	return cmd
}

// runRender executes the pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, ropts renderOpts) error {
	opts.Logger = c.Logger

	runner, err := c.newRunner(ropts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	printInfo("%d nodes, %d links", result.Stats.NodeCount, result.Stats.LinkCount)
	if result.Stats.SkippedLinks > 0 {
		printWarning("skipped %d invalid link(s)", result.Stats.SkippedLinks)
	}
	printInfo("hid %d leaf node(s): %d leftmost, %d rightmost",
		result.Stats.HiddenNodes, result.Stats.Leftmost, result.Stats.Rightmost)
	if result.Stats.VisibleNodes == 0 {
		printWarning("all nodes are leaves; the diagram is empty")
	}

	base := basePath(ropts.output, opts.Input)
	for _, format := range opts.Formats {
		path := ropts.output
		if path == "" || len(opts.Formats) > 1 {
			path = base + "." + format
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}

	printSuccess("Rendered %d visible node(s), %d flow(s)",
		result.Stats.VisibleNodes, result.Analysis.Reduction.LinkCount())
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output ends in
// a known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
