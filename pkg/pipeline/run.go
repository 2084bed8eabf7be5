package pipeline

import (
	"fmt"

	"github.com/mwehrli/flowsankey/pkg/flow"
	"github.com/mwehrli/flowsankey/pkg/flow/annotate"
	"github.com/mwehrli/flowsankey/pkg/flow/transform"
	"github.com/mwehrli/flowsankey/pkg/render/sankey"
	"github.com/mwehrli/flowsankey/pkg/render/sankey/sink"
)

// Analysis holds the derived artifacts of the pure pipeline stages. All
// fields are computed in a single pass and never mutated afterwards.
type Analysis struct {
	Resolved       *flow.Resolved
	Skipped        []flow.SkippedLink
	Classification *transform.Classification
	Reduction      *transform.Reduction
	Annotation     *annotate.Annotation
	Bundle         sankey.Bundle
}

// Analyze runs the pure stages over a validated graph: resolve, classify,
// reduce, annotate, and bundle assembly. With opts.KeepLeaves the classifier
// is bypassed and every node stays visible; the reducer still runs so the
// output contract is identical either way.
func Analyze(g *flow.Graph, opts Options) *Analysis {
	res, skipped := flow.Resolve(g)

	cls := transform.None()
	if !opts.KeepLeaves {
		cls = transform.Classify(res, g.NodeCount())
	}

	red := transform.Reduce(g, res, cls)
	ann := annotate.Annotate(g, res, red, opts.Format)

	return &Analysis{
		Resolved:       res,
		Skipped:        skipped,
		Classification: cls,
		Reduction:      red,
		Annotation:     ann,
		Bundle:         sankey.Build(red, ann, opts.Palette, opts.Title),
	}
}

// Render generates output artifacts in the requested formats.
func Render(b sankey.Bundle, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatHTML:
			data, err = sink.RenderHTML(b, sink.HTMLOptions{Width: opts.Width, Height: opts.Height})
		case FormatJSON:
			data, err = sink.RenderJSON(b)
		case FormatDOT:
			data = []byte(sink.ToDOT(b))
		case FormatSVG:
			data, err = sink.RenderSVG(b)
		case FormatPNG:
			data, err = sink.RenderPNG(b)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
