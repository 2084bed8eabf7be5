// Package sankey assembles the rendering-ready bundle for flow diagrams.
//
// The bundle is the pipeline's output contract: ordered visible node labels,
// a parallel deterministic color assignment, the filtered reindexed links,
// and the per-node and per-link hover summaries. Any rendering backend can
// consume it; the sink subpackage ships an HTML sink, a Graphviz sink, and a
// JSON sink.
package sankey

import (
	"github.com/mwehrli/flowsankey/pkg/flow/annotate"
	"github.com/mwehrli/flowsankey/pkg/flow/transform"
)

// Link is a rendered flow. Source and Target index into Bundle.Labels.
type Link struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Value  float64 `json:"value"`
}

// Bundle is the serializable rendering contract. Labels, Colors, and
// NodeHover are parallel; Links and LinkHover are parallel. A bundle with
// zero nodes is valid and renders an empty diagram.
type Bundle struct {
	Title     string   `json:"title,omitempty"`
	Labels    []string `json:"labels"`
	Colors    []string `json:"colors"`
	Links     []Link   `json:"links"`
	NodeHover []string `json:"node_hover"`
	LinkHover []string `json:"link_hover"`
}

// Build assembles a bundle from a reduction and its annotation. Colors are
// assigned deterministically as palette[i mod len(palette)]; a nil or empty
// palette falls back to DefaultPalette.
func Build(red *transform.Reduction, ann *annotate.Annotation, palette []string, title string) Bundle {
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	b := Bundle{
		Title:     title,
		Labels:    red.Labels(),
		Colors:    make([]string, len(red.Nodes)),
		Links:     make([]Link, len(red.Links)),
		NodeHover: ann.NodeSummaries,
		LinkHover: ann.LinkSummaries,
	}
	if b.NodeHover == nil {
		b.NodeHover = []string{}
	}
	if b.LinkHover == nil {
		b.LinkHover = []string{}
	}

	for i := range red.Nodes {
		b.Colors[i] = palette[i%len(palette)]
	}
	for i, l := range red.Links {
		b.Links[i] = Link{Source: l.Source, Target: l.Target, Value: l.Value}
	}

	return b
}
