// Package sink renders a sankey bundle into output artifacts.
//
// Three backends are provided:
//   - RenderHTML: a self-contained interactive document (the default output)
//   - ToDOT / RenderSVG / RenderPNG: a node-link view of the reduced graph
//     through Graphviz
//   - RenderJSON: the raw bundle for external tools
package sink

import (
	"encoding/json"

	"github.com/mwehrli/flowsankey/pkg/render/sankey"
)

// RenderJSON exports the bundle as a pretty-printed JSON document. This is
// the data interchange format for external rendering backends: labels,
// colors, links, and hover text exactly as the pipeline produced them.
func RenderJSON(b sankey.Bundle) ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}
