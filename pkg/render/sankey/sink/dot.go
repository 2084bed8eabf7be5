package sink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/mwehrli/flowsankey/pkg/render/sankey"
)

// ToDOT converts a bundle to Graphviz DOT format as a left-to-right
// node-link diagram. The resulting DOT string can be rendered with
// [RenderSVG] or [RenderPNG], or fed to any Graphviz tool.
//
// Nodes keep their palette colors; edges are labeled with their flow value
// and their hover summary is attached as a tooltip.
func ToDOT(b sankey.Bundle) string {
	var buf bytes.Buffer
	buf.WriteString("digraph flows {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for i, label := range b.Labels {
		attrs := []string{
			fmt.Sprintf("label=%q", label),
			fmt.Sprintf("fillcolor=%q", b.Colors[i]),
			fmt.Sprintf("tooltip=%q", b.NodeHover[i]),
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", i, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i, l := range b.Links {
		attrs := []string{
			fmt.Sprintf("label=%q", trimZeros(l.Value)),
			fmt.Sprintf("tooltip=%q", b.LinkHover[i]),
		}
		fmt.Fprintf(&buf, "  n%d -> n%d [%s];\n", l.Source, l.Target, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// trimZeros formats a flow value without trailing fraction zeros.
func trimZeros(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// RenderSVG renders the bundle's DOT form to SVG using Graphviz.
func RenderSVG(b sankey.Bundle) ([]byte, error) {
	return renderDOT(b, graphviz.SVG)
}

// RenderPNG renders the bundle's DOT form to PNG using Graphviz.
func RenderPNG(b sankey.Bundle) ([]byte, error) {
	return renderDOT(b, graphviz.PNG)
}

func renderDOT(b sankey.Bundle, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(ToDOT(b)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
