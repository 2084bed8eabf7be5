package sink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/mwehrli/flowsankey/pkg/render/sankey"
)

// HTMLOptions configures the HTML sink.
type HTMLOptions struct {
	Width  int // diagram width in pixels
	Height int // diagram height in pixels
}

// Default diagram dimensions.
const (
	DefaultWidth  = 1400
	DefaultHeight = 800
)

// plotlyCDN is the charting library loaded by the generated document. The
// diagram layout itself is computed by the library; the document only carries
// the bundle data.
const plotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

const htmlHeader = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>%s</title>
  <script src="%s"></script>
  <style>
    body { margin: 0; font-family: -apple-system, "Segoe UI", sans-serif; }
    #diagram { width: %dpx; height: %dpx; margin: 0 auto; }
  </style>
</head>
<body>
<div id="diagram"></div>
`

const htmlScript = `<script>
  const bundle = %s;
  Plotly.newPlot("diagram", [{
    type: "sankey",
    arrangement: "snap",
    node: {
      pad: 50,
      thickness: 20,
      line: { color: "black", width: 0.5 },
      label: bundle.labels,
      color: bundle.colors,
      customdata: bundle.node_hover,
      hovertemplate: "%%{customdata}<extra></extra>"
    },
    link: {
      source: bundle.links.map(l => l.source),
      target: bundle.links.map(l => l.target),
      value: bundle.links.map(l => l.value),
      color: "rgba(0,0,0,0.2)",
      customdata: bundle.link_hover,
      hovertemplate: "%%{customdata}<extra></extra>"
    }
  }], {
    title: { text: bundle.title, x: 0.5, xanchor: "center", font: { size: 24 } },
    font: { size: 10 },
    width: %d,
    height: %d
  });
</script>
</body>
</html>
`

// RenderHTML renders the bundle as a single self-contained HTML document.
// The document embeds the bundle as JSON and delegates the sankey layout to
// the charting library loaded from a CDN; hover summaries are converted to
// HTML with the headline emphasized. An empty bundle renders an empty
// diagram without error.
func RenderHTML(b sankey.Bundle, opts HTMLOptions) ([]byte, error) {
	if opts.Width == 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height == 0 {
		opts.Height = DefaultHeight
	}

	title := b.Title
	if title == "" {
		title = "Flow Diagram"
	}

	embedded := b
	embedded.Title = title
	embedded.NodeHover = hoverToHTML(b.NodeHover, true)
	embedded.LinkHover = hoverToHTML(b.LinkHover, false)

	data, err := marshalForScript(embedded)
	if err != nil {
		return nil, fmt.Errorf("embed bundle: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, htmlHeader, html.EscapeString(title), plotlyCDN, opts.Width, opts.Height)
	fmt.Fprintf(&buf, htmlScript, data, opts.Width, opts.Height)
	return buf.Bytes(), nil
}

// hoverToHTML converts plain-text hover summaries to HTML: escaped, newlines
// as <br>, and optionally the first line wrapped in <b>.
func hoverToHTML(summaries []string, boldHeadline bool) []string {
	out := make([]string, len(summaries))
	for i, s := range summaries {
		lines := strings.Split(html.EscapeString(s), "\n")
		if boldHeadline && len(lines) > 0 && lines[0] != "" {
			lines[0] = "<b>" + lines[0] + "</b>"
		}
		out[i] = strings.Join(lines, "<br>")
	}
	return out
}

// marshalForScript serializes the bundle for embedding inside a <script>
// element. The encoder's HTML escaping keeps "</script>" out of the payload.
func marshalForScript(b sankey.Bundle) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(b); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
