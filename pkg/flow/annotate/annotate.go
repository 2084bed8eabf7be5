// Package annotate builds the human-readable hover summaries attached to
// rendered nodes and links.
//
// Summaries are aggregated over the original, unfiltered link set so that
// flows to and from pruned leaf nodes are still represented in text form on
// the surviving nodes. Output text is plain; sinks are responsible for any
// markup of their own.
package annotate

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/mwehrli/flowsankey/pkg/flow"
	"github.com/mwehrli/flowsankey/pkg/flow/transform"
)

// =============================================================================
// Format - Presentation Configuration
// =============================================================================

// Format controls how amounts and section labels are rendered. It is caller
// configuration, typically loaded from a theme file; nothing in it is
// hardcoded into the aggregation logic.
type Format struct {
	// Locale is a BCP 47 tag ("en", "pl", "de-CH") selecting digit grouping
	// and decimal separators for amounts.
	Locale string

	// Unit is appended after every formatted amount, e.g. "zł" or "EUR".
	// Empty means amounts are rendered bare.
	Unit string

	// Section and field labels.
	Incoming string // heading of the itemized inflow list
	Outgoing string // heading of the itemized outflow list
	From     string // link summary source field
	To       string // link summary target field
	Amount   string // link summary value field
}

// DefaultFormat returns the English, unitless format.
func DefaultFormat() Format {
	return Format{
		Locale:   "en",
		Incoming: "Inflows",
		Outgoing: "Outflows",
		From:     "From",
		To:       "To",
		Amount:   "Amount",
	}
}

// amount renders v with two decimals, locale digit grouping, and the
// configured unit suffix.
func (f Format) amount(v float64) string {
	p := message.NewPrinter(language.Make(f.Locale))
	s := p.Sprint(number.Decimal(v, number.Scale(2)))
	if f.Unit == "" {
		return s
	}
	return s + " " + f.Unit
}

// =============================================================================
// Annotation
// =============================================================================

// Annotation holds the per-node and per-link hover summaries. NodeSummaries
// and Totals are parallel to the reduction's visible nodes, LinkSummaries to
// its filtered links.
type Annotation struct {
	NodeSummaries []string
	LinkSummaries []string

	// Totals is each visible node's display total: the larger of its summed
	// inflows and summed outflows. Using max avoids understating flow-through
	// nodes where one side is an undercount.
	Totals []float64
}

// Annotate reconstructs each visible node's full flow profile from the
// original resolved link triples and the original node labels, then formats
// the hover summaries. Itemized lists follow the original link order; a node
// with no inflows (or no outflows) omits that section entirely.
func Annotate(g *flow.Graph, res *flow.Resolved, red *transform.Reduction, f Format) *Annotation {
	ann := &Annotation{
		NodeSummaries: make([]string, len(red.Nodes)),
		LinkSummaries: make([]string, len(red.Links)),
		Totals:        make([]float64, len(red.Nodes)),
	}

	for v, node := range red.Nodes {
		orig := red.NewToOld[v]

		var incoming, outgoing []string
		var totalIn, totalOut float64
		for i := range res.Values {
			if res.Targets[i] == orig {
				incoming = append(incoming, fmt.Sprintf("  • %s: %s", g.Nodes[res.Sources[i]].Name, f.amount(res.Values[i])))
				totalIn += res.Values[i]
			}
			if res.Sources[i] == orig {
				outgoing = append(outgoing, fmt.Sprintf("  • %s: %s", g.Nodes[res.Targets[i]].Name, f.amount(res.Values[i])))
				totalOut += res.Values[i]
			}
		}

		total := max(totalIn, totalOut)
		ann.Totals[v] = total

		var b strings.Builder
		fmt.Fprintf(&b, "%s: %s", node.Name, f.amount(total))
		if len(incoming) > 0 {
			fmt.Fprintf(&b, "\n\n%s:\n%s", f.Incoming, strings.Join(incoming, "\n"))
		}
		if len(outgoing) > 0 {
			fmt.Fprintf(&b, "\n\n%s:\n%s", f.Outgoing, strings.Join(outgoing, "\n"))
		}
		ann.NodeSummaries[v] = b.String()
	}

	for i, l := range red.Links {
		ann.LinkSummaries[i] = fmt.Sprintf("%s: %s\n%s: %s\n%s: %s",
			f.From, red.Nodes[l.Source].Name,
			f.To, red.Nodes[l.Target].Name,
			f.Amount, f.amount(l.Value))
	}

	return ann
}
