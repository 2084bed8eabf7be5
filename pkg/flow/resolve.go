package flow

import "fmt"

// Resolved holds the link set of a graph with node ids replaced by 0-based
// positional indices. The three slices are parallel and preserve the input
// link order. Resolved data is immutable once built.
type Resolved struct {
	Sources []int     // link source indices, parallel to Targets and Values
	Targets []int     // link target indices
	Values  []float64 // link flow values
	Index   map[string]int
}

// LinkCount returns the number of resolved links.
func (r *Resolved) LinkCount() int { return len(r.Values) }

// SkippedLink records a link that referenced a node id absent from the node
// set. Such links are excluded from the resolved set but never abort the run.
type SkippedLink struct {
	Source  string  // source id as written in the input
	Target  string  // target id as written in the input
	Missing string  // the endpoint id that was not found
	Value   float64 // the flow value that was dropped
}

// Warning returns the log line for this skipped link, naming the missing
// endpoint.
func (s SkippedLink) Warning() string {
	return fmt.Sprintf("skipping link %s → %s: unknown node %q", s.Source, s.Target, s.Missing)
}

// Resolve maps every link's endpoint ids to node indices. Links whose source
// or target id is not in the node set are collected as SkippedLinks and left
// out of the result. When both endpoints are unknown the source is reported.
func Resolve(g *Graph) (*Resolved, []SkippedLink) {
	index := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		index[n.ID] = i
	}

	res := &Resolved{
		Sources: make([]int, 0, len(g.Links)),
		Targets: make([]int, 0, len(g.Links)),
		Values:  make([]float64, 0, len(g.Links)),
		Index:   index,
	}

	var skipped []SkippedLink
	for _, l := range g.Links {
		src, srcOK := index[l.Source]
		dst, dstOK := index[l.Target]
		if !srcOK || !dstOK {
			missing := l.Source
			if srcOK {
				missing = l.Target
			}
			skipped = append(skipped, SkippedLink{
				Source:  l.Source,
				Target:  l.Target,
				Missing: missing,
				Value:   l.Value,
			})
			continue
		}
		res.Sources = append(res.Sources, src)
		res.Targets = append(res.Targets, dst)
		res.Values = append(res.Values, l.Value)
	}

	return res, skipped
}
