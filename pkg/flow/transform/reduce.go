package transform

import "github.com/mwehrli/flowsankey/pkg/flow"

// Link is a filtered, reindexed flow between two visible nodes. Source and
// Target are indices into Reduction.Nodes.
type Link struct {
	Source int
	Target int
	Value  float64
}

// Reduction is the visible subgraph of a classified flow graph.
//
// Nodes keeps the original relative order. Links contains only flows whose
// endpoints are both visible, rewritten to the new dense index space, in the
// original link order. OldToNew and NewToOld are the two index mappings built
// once during reduction; annotation uses NewToOld to cross-reference the
// unfiltered link set without scanning.
type Reduction struct {
	Nodes    []flow.Node // visible nodes, original relative order
	Links    []Link      // reindexed links between visible nodes
	OldToNew map[int]int // original index → visible index (visible nodes only)
	NewToOld []int       // visible index → original index
}

// NodeCount returns the number of visible nodes.
func (r *Reduction) NodeCount() int { return len(r.Nodes) }

// LinkCount returns the number of filtered links.
func (r *Reduction) LinkCount() int { return len(r.Links) }

// Labels returns the display labels of the visible nodes.
func (r *Reduction) Labels() []string {
	labels := make([]string, len(r.Nodes))
	for i, n := range r.Nodes {
		labels[i] = n.Name
	}
	return labels
}

// Reduce builds the visible subgraph: nodes not hidden by cls, reindexed
// densely from 0, and the resolved links filtered to those whose endpoints
// are both visible. An input where every node is hidden yields empty Nodes
// and Links; that is a valid terminal state, not an error.
func Reduce(g *flow.Graph, res *flow.Resolved, cls *Classification) *Reduction {
	red := &Reduction{OldToNew: make(map[int]int)}

	for i, n := range g.Nodes {
		if cls.Hidden[i] {
			continue
		}
		red.OldToNew[i] = len(red.Nodes)
		red.NewToOld = append(red.NewToOld, i)
		red.Nodes = append(red.Nodes, n)
	}

	for i := range res.Values {
		src, dst := res.Sources[i], res.Targets[i]
		if cls.Hidden[src] || cls.Hidden[dst] {
			continue
		}
		red.Links = append(red.Links, Link{
			Source: red.OldToNew[src],
			Target: red.OldToNew[dst],
			Value:  res.Values[i],
		})
	}

	return red
}
