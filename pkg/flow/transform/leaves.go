// Package transform implements the pure graph transforms of the pipeline:
// leaf classification and visible-subgraph reduction.
//
// Both transforms operate on resolved link indices and never mutate their
// inputs. Running them twice on identical inputs yields identical outputs.
package transform

import "github.com/mwehrli/flowsankey/pkg/flow"

// Classification partitions the node indices of a graph into visible and
// hidden nodes.
//
// A node is hidden when it has no incoming links (a pure source, drawn at
// the leftmost edge of a sankey diagram) or no outgoing links (a pure sink,
// drawn at the rightmost edge). A node with no links at all falls into both
// sets and is hidden. A node that appears as both a target and a source
// stays visible regardless of flow volume.
type Classification struct {
	Hidden map[int]bool // node index → hidden

	// Leftmost and Rightmost are reporting counts for the two leaf
	// conditions. A node hidden for both reasons is counted in both.
	Leftmost  int
	Rightmost int
}

// HiddenCount returns the number of hidden nodes.
func (c *Classification) HiddenCount() int { return len(c.Hidden) }

// Classify determines which of the n nodes are leaf nodes based on the
// resolved link set. The two leaf conditions are computed independently:
// indices never appearing as a link target are leftmost, indices never
// appearing as a link source are rightmost, and hidden is their union.
func Classify(res *flow.Resolved, n int) *Classification {
	hasIncoming := make(map[int]bool, n)
	for _, t := range res.Targets {
		hasIncoming[t] = true
	}
	hasOutgoing := make(map[int]bool, n)
	for _, s := range res.Sources {
		hasOutgoing[s] = true
	}

	cls := &Classification{Hidden: make(map[int]bool)}
	for i := 0; i < n; i++ {
		leftmost := !hasIncoming[i]
		rightmost := !hasOutgoing[i]
		if leftmost {
			cls.Leftmost++
		}
		if rightmost {
			cls.Rightmost++
		}
		if leftmost || rightmost {
			cls.Hidden[i] = true
		}
	}
	return cls
}

// None returns a classification that hides nothing. It is used when leaf
// pruning is disabled so the reducer still runs with a consistent input.
func None() *Classification {
	return &Classification{Hidden: map[int]bool{}}
}
