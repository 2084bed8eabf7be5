package flow

import (
	"math"

	"github.com/mwehrli/flowsankey/pkg/errors"
)

// =============================================================================
// Graph - Flow Graph Serialization
// =============================================================================

// Graph is the canonical serialization format for flow graphs.
// It decodes from JSON or YAML documents with two top-level collections.
// Unknown extra fields are ignored; there is no schema versioning.
//
// Node and link order is insertion order from the input document and is
// preserved throughout the pipeline for deterministic index assignment.
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Links []Link `json:"links" yaml:"links"`
}

// Node is a flow endpoint with a stable identifier and a display label.
// Identity is ID; Name is not required to be unique.
type Node struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Link is a directed, valued edge between two node ids. Multiple links
// between the same ordered pair are distinct flows and are never merged.
type Link struct {
	Source string  `json:"source" yaml:"source"`
	Target string  `json:"target" yaml:"target"`
	Value  float64 `json:"value" yaml:"value"`
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// LinkCount returns the number of links.
func (g *Graph) LinkCount() int { return len(g.Links) }

// Labels returns the display labels of all nodes in input order.
func (g *Graph) Labels() []string {
	labels := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		labels[i] = n.Name
	}
	return labels
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks the structural invariants of an input document.
// A violation is fatal and aborts before any pipeline stage runs:
//   - both top-level collections must be present
//   - every node needs a non-empty id and name
//   - node ids must be unique
//   - every link needs a non-empty source and target
//   - link values must be finite and non-negative
//
// Links referencing unknown node ids are NOT a validation error; they are
// dropped with a warning during Resolve.
func (g *Graph) Validate() error {
	if g.Nodes == nil {
		return errors.New(errors.ErrCodeInvalidInput, "nodes collection is missing")
	}
	if g.Links == nil {
		return errors.New(errors.ErrCodeInvalidInput, "links collection is missing")
	}

	seen := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		if n.ID == "" {
			return errors.New(errors.ErrCodeInvalidInput, "node %d is missing an id", i)
		}
		if n.Name == "" {
			return errors.New(errors.ErrCodeInvalidInput, "node %q is missing a name", n.ID)
		}
		if prev, ok := seen[n.ID]; ok {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate node id %q (positions %d and %d)", n.ID, prev, i)
		}
		seen[n.ID] = i
	}

	for i, l := range g.Links {
		if l.Source == "" {
			return errors.New(errors.ErrCodeInvalidInput, "link %d is missing a source", i)
		}
		if l.Target == "" {
			return errors.New(errors.ErrCodeInvalidInput, "link %d is missing a target", i)
		}
		if math.IsNaN(l.Value) || math.IsInf(l.Value, 0) || l.Value < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "link %s→%s has invalid value %v", l.Source, l.Target, l.Value)
		}
	}

	return nil
}
