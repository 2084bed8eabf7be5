package flow

import (
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	g := &Graph{
		Nodes: []Node{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}},
		Links: []Link{
			{Source: "a", Target: "b", Value: 10},
			{Source: "b", Target: "c", Value: 7},
		},
	}

	res, skipped := Resolve(g)

	if len(skipped) != 0 {
		t.Errorf("Resolve() skipped %d links, want 0", len(skipped))
	}
	if res.LinkCount() != 2 {
		t.Fatalf("LinkCount() = %d, want 2", res.LinkCount())
	}
	if res.Sources[0] != 0 || res.Targets[0] != 1 {
		t.Errorf("link 0 = %d→%d, want 0→1", res.Sources[0], res.Targets[0])
	}
	if res.Sources[1] != 1 || res.Targets[1] != 2 {
		t.Errorf("link 1 = %d→%d, want 1→2", res.Sources[1], res.Targets[1])
	}
	if res.Values[1] != 7 {
		t.Errorf("Values[1] = %v, want 7", res.Values[1])
	}
}

func TestResolve_UnknownEndpoints(t *testing.T) {
	g := &Graph{
		Nodes: []Node{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
		Links: []Link{
			{Source: "a", Target: "b", Value: 10},
			{Source: "a", Target: "ghost", Value: 5},
			{Source: "phantom", Target: "b", Value: 3},
			{Source: "x", Target: "y", Value: 1},
		},
	}

	res, skipped := Resolve(g)

	if res.LinkCount() != 1 {
		t.Errorf("LinkCount() = %d, want 1", res.LinkCount())
	}
	if len(skipped) != 3 {
		t.Fatalf("Resolve() skipped %d links, want 3", len(skipped))
	}

	if skipped[0].Missing != "ghost" {
		t.Errorf("skipped[0].Missing = %q, want %q", skipped[0].Missing, "ghost")
	}
	if skipped[1].Missing != "phantom" {
		t.Errorf("skipped[1].Missing = %q, want %q", skipped[1].Missing, "phantom")
	}
	// Both endpoints unknown: the source is reported.
	if skipped[2].Missing != "x" {
		t.Errorf("skipped[2].Missing = %q, want %q", skipped[2].Missing, "x")
	}
}

func TestSkippedLink_Warning(t *testing.T) {
	s := SkippedLink{Source: "a", Target: "ghost", Missing: "ghost", Value: 5}
	msg := s.Warning()

	if !strings.Contains(msg, `"ghost"`) {
		t.Errorf("Warning() = %q, want the missing id quoted", msg)
	}
	if !strings.Contains(msg, "a") {
		t.Errorf("Warning() = %q, want the source id included", msg)
	}
}

func TestResolve_DuplicateLinksKeptDistinct(t *testing.T) {
	g := &Graph{
		Nodes: []Node{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
		Links: []Link{
			{Source: "a", Target: "b", Value: 1},
			{Source: "a", Target: "b", Value: 2},
		},
	}

	res, _ := Resolve(g)
	if res.LinkCount() != 2 {
		t.Errorf("LinkCount() = %d, want 2 distinct flows", res.LinkCount())
	}
}
