package sankey

import (
	"testing"

	"github.com/mwehrli/flowsankey/pkg/flow"
	"github.com/mwehrli/flowsankey/pkg/flow/annotate"
	"github.com/mwehrli/flowsankey/pkg/flow/transform"
)

func buildReduction(t *testing.T, n int) (*transform.Reduction, *annotate.Annotation) {
	t.Helper()
	g := &flow.Graph{Nodes: make([]flow.Node, n), Links: []flow.Link{}}
	for i := range g.Nodes {
		g.Nodes[i] = flow.Node{ID: string(rune('a' + i)), Name: string(rune('A' + i))}
	}
	res, _ := flow.Resolve(g)
	red := transform.Reduce(g, res, transform.None())
	return red, annotate.Annotate(g, res, red, annotate.DefaultFormat())
}

func TestBuild_PaletteWrapsAround(t *testing.T) {
	red, ann := buildReduction(t, 5)
	palette := []string{"#111111", "#222222"}

	b := Build(red, ann, palette, "")

	want := []string{"#111111", "#222222", "#111111", "#222222", "#111111"}
	for i, c := range want {
		if b.Colors[i] != c {
			t.Errorf("Colors[%d] = %q, want %q", i, b.Colors[i], c)
		}
	}
}

func TestBuild_DefaultPalette(t *testing.T) {
	red, ann := buildReduction(t, 3)

	b := Build(red, ann, nil, "")

	if len(b.Colors) != 3 {
		t.Fatalf("len(Colors) = %d, want 3", len(b.Colors))
	}
	for i, c := range b.Colors {
		if c != DefaultPalette[i] {
			t.Errorf("Colors[%d] = %q, want %q", i, c, DefaultPalette[i])
		}
	}
}

func TestBuild_ParallelArrays(t *testing.T) {
	g := &flow.Graph{
		Nodes: []flow.Node{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}, {ID: "d", Name: "D"}},
		Links: []flow.Link{
			{Source: "a", Target: "b", Value: 10},
			{Source: "b", Target: "c", Value: 7},
			{Source: "c", Target: "d", Value: 7},
		},
	}
	res, _ := flow.Resolve(g)
	red := transform.Reduce(g, res, transform.Classify(res, g.NodeCount()))
	ann := annotate.Annotate(g, res, red, annotate.DefaultFormat())

	b := Build(red, ann, nil, "Budget")

	if b.Title != "Budget" {
		t.Errorf("Title = %q, want %q", b.Title, "Budget")
	}
	if len(b.Labels) != len(b.Colors) || len(b.Labels) != len(b.NodeHover) {
		t.Errorf("node arrays not parallel: %d labels, %d colors, %d hovers",
			len(b.Labels), len(b.Colors), len(b.NodeHover))
	}
	if len(b.Links) != len(b.LinkHover) {
		t.Errorf("link arrays not parallel: %d links, %d hovers", len(b.Links), len(b.LinkHover))
	}
	if b.Links[0].Source != 0 || b.Links[0].Target != 1 {
		t.Errorf("Links[0] = %d→%d, want 0→1", b.Links[0].Source, b.Links[0].Target)
	}
}

func TestBuild_EmptyBundle(t *testing.T) {
	red, ann := buildReduction(t, 0)

	b := Build(red, ann, nil, "")

	if len(b.Labels) != 0 || len(b.Links) != 0 {
		t.Errorf("empty reduction should build an empty bundle, got %d labels, %d links",
			len(b.Labels), len(b.Links))
	}
	if b.NodeHover == nil || b.LinkHover == nil {
		t.Error("hover arrays should be empty, not nil")
	}
}

func TestDefaultPalette_WellFormed(t *testing.T) {
	if len(DefaultPalette) == 0 {
		t.Fatal("DefaultPalette is empty")
	}
	seen := make(map[string]bool)
	for i, c := range DefaultPalette {
		if len(c) != 7 || c[0] != '#' {
			t.Errorf("DefaultPalette[%d] = %q, want #rrggbb", i, c)
		}
		if seen[c] {
			t.Errorf("DefaultPalette[%d] = %q duplicated", i, c)
		}
		seen[c] = true
	}
}
