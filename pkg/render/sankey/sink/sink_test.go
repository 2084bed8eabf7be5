package sink

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mwehrli/flowsankey/pkg/render/sankey"
)

func sampleBundle() sankey.Bundle {
	return sankey.Bundle{
		Title:     "Monthly Budget",
		Labels:    []string{"Checking", "Savings"},
		Colors:    []string{"#1f77b4", "#ff7f0e"},
		Links:     []sankey.Link{{Source: 0, Target: 1, Value: 250.5}},
		NodeHover: []string{"Checking: 250.50\n\nOutflows:\n  • Savings: 250.50", "Savings: 250.50"},
		LinkHover: []string{"From: Checking\nTo: Savings\nAmount: 250.50"},
	}
}

func TestRenderHTML(t *testing.T) {
	data, err := RenderHTML(sampleBundle(), HTMLOptions{})
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	doc := string(data)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Monthly Budget</title>",
		`"Checking"`,
		`type: "sankey"`,
		"plotly",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestRenderHTML_Dimensions(t *testing.T) {
	data, err := RenderHTML(sampleBundle(), HTMLOptions{Width: 640, Height: 480})
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	doc := string(data)

	if !strings.Contains(doc, "width: 640px") {
		t.Error("document missing custom width")
	}
	if strings.Contains(doc, "1400") {
		t.Error("document should not fall back to the default width")
	}
}

func TestHoverToHTML(t *testing.T) {
	got := hoverToHTML([]string{"Checking: 250.50\n\nOutflows:\n  • Savings: 250.50"}, true)
	want := "<b>Checking: 250.50</b><br><br>Outflows:<br>  • Savings: 250.50"
	if got[0] != want {
		t.Errorf("hoverToHTML() = %q, want %q", got[0], want)
	}

	// No headline emphasis for link summaries.
	got = hoverToHTML([]string{"From: A\nTo: B"}, false)
	if got[0] != "From: A<br>To: B" {
		t.Errorf("hoverToHTML() = %q, want plain <br> join", got[0])
	}

	// Markup in the input is neutralized before the <br> conversion.
	got = hoverToHTML([]string{"A & B <C>"}, false)
	if got[0] != "A &amp; B &lt;C&gt;" {
		t.Errorf("hoverToHTML() = %q, want escaped text", got[0])
	}
}

func TestRenderHTML_EscapesTitle(t *testing.T) {
	b := sampleBundle()
	b.Title = `<script>alert("x")</script>`

	data, err := RenderHTML(b, HTMLOptions{})
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	doc := string(data)

	if strings.Contains(doc, "<script>alert") {
		t.Error("title not escaped")
	}
	if !strings.Contains(doc, "&lt;script&gt;") {
		t.Error("escaped title missing from document head")
	}
}

func TestRenderHTML_EmptyBundle(t *testing.T) {
	b := sankey.Bundle{
		Labels: []string{}, Colors: []string{}, Links: []sankey.Link{},
		NodeHover: []string{}, LinkHover: []string{},
	}
	data, err := RenderHTML(b, HTMLOptions{})
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	if !strings.Contains(string(data), `"labels":[]`) {
		t.Error("empty bundle should embed empty arrays")
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(sampleBundle())
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var got sankey.Bundle
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Title != "Monthly Budget" {
		t.Errorf("Title = %q, want %q", got.Title, "Monthly Budget")
	}
	if len(got.Links) != 1 || got.Links[0].Value != 250.5 {
		t.Errorf("Links = %+v, want one link with value 250.5", got.Links)
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sampleBundle())

	for _, want := range []string{
		"digraph flows {",
		"rankdir=LR",
		`label="Checking"`,
		`fillcolor="#1f77b4"`,
		"n0 -> n1",
		`label="250.5"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q", want)
		}
	}
}

func TestTrimZeros(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{250.5, "250.5"},
		{10, "10"},
		{7.25, "7.25"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := trimZeros(tt.v); got != tt.want {
			t.Errorf("trimZeros(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
