// Package pkg provides the core libraries for flowsankey diagram rendering.
//
// # Overview
//
// Flowsankey reads a flow-graph document (named nodes plus weighted directed
// links), prunes uninformative leaf nodes, and renders the result as an
// interactive sankey diagram. The pkg directory is organized into:
//
//  1. [flow] - Data model, codecs, and link resolution
//  2. [flow/transform] - Leaf classification and visible-subgraph reduction
//  3. [flow/annotate] - Hover summary aggregation
//  4. [render/sankey] - Rendering bundle assembly and output sinks
//  5. [pipeline] - Orchestration (load → reduce → annotate → render)
//  6. [theme] - TOML presentation configuration
//  7. [cache] - Rendered artifact caching
//
// # Architecture
//
// The typical data flow:
//
//	JSON/YAML document
//	         ↓
//	    [flow] package (decode, validate, resolve link endpoints)
//	         ↓
//	    [flow/transform] package (hide leaves, reindex subgraph)
//	         ↓
//	    [flow/annotate] package (hover summaries over the full link set)
//	         ↓
//	    [render/sankey] package (bundle + HTML/JSON/DOT/SVG/PNG output)
//
// # Quick Start
//
// Render a document to an interactive HTML diagram:
//
//	import (
//	    "context"
//	    "github.com/mwehrli/flowsankey/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    Input:   "budget.json",
//	    Formats: []string{pipeline.FormatHTML},
//	})
//
// Or run the pure stages directly, without files or caching:
//
//	g, _ := flow.Decode(data, flow.FormatJSON)
//	a := pipeline.Analyze(g, opts)
//	html, _ := sink.RenderHTML(a.Bundle, sink.HTMLOptions{})
//
// # Guarantees
//
// Stages between load and render are pure functions over immutable inputs:
// the same document and options always produce byte-identical artifacts.
// Node order, link order, and color assignment are deterministic.
//
// Links referencing unknown node ids are dropped with a warning; a document
// where every node is a leaf renders an empty diagram. Only a structurally
// malformed document aborts a run.
//
// [flow]: https://pkg.go.dev/github.com/mwehrli/flowsankey/pkg/flow
// [flow/transform]: https://pkg.go.dev/github.com/mwehrli/flowsankey/pkg/flow/transform
// [flow/annotate]: https://pkg.go.dev/github.com/mwehrli/flowsankey/pkg/flow/annotate
// [render/sankey]: https://pkg.go.dev/github.com/mwehrli/flowsankey/pkg/render/sankey
// [pipeline]: https://pkg.go.dev/github.com/mwehrli/flowsankey/pkg/pipeline
// [theme]: https://pkg.go.dev/github.com/mwehrli/flowsankey/pkg/theme
// [cache]: https://pkg.go.dev/github.com/mwehrli/flowsankey/pkg/cache
package pkg
