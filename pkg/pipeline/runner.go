package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mwehrli/flowsankey/pkg/cache"
	"github.com/mwehrli/flowsankey/pkg/flow"
)

// Runner encapsulates pipeline execution with artifact caching.
//
// The Runner is stateless except for the cache and logger; it doesn't store
// pipeline results between runs.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the validated input graph.
	Graph *flow.Graph

	// GraphHash is the content hash of the canonical graph serialization.
	GraphHash string

	// Analysis holds the derived pure-stage artifacts.
	Analysis *Analysis

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains counts and timing information.
	Stats Stats

	// CacheHit reports whether all artifacts came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	LinkCount    int
	SkippedLinks int
	HiddenNodes  int
	Leftmost     int
	Rightmost    int
	VisibleNodes int
	LoadTime     time.Duration
	ReduceTime   time.Duration
	RenderTime   time.Duration
}

// Execute runs the complete load → reduce → annotate → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}

	// Stage 1: Load. A malformed document aborts here, before any
	// derived artifact is computed or written.
	loadStart := time.Now()
	g, err := flow.ReadFile(opts.Input)
	if err != nil {
		return nil, err
	}

	result := &Result{Graph: g}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.LinkCount = g.LinkCount()

	if data, err := flow.Marshal(g); err == nil {
		result.GraphHash = cache.Hash(data)
	}

	r.Logger.Info("loaded graph",
		"nodes", g.NodeCount(),
		"links", g.LinkCount(),
		"duration", result.Stats.LoadTime)

	// Stages 2-4: the pure transforms.
	reduceStart := time.Now()
	a := Analyze(g, opts)
	result.Analysis = a
	result.Stats.ReduceTime = time.Since(reduceStart)
	result.Stats.SkippedLinks = len(a.Skipped)
	result.Stats.HiddenNodes = a.Classification.HiddenCount()
	result.Stats.Leftmost = a.Classification.Leftmost
	result.Stats.Rightmost = a.Classification.Rightmost
	result.Stats.VisibleNodes = a.Reduction.NodeCount()

	for _, s := range a.Skipped {
		r.Logger.Warn(s.Warning())
	}
	r.Logger.Info("hid leaf nodes",
		"hidden", result.Stats.HiddenNodes,
		"leftmost", result.Stats.Leftmost,
		"rightmost", result.Stats.Rightmost,
		"visible", result.Stats.VisibleNodes)

	// Stage 5: Render, with per-format artifact caching.
	renderStart := time.Now()
	artifacts, hit, err := r.renderCached(ctx, a, opts, result.GraphHash)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheHit = hit
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderCached returns all requested artifacts, from cache when every format
// is present, rendering and caching them otherwise.
func (r *Runner) renderCached(ctx context.Context, a *Analysis, opts Options, graphHash string) (map[string][]byte, bool, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := graphHash != ""

	if allCached {
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				allCached = false
				break
			}
			artifacts[format] = data
		}
	}
	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil
	}

	rendered, err := Render(a.Bundle, opts)
	if err != nil {
		return nil, false, err
	}

	if graphHash != "" {
		for format, data := range rendered {
			key := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format))
			_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
		}
	}

	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
