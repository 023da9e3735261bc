package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treemap/pkg/cache"
	"github.com/matzehuels/treemap/pkg/observability"
	"github.com/matzehuels/treemap/pkg/render/sink"
	"github.com/matzehuels/treemap/pkg/treemap"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
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
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLArtifact,
	}
}

// Execute runs the complete scan → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}
	hooks := observability.Pipeline()

	// Stage 1: Scan
	scanStart := time.Now()
	hooks.OnScanStart(ctx, opts.Path)
	t, err := Scan(ctx, opts)
	if err != nil {
		hooks.OnScanComplete(ctx, opts.Path, 0, time.Since(scanStart), err)
		return nil, fmt.Errorf("scan: %w", err)
	}
	result.Tree = t
	result.Stats.ScanTime = time.Since(scanStart)
	result.Stats.NodeCount = t.Len()
	hooks.OnScanComplete(ctx, opts.Path, t.Len(), result.Stats.ScanTime, nil)

	r.Logger.Info("scanned directory",
		"path", opts.Path,
		"nodes", t.Len(),
		"duration", result.Stats.ScanTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, t.Len())
	if err := Layout(t, opts); err != nil {
		hooks.OnLayoutComplete(ctx, 0, time.Since(layoutStart), err)
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Frame = sink.NewFrame(t, t.Root())
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.BlockCount = len(result.Frame.Blocks)
	result.Stats.TotalSize = result.Frame.TotalSize
	hooks.OnLayoutComplete(ctx, result.Stats.BlockCount, result.Stats.LayoutTime, nil)

	r.Logger.Info("computed layout",
		"blocks", result.Stats.BlockCount,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.VizType, opts.Formats)
	artifacts, hash, hit, err := r.RenderWithCacheInfo(ctx, t, opts)
	hooks.OnRenderComplete(ctx, opts.VizType, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.FrameHash = hash
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo renders a laid-out tree with caching. It returns the
// artifacts, the content hash the cache keys were derived from, and whether
// every artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, t *treemap.Tree, opts Options) (map[string][]byte, string, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, "", false, err
	}
	r.applyLogger(&opts)

	hash, err := contentHash(t, opts)
	if err != nil {
		return nil, "", false, fmt.Errorf("hash frame for cache key: %w", err)
	}

	// Try to get all formats from cache
	cacheHooks := observability.Cache()
	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, err := cache.Fetch(ctx, r.Cache, r.artifactKey(hash, format, opts))
			if err != nil {
				cacheHooks.OnCacheMiss(ctx, format)
				break
			}
			cacheHooks.OnCacheHit(ctx, format)
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, hash, true, nil // All artifacts from cache
		}
	}

	rendered, err := Render(ctx, t, opts)
	if err != nil {
		return nil, "", false, err
	}

	for format, data := range rendered {
		if err := r.Cache.Set(ctx, r.artifactKey(hash, format, opts), data, r.TTL); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, format, len(data))
	}

	return rendered, hash, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache info.
func (r *Runner) Render(ctx context.Context, t *treemap.Tree, opts Options) (map[string][]byte, error) {
	artifacts, _, _, err := r.RenderWithCacheInfo(ctx, t, opts)
	return artifacts, err
}

func (r *Runner) artifactKey(hash, format string, opts Options) string {
	return r.Keyer.ArtifactKey(hash, cache.ArtifactKeyOpts{
		Format: format,
		Width:  opts.Width,
		Height: opts.Height,
		Labels: opts.Labels,
		Style:  fmt.Sprintf("%s/detailed=%t/scale=%.2f", opts.VizType, opts.Detailed, opts.Scale),
	})
}

// contentHash hashes what the renderer will draw: the frame for treemaps,
// the DOT source for node-link diagrams.
func contentHash(t *treemap.Tree, opts Options) (string, error) {
	if opts.IsNodelink() {
		return cache.Hash([]byte(nodelinkDOT(t, opts))), nil
	}
	data, err := json.Marshal(sink.NewFrame(t, t.Root()))
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
