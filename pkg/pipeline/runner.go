package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/doctran/archdiag/pkg/cache"
	"github.com/doctran/archdiag/pkg/catalog"
	"github.com/doctran/archdiag/pkg/diagram"
	"github.com/doctran/archdiag/pkg/errors"
	"github.com/doctran/archdiag/pkg/observability"
	"github.com/doctran/archdiag/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both the CLI and the preview server use it.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options, as long as the cache is safe for
// concurrent use.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Build runs the entry's construction pass and validates the diagram.
func (r *Runner) Build(e catalog.Entry) (*diagram.Diagram, error) {
	d, err := e.Build()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "build %s", e.Name)
	}
	if err := d.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "validate %s", e.Name)
	}
	return d, nil
}

// Render transcribes d and produces every requested format.
func (r *Runner) Render(ctx context.Context, d *diagram.Diagram, opts Options) (res *Result, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, d.Name(), opts.Formats)
	defer func() {
		hooks.OnRenderComplete(ctx, d.Name(), opts.Formats, time.Since(start), err)
	}()

	dot := render.ToDOT(d, render.Options{GraphAttr: opts.GraphAttr})
	res = &Result{
		Name:      d.Name(),
		Diagram:   d,
		DOT:       dot,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		Stats: Stats{
			NodeCount:    d.NodeCount(),
			EdgeCount:    d.EdgeCount(),
			ClusterCount: d.ClusterCount(),
		},
	}

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, hit, err := r.renderCached(ctx, d, dot, format, opts)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "render %s as %s", d.Name(), format)
		}
		res.Artifacts[format] = data
		if hit {
			res.CacheInfo.Hits = append(res.CacheInfo.Hits, format)
		} else {
			res.CacheInfo.Misses = append(res.CacheInfo.Misses, format)
		}
		opts.Logger.Debug("rendered",
			"name", d.Name(),
			"format", format,
			"bytes", len(data),
			"cached", hit)
	}
	res.Stats.RenderTime = time.Since(start)
	return res, nil
}

// RenderFormat renders a single format of d through the cache.
// It returns the artifact and whether it was a cache hit.
func (r *Runner) RenderFormat(ctx context.Context, d *diagram.Diagram, format string, opts Options) ([]byte, bool, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, false, err
	}
	opts.Formats = []string{format}
	opts.validated = false
	res, err := r.Render(ctx, d, opts)
	if err != nil {
		return nil, false, err
	}
	return res.Artifacts[format], res.CacheInfo.AllHit(), nil
}

func (r *Runner) renderCached(ctx context.Context, d *diagram.Diagram, dot, format string, opts Options) ([]byte, bool, error) {
	if !Cacheable(format) {
		data, err := RenderFormat(ctx, d, dot, format)
		return data, false, err
	}

	hooks := observability.Cache()
	key := cache.ArtifactKey(dot, format)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			hooks.OnCacheHit(ctx, format)
			return data, true, nil
		} else if err != nil {
			opts.Logger.Warn("cache read failed", "name", d.Name(), "format", format, "error", err)
		}
		hooks.OnCacheMiss(ctx, format)
	}

	data, err := RenderFormat(ctx, d, dot, format)
	if err != nil {
		return nil, false, err
	}

	ttl := opts.TTL
	if ttl == 0 {
		ttl = cache.DefaultTTL
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		opts.Logger.Warn("cache write failed", "name", d.Name(), "format", format, "error", err)
	} else {
		hooks.OnCacheSet(ctx, format, len(data))
	}
	return data, false, nil
}

// Write stores the artifacts of res for entry e under opts.OutputDir and
// records the paths on res.
func (r *Runner) Write(e catalog.Entry, res *Result, opts Options) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	res.Paths = res.Paths[:0]
	for _, format := range opts.Formats {
		data, ok := res.Artifacts[format]
		if !ok {
			continue
		}
		path := OutputPath(opts.OutputDir, e, format, opts.Flat)
		if err := writeFile(path, data); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", e.Name)
		}
		res.Paths = append(res.Paths, path)
	}
	return nil
}

// Execute builds, renders and writes one entry.
func (r *Runner) Execute(ctx context.Context, e catalog.Entry, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Pipeline().OnBuildStart(ctx, e.Name)
	d, err := r.Build(e)
	buildTime := time.Since(start)
	nodes := 0
	if d != nil {
		nodes = d.NodeCount()
	}
	observability.Pipeline().OnBuildComplete(ctx, e.Name, nodes, buildTime, err)
	if err != nil {
		return nil, err
	}

	res, err := r.Render(ctx, d, opts)
	if err != nil {
		return nil, err
	}
	res.Stats.BuildTime = buildTime

	if err := r.Write(e, res, opts); err != nil {
		return nil, err
	}

	opts.Logger.Info("rendered diagram",
		"name", e.Name,
		"nodes", res.Stats.NodeCount,
		"edges", res.Stats.EdgeCount,
		"formats", opts.Formats,
		"cached", res.CacheInfo.AllHit(),
		"duration", res.Stats.BuildTime+res.Stats.RenderTime)
	return res, nil
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
