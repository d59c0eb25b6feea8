package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/prive-edr/dashmock/pkg/canvas"
	"github.com/prive-edr/dashmock/pkg/config"
	"github.com/prive-edr/dashmock/pkg/dashboard"
	"github.com/prive-edr/dashmock/pkg/export"
	"github.com/prive-edr/dashmock/pkg/observability"
	"github.com/prive-edr/dashmock/pkg/sample"
	"github.com/prive-edr/dashmock/pkg/theme"
)

// Runner generates dashboards for one configuration.
//
// Every image produced by a Runner shares its RunID, which is attached to
// all log lines so interleaved runs can be told apart.
type Runner struct {
	Config config.Config
	Theme  *theme.Theme
	Source dashboard.Source
	Logger *log.Logger
	RunID  string
}

// NewRunner validates cfg and prepares a runner.
// If src is nil, a sample generator seeded from cfg.Seed is used.
// If logger is nil, log.Default() is used.
func NewRunner(cfg config.Config, src dashboard.Source, logger *log.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	th, err := cfg.Theme()
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = sample.New(cfg.Seed)
	}
	if logger == nil {
		logger = log.Default()
	}
	id := uuid.NewString()
	return &Runner{
		Config: cfg,
		Theme:  th,
		Source: src,
		Logger: logger.With("run", id[:8]),
		RunID:  id,
	}, nil
}

// GenerateAll generates every dashboard kind in order.
func (r *Runner) GenerateAll(ctx context.Context) ([]Result, error) {
	return r.GenerateKinds(ctx, dashboard.All()...)
}

// GenerateKinds generates the given kinds in order. Failures are kept in
// the returned results and do not stop the run; a cancelled context does,
// and its error is returned alongside the results produced so far.
func (r *Runner) GenerateKinds(ctx context.Context, kinds ...dashboard.Kind) ([]Result, error) {
	results := make([]Result, 0, len(kinds))
	for _, kind := range kinds {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, r.Generate(ctx, kind))
	}
	if n := Failed(results); n > 0 {
		r.Logger.Warn("run finished with failures", "failed", n, "total", len(results))
	}
	return results, nil
}

// Generate composes, renders and writes a single dashboard.
func (r *Runner) Generate(ctx context.Context, kind dashboard.Kind) (res Result) {
	start := time.Now()
	res = Result{Kind: kind, Path: r.Config.OutputPath(kind), RunID: r.RunID}
	res.Width, res.Height = r.Config.PixelSize()

	hooks := observability.Generation()
	hooks.OnGenerateStart(ctx, string(kind))
	defer func() {
		hooks.OnGenerateComplete(ctx, string(kind), time.Since(start), res.Err)
		if res.Err != nil {
			r.Logger.Error("dashboard failed", "dashboard", kind, "err", res.Err)
		}
	}()

	// Stage 1: Compose
	composeStart := time.Now()
	d, err := dashboard.Compose(kind, r.Source, float64(res.Width), float64(res.Height))
	if err == nil {
		err = d.Validate()
	}
	res.Stats.ComposeTime = time.Since(composeStart)
	if err != nil {
		res.Err = err
		return res
	}
	res.Widgets = len(d.Placements)
	r.Logger.Debug("composed dashboard",
		"dashboard", kind,
		"widgets", res.Widgets,
		"duration", res.Stats.ComposeTime)

	// Stage 2: Render
	renderStart := time.Now()
	rs := canvas.NewRaster(res.Width, res.Height, r.Config.DPI, r.Theme.Background())
	defer rs.Release()
	if err := d.Render(ctx, rs, r.Theme); err != nil {
		res.Err = err
		return res
	}
	res.Stats.RenderTime = time.Since(renderStart)
	r.Logger.Debug("rendered dashboard",
		"dashboard", kind,
		"size", res.Width*res.Height,
		"duration", res.Stats.RenderTime)

	// Stage 3: Export
	exportStart := time.Now()
	opts := []export.Option{
		export.WithDPI(r.Config.DPI),
		export.WithBackground(r.Theme.Background()),
	}
	if r.Config.Trim {
		opts = append(opts, export.WithTrim(r.Config.PadIn))
	}
	err = export.PNG(rs.Image(), res.Path, opts...)
	res.Stats.ExportTime = time.Since(exportStart)
	observability.Export().OnExportComplete(ctx, res.Path, res.Width, res.Height, res.Stats.ExportTime, err)
	if err != nil {
		res.Err = err
		return res
	}

	r.Logger.Info("wrote dashboard",
		"dashboard", kind,
		"path", res.Path,
		"widgets", res.Widgets,
		"duration", res.Stats.Total())
	return res
}
