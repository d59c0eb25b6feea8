// Package pipeline turns a [config.Config] into dashboard images.
//
// A run walks every dashboard kind in a fixed order:
//
//	compose → validate → render → export
//
// Each dashboard is generated independently. A failure in one (a missing
// output directory, a broken layout) is recorded in its [Result] and the
// run moves on to the next kind, so a single bad path never hides the
// other images.
//
// # Usage
//
//	cfg, _ := config.Load("dashmock.toml")
//	r, err := pipeline.NewRunner(cfg, nil, logger)
//	if err != nil {
//	    return err
//	}
//	results, err := r.GenerateAll(ctx)
package pipeline

import (
	"time"

	"github.com/prive-edr/dashmock/pkg/dashboard"
)

// Result describes one generated (or failed) dashboard.
type Result struct {
	Kind    dashboard.Kind
	Path    string
	RunID   string
	Width   int // canvas width in pixels, before trimming
	Height  int
	Widgets int
	Stats   Stats
	Err     error
}

// OK reports whether the image was written.
func (r Result) OK() bool { return r.Err == nil }

// Stats records per-stage timing.
type Stats struct {
	ComposeTime time.Duration
	RenderTime  time.Duration
	ExportTime  time.Duration
}

// Total returns the time spent across all stages.
func (s Stats) Total() time.Duration {
	return s.ComposeTime + s.RenderTime + s.ExportTime
}

// Failed counts results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
