// Package pkg provides the libraries behind dashmock, a renderer for the
// mockup security dashboards used in product documentation.
//
// # Overview
//
// dashmock draws four dark-themed dashboards (SOC overview, threat
// hunting, data loss prevention, executive summary) from synthetic data
// and writes them as PNG images. The pkg directory is organized into
// three areas:
//
//  1. Drawing - [theme], [fonts], [canvas], [layout] and [widget]
//  2. Content - [dashboard] compositions fed by [sample] data
//  3. Orchestration - [config], [pipeline], [export] and [observability]
//
// # Architecture
//
// The data flow of a single dashboard:
//
//	sample.Generator (seeded synthetic data)
//	         ↓
//	    dashboard.Compose (grid + widget placements)
//	         ↓
//	    dashboard.Render onto a canvas.Raster
//	         ↓
//	    export.PNG (trim, pHYs resolution, write)
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/prive-edr/dashmock/pkg/config"
//	    "github.com/prive-edr/dashmock/pkg/pipeline"
//	)
//
//	cfg := config.Default()
//	cfg.OutputDir = "out"
//	r, err := pipeline.NewRunner(cfg, nil, nil)
//	if err != nil {
//	    return err
//	}
//	results, err := r.GenerateAll(context.Background())
//
// Each result carries its own error, so one unwritable path does not
// prevent the other dashboards from being produced.
//
// # Testing
//
// Widgets draw through the [canvas.Surface] interface. Tests render onto a
// [canvas.Recorder], which keeps every drawing operation for inspection
// instead of rasterizing it.
package pkg
