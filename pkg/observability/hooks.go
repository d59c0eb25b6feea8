// Package observability provides hooks for metrics, tracing, and logging.
//
// Generation code emits events through the registered hooks without
// depending on any particular backend. The defaults do nothing.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGenerationHooks(&myHooks{})
//	    observability.SetExportHooks(&myExportHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Generation().OnGenerateStart(ctx, "soc")
//	// ... compose and render ...
//	observability.Generation().OnGenerateComplete(ctx, "soc", duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Generation Hooks
// =============================================================================

// GenerationHooks receives events from dashboard composition and rendering.
type GenerationHooks interface {
	// Dashboard events
	OnGenerateStart(ctx context.Context, dashboard string)
	OnGenerateComplete(ctx context.Context, dashboard string, duration time.Duration, err error)

	// OnWidgetRendered fires once per placement, in placement order.
	OnWidgetRendered(ctx context.Context, dashboard string, index int, kind string, duration time.Duration)
}

// =============================================================================
// Export Hooks
// =============================================================================

// ExportHooks receives events from image export.
type ExportHooks interface {
	// OnExportComplete records a finished (or failed) file write.
	OnExportComplete(ctx context.Context, path string, width, height int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGenerationHooks is a no-op implementation of GenerationHooks.
type NoopGenerationHooks struct{}

func (NoopGenerationHooks) OnGenerateStart(context.Context, string)                                {}
func (NoopGenerationHooks) OnGenerateComplete(context.Context, string, time.Duration, error)       {}
func (NoopGenerationHooks) OnWidgetRendered(context.Context, string, int, string, time.Duration) {}

// NoopExportHooks is a no-op implementation of ExportHooks.
type NoopExportHooks struct{}

func (NoopExportHooks) OnExportComplete(context.Context, string, int, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	generationHooks GenerationHooks = NoopGenerationHooks{}
	exportHooks     ExportHooks     = NoopExportHooks{}
	hooksMu         sync.RWMutex
)

// SetGenerationHooks registers custom generation hooks.
// This should be called once at application startup before any dashboard is generated.
func SetGenerationHooks(h GenerationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generationHooks = h
	}
}

// SetExportHooks registers custom export hooks.
func SetExportHooks(h ExportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exportHooks = h
	}
}

// Generation returns the registered generation hooks.
func Generation() GenerationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generationHooks
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exportHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generationHooks = NoopGenerationHooks{}
	exportHooks = NoopExportHooks{}
}
