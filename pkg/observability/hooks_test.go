package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGenerationHooks{}
	g.OnGenerateStart(ctx, "soc")
	g.OnWidgetRendered(ctx, "soc", 0, "metric-card", time.Millisecond)
	g.OnGenerateComplete(ctx, "soc", time.Second, nil)

	e := NoopExportHooks{}
	e.OnExportComplete(ctx, "docs/images/dashboard-soc.png", 2400, 1500, time.Second, errors.New("boom"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Generation().(NoopGenerationHooks); !ok {
		t.Error("Generation() should return NoopGenerationHooks by default")
	}
	if _, ok := Export().(NoopExportHooks); !ok {
		t.Error("Export() should return NoopExportHooks by default")
	}

	customGen := &testGenerationHooks{}
	SetGenerationHooks(customGen)
	if Generation() != customGen {
		t.Error("SetGenerationHooks should set custom hooks")
	}

	customExport := &testExportHooks{}
	SetExportHooks(customExport)
	if Export() != customExport {
		t.Error("SetExportHooks should set custom hooks")
	}

	Reset()
	if _, ok := Generation().(NoopGenerationHooks); !ok {
		t.Error("Reset() should restore NoopGenerationHooks")
	}
	if _, ok := Export().(NoopExportHooks); !ok {
		t.Error("Reset() should restore NoopExportHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testGenerationHooks{}
	SetGenerationHooks(custom)
	SetGenerationHooks(nil)
	if Generation() != custom {
		t.Error("SetGenerationHooks(nil) should be ignored")
	}

	SetExportHooks(nil)
	if _, ok := Export().(NoopExportHooks); !ok {
		t.Error("SetExportHooks(nil) should be ignored")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testGenerationHooks{}
	SetGenerationHooks(h)

	ctx := context.Background()
	for i := range 3 {
		Generation().OnWidgetRendered(ctx, "dlp", i, "donut", 0)
	}
	if h.widgets != 3 {
		t.Errorf("widgets = %d, want 3", h.widgets)
	}
}

// Test implementations
type testGenerationHooks struct {
	NoopGenerationHooks
	widgets int
}

func (h *testGenerationHooks) OnWidgetRendered(context.Context, string, int, string, time.Duration) {
	h.widgets++
}

type testExportHooks struct{ NoopExportHooks }
