package dashboard_test

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/prive-edr/dashmock/pkg/canvas"
	"github.com/prive-edr/dashmock/pkg/dashboard"
	"github.com/prive-edr/dashmock/pkg/errors"
	"github.com/prive-edr/dashmock/pkg/layout"
	"github.com/prive-edr/dashmock/pkg/observability"
	"github.com/prive-edr/dashmock/pkg/sample"
	"github.com/prive-edr/dashmock/pkg/theme"
	"github.com/prive-edr/dashmock/pkg/widget"
)

const (
	width  = 2400
	height = 1500
)

func compose(t *testing.T, kind dashboard.Kind) *dashboard.Dashboard {
	t.Helper()
	d, err := dashboard.Compose(kind, sample.New(1), width, height)
	if err != nil {
		t.Fatalf("Compose(%s): %v", kind, err)
	}
	return d
}

func TestComposeLayouts(t *testing.T) {
	tests := []struct {
		kind       dashboard.Kind
		rows, cols int
		widgets    int
		title      string
	}{
		{dashboard.SOC, 4, 6, 8, "Security Operations Center - Live Threat Monitoring"},
		{dashboard.Hunting, 4, 4, 7, "Threat Hunting Workbench - Advanced Investigation"},
		{dashboard.DLP, 4, 4, 8, "Data Loss Prevention - Policy Management"},
		{dashboard.Executive, 3, 3, 9, "Executive Security Dashboard - At a Glance"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			d := compose(t, tt.kind)
			if d.Kind != tt.kind {
				t.Errorf("Kind = %s", d.Kind)
			}
			if d.Grid.Rows != tt.rows || d.Grid.Cols != tt.cols {
				t.Errorf("grid = %dx%d, want %dx%d", d.Grid.Rows, d.Grid.Cols, tt.rows, tt.cols)
			}
			if len(d.Placements) != tt.widgets {
				t.Errorf("placements = %d, want %d", len(d.Placements), tt.widgets)
			}
			if d.Title != tt.title {
				t.Errorf("Title = %q", d.Title)
			}
			if d.Subtitle == "" {
				t.Error("Subtitle is empty")
			}
			if err := d.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestPlacementsInReadingOrder(t *testing.T) {
	for _, kind := range dashboard.All() {
		d := compose(t, kind)
		ordered := slices.IsSortedFunc(d.Placements, func(a, b dashboard.Placement) int {
			if a.Span.Row != b.Span.Row {
				return a.Span.Row - b.Span.Row
			}
			return a.Span.Col - b.Span.Col
		})
		if !ordered {
			t.Errorf("%s: placements not in row-major order: %v", kind, d.Spans())
		}
	}
}

func TestGridInsideCanvas(t *testing.T) {
	d := compose(t, dashboard.SOC)
	regions, err := d.Grid.Allocate(d.Spans())
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range regions {
		if r.Rect.X < 0 || r.Rect.Y < 0 || r.Rect.X+r.Rect.W > width || r.Rect.Y+r.Rect.H > height {
			t.Errorf("region %s outside canvas: %+v", r.Span, r.Rect)
		}
	}
}

// countingHooks records widget render events.
type countingHooks struct {
	observability.NoopGenerationHooks
	indices []int
	kinds   []string
}

func (h *countingHooks) OnWidgetRendered(_ context.Context, _ string, index int, kind string, _ time.Duration) {
	h.indices = append(h.indices, index)
	h.kinds = append(h.kinds, kind)
}

func TestExecutiveRendersNineWidgetsOnce(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetGenerationHooks(hooks)
	defer observability.Reset()

	d := compose(t, dashboard.Executive)
	if got := d.Grid.Uncovered(d.Spans()); len(got) != 0 {
		t.Fatalf("uncovered cells: %v", got)
	}

	rec := canvas.NewRecorder(width, height)
	if err := d.Render(context.Background(), rec, theme.Default()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}; !slices.Equal(hooks.indices, want) {
		t.Errorf("rendered indices = %v, want %v", hooks.indices, want)
	}
	wantKinds := []string{
		"metric-card", "metric-card", "metric-card",
		"gauge", "line-timeline", "category-bars",
		"donut", "category-bars", "text-list",
	}
	if !slices.Equal(hooks.kinds, wantKinds) {
		t.Errorf("rendered kinds = %v, want %v", hooks.kinds, wantKinds)
	}
}

func TestRenderBackgroundAndHeader(t *testing.T) {
	th := theme.Default()
	d := compose(t, dashboard.DLP)
	rec := canvas.NewRecorder(width, height)
	if err := d.Render(context.Background(), rec, th); err != nil {
		t.Fatal(err)
	}

	first := rec.Ops[0]
	if first.Kind != canvas.OpRect || first.Rect != rec.Bounds() || first.Style.Fill != th.Background() {
		t.Errorf("first op should fill the canvas with the background, got %+v", first)
	}
	texts := rec.Texts()
	if texts[0] != d.Title || texts[1] != d.Subtitle {
		t.Errorf("header texts = %q, %q", texts[0], texts[1])
	}
}

func TestValidateRejectsBrokenLayouts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *dashboard.Dashboard)
	}{
		{"missing placement", func(d *dashboard.Dashboard) {
			d.Placements = d.Placements[:len(d.Placements)-1]
		}},
		{"overlap", func(d *dashboard.Dashboard) {
			d.Placements = append(d.Placements, dashboard.Placement{Span: layout.Cell(0, 0), Widget: widget.MetricCard{}})
		}},
		{"out of bounds", func(d *dashboard.Dashboard) {
			d.Placements[8].Span = layout.Cells(2, 2, 1, 2)
		}},
		{"nil widget", func(d *dashboard.Dashboard) {
			d.Placements[0].Widget = nil
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := compose(t, dashboard.Executive)
			tt.mutate(d)
			err := d.Validate()
			if !errors.Is(err, errors.ErrCodeInvalidLayout) {
				t.Errorf("Validate = %v, want %s", err, errors.ErrCodeInvalidLayout)
			}
		})
	}
}

func TestComposeRejectsBadInput(t *testing.T) {
	if _, err := dashboard.Compose("nope", sample.New(1), width, height); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("unknown kind: err = %v", err)
	}
	if _, err := dashboard.Compose(dashboard.SOC, sample.New(1), 0, height); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("zero width: err = %v", err)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range dashboard.All() {
		got, err := dashboard.ParseKind(string(k))
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %q, %v", k, got, err)
		}
	}
	if _, err := dashboard.ParseKind("siem"); err == nil {
		t.Error("ParseKind(siem) should fail")
	}
}

func TestRenderOnRaster(t *testing.T) {
	th := theme.Default()
	for _, kind := range dashboard.All() {
		t.Run(string(kind), func(t *testing.T) {
			d, err := dashboard.Compose(kind, sample.New(9), 800, 500)
			if err != nil {
				t.Fatal(err)
			}
			r := canvas.NewRaster(800, 500, 50, th.Background())
			defer r.Release()
			if err := d.Render(context.Background(), r, th); err != nil {
				t.Fatal(err)
			}
		})
	}
}
