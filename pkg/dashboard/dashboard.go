// Package dashboard composes widgets into the four product dashboards.
//
// A [Dashboard] is an ordered list of placements on a [layout.Grid]: each
// placement pairs a grid span with the widget drawn there. [Compose] builds
// one from a [Source]; [Dashboard.Render] draws it onto a surface.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/prive-edr/dashmock/pkg/canvas"
	"github.com/prive-edr/dashmock/pkg/errors"
	"github.com/prive-edr/dashmock/pkg/fonts"
	"github.com/prive-edr/dashmock/pkg/layout"
	"github.com/prive-edr/dashmock/pkg/observability"
	"github.com/prive-edr/dashmock/pkg/theme"
	"github.com/prive-edr/dashmock/pkg/widget"
)

// Kind identifies one of the dashboards.
type Kind string

const (
	SOC       Kind = "soc"
	Hunting   Kind = "hunting"
	DLP       Kind = "dlp"
	Executive Kind = "executive"
)

// All returns every dashboard kind in generation order.
func All() []Kind { return []Kind{SOC, Hunting, DLP, Executive} }

// ParseKind converts a name to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range All() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown dashboard %q", s)
}

// Page margins and grid spacing, as fractions of the canvas.
const (
	marginLeft   = 0.05
	marginRight  = 0.05
	marginTop    = 0.08
	marginBottom = 0.05
	wspace       = 0.3
	hspace       = 0.4

	titleY    = 0.02 // top of the title
	subtitleY = 0.05 // baseline of the subtitle
)

// Placement assigns a widget to a grid span.
type Placement struct {
	Span   layout.Span
	Widget widget.Widget
}

// Dashboard is a composed page ready to render.
type Dashboard struct {
	Kind       Kind
	Title      string
	Subtitle   string
	Grid       layout.Grid
	Placements []Placement
}

// Compose builds the dashboard of the given kind for a canvas of w×h
// pixels, pulling its data from src.
func Compose(kind Kind, src Source, w, h float64) (*Dashboard, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "canvas size %gx%g", w, h)
	}
	body := canvas.Rect{
		X: marginLeft * w,
		Y: marginTop * h,
		W: (1 - marginLeft - marginRight) * w,
		H: (1 - marginTop - marginBottom) * h,
	}

	var d *Dashboard
	switch kind {
	case SOC:
		d = composeSOC(src.SOC())
	case Hunting:
		d = composeHunting(src.Hunting())
	case DLP:
		d = composeDLP(src.DLP())
	case Executive:
		d = composeExecutive(src.Executive())
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown dashboard %q", kind)
	}
	d.Kind = kind
	d.Grid.Bounds = body
	d.Grid.WSpace, d.Grid.HSpace = wspace, hspace
	return d, nil
}

func grid(rows, cols int) layout.Grid { return layout.Grid{Rows: rows, Cols: cols} }

// Spans returns the span of every placement in order.
func (d *Dashboard) Spans() []layout.Span {
	spans := make([]layout.Span, len(d.Placements))
	for i, p := range d.Placements {
		spans[i] = p.Span
	}
	return spans
}

// Validate checks that every placement has a widget, that spans are in
// bounds and disjoint, and that no grid cell is left empty.
func (d *Dashboard) Validate() error {
	for i, p := range d.Placements {
		if p.Widget == nil {
			return errors.New(errors.ErrCodeInvalidLayout, "%s: placement %d at %s has no widget", d.Kind, i, p.Span)
		}
	}
	spans := d.Spans()
	if _, err := d.Grid.Allocate(spans); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidLayout, err, "%s", d.Kind)
	}
	if gaps := d.Grid.Uncovered(spans); len(gaps) > 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "%s: %d empty cells, first at %s", d.Kind, len(gaps), gaps[0])
	}
	return nil
}

// Render fills the background, draws the header and renders every widget
// once into its region, in placement order.
func (d *Dashboard) Render(ctx context.Context, s canvas.Surface, th *theme.Theme) error {
	regions, err := d.Grid.Allocate(d.Spans())
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidLayout, err, "%s", d.Kind)
	}

	b := s.Bounds()
	s.Rect(b, canvas.Style{Fill: th.Background()})
	d.header(s, th)

	hooks := observability.Generation()
	for i, p := range d.Placements {
		start := time.Now()
		p.Widget.Render(canvas.Sub(s, regions[i].Rect), th)
		hooks.OnWidgetRendered(ctx, string(d.Kind), i, string(p.Widget.Kind()), time.Since(start))
	}
	return nil
}

func (d *Dashboard) header(s canvas.Surface, th *theme.Theme) {
	b := s.Bounds()
	typo := th.Type()
	s.Text(d.Title, canvas.Pt(b.W/2, titleY*b.H), canvas.TextStyle{
		Size:   typo.Title,
		Color:  th.Color(theme.TextPrimary),
		Weight: fonts.Bold,
		Align:  canvas.AlignCenter,
		VAlign: canvas.VAlignTop,
	})
	if d.Subtitle != "" {
		s.Text(d.Subtitle, canvas.Pt(b.W/2, subtitleY*b.H), canvas.TextStyle{
			Size:   typo.Subtitle,
			Color:  th.Color(theme.TextSecondary),
			Align:  canvas.AlignCenter,
			VAlign: canvas.VAlignBaseline,
		})
	}
}

func (d *Dashboard) String() string {
	return fmt.Sprintf("%s (%dx%d, %d widgets)", d.Kind, d.Grid.Rows, d.Grid.Cols, len(d.Placements))
}
