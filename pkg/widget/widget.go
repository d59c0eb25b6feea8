package widget

import (
	"fmt"
	"math"
	"strings"

	"github.com/prive-edr/dashmock/pkg/canvas"
	"github.com/prive-edr/dashmock/pkg/fonts"
	"github.com/prive-edr/dashmock/pkg/theme"
)

// Kind names a widget type.
type Kind string

const (
	KindMetricCard      Kind = "metric-card"
	KindStackedTimeline Kind = "stacked-timeline"
	KindLineTimeline    Kind = "line-timeline"
	KindBarRanking      Kind = "bar-ranking"
	KindCategoryBars    Kind = "category-bars"
	KindDonut           Kind = "donut"
	KindTextList        Kind = "text-list"
	KindNodeLink        Kind = "node-link"
	KindGauge           Kind = "gauge"
)

// Widget is a renderable widget spec.
type Widget interface {
	Kind() Kind
	Render(s canvas.Surface, th *theme.Theme)
}

// Corner places a legend inside the plot area.
type Corner int

const (
	UpperLeft Corner = iota
	UpperRight
	LowerLeft
	LowerRight
)

// Threshold picks a bar color when the value is at least Min.
type Threshold struct {
	Min   float64
	Color theme.Name
}

// Reference is a horizontal line drawn across the full plot width.
type Reference struct {
	Value float64
	Color theme.Name
	Label string
}

// Glyph is a point marker on a line series.
type Glyph int

const (
	GlyphNone Glyph = iota
	GlyphCircle
	GlyphSquare
	GlyphTriangle
)

// pad returns p points in pixels.
func pad(s canvas.Surface, p float64) float64 { return p * s.PxPerPt() }

// panel draws the card background and title of a chart widget and returns
// the body rectangle below the title.
func panel(s canvas.Surface, th *theme.Theme, title string) canvas.Rect {
	b := s.Bounds()
	s.RoundedRect(b, pad(s, 6), canvas.Style{
		Fill:      th.Color(theme.BgCard),
		Stroke:    th.Color(theme.Border),
		LineWidth: 1.5,
	})
	return panelBody(s, th, title, true)
}

// panelBody computes the body rectangle for a panel and, when draw is set,
// draws the title.
func panelBody(s canvas.Surface, th *theme.Theme, title string, draw bool) canvas.Rect {
	b := s.Bounds()
	inner := b.Inset(pad(s, 8), pad(s, 6))
	if title == "" {
		return inner
	}
	size := th.Type().Panel
	ts := canvas.TextStyle{
		Size:   size,
		Color:  th.Color(theme.TextPrimary),
		Weight: fonts.Bold,
		Align:  canvas.AlignCenter,
		VAlign: canvas.VAlignTop,
	}
	if draw {
		s.Text(title, canvas.Pt(b.W/2, inner.Y), ts)
	}
	_, h := s.MeasureText(title, ts)
	top := h + pad(s, 8)
	body := inner
	body.Y += top
	body.H = math.Max(0, body.H-top)
	return body
}

// legendEntry is one swatch and label in a legend box.
type legendEntry struct {
	label string
	fill  theme.Name
	alpha float64
	line  bool
}

func drawLegend(s canvas.Surface, th *theme.Theme, plot canvas.Rect, entries []legendEntry, corner Corner) {
	if len(entries) == 0 || plot.Empty() {
		return
	}
	ts := canvas.TextStyle{Size: th.Type().Base, Color: th.Color(theme.TextPrimary), VAlign: canvas.VAlignMiddle}
	sw := pad(s, 14)
	gap := pad(s, 4)
	var textW, rowH float64
	for _, e := range entries {
		w, h := s.MeasureText(e.label, ts)
		textW = math.Max(textW, w)
		rowH = math.Max(rowH, h)
	}
	rowH += gap
	box := canvas.Rect{W: sw + textW + 3*gap, H: float64(len(entries))*rowH + gap}
	margin := pad(s, 6)
	switch corner {
	case UpperLeft:
		box.X, box.Y = plot.X+margin, plot.Y+margin
	case UpperRight:
		box.X, box.Y = plot.X+plot.W-box.W-margin, plot.Y+margin
	case LowerLeft:
		box.X, box.Y = plot.X+margin, plot.Y+plot.H-box.H-margin
	case LowerRight:
		box.X, box.Y = plot.X+plot.W-box.W-margin, plot.Y+plot.H-box.H-margin
	}
	s.RoundedRect(box, pad(s, 3), canvas.Style{
		Fill:      th.Alpha(theme.BgCardHover, 0.9),
		Stroke:    th.Color(theme.Border),
		LineWidth: 1,
	})
	for i, e := range entries {
		cy := box.Y + gap/2 + rowH*(float64(i)+0.5)
		x := box.X + gap
		if e.line {
			s.Line(canvas.Pt(x, cy), canvas.Pt(x+sw, cy), canvas.Style{Stroke: th.Alpha(e.fill, e.alpha), LineWidth: 2})
		} else {
			s.Rect(canvas.Rect{X: x, Y: cy - rowH/4, W: sw, H: rowH / 2}, canvas.Style{Fill: th.Alpha(e.fill, e.alpha)})
		}
		s.Text(e.label, canvas.Pt(x+sw+gap, cy), ts)
	}
}

// colorFor resolves a bar's color from its own color, thresholds, or the
// widget default, in that order.
func colorFor(b Bar, thresholds []Threshold, def theme.Name) theme.Name {
	if b.Color != "" {
		return b.Color
	}
	for _, t := range thresholds {
		if b.Value >= t.Min {
			return t.Color
		}
	}
	if def == "" {
		return theme.Primary
	}
	return def
}

// formatValue renders a value compactly: integers without decimals,
// thousands as K and millions as M.
func formatValue(v float64) string {
	a := math.Abs(v)
	switch {
	case a >= 1e6:
		return trimZero(fmt.Sprintf("%.1f", v/1e6)) + "M"
	case a >= 1e4:
		return fmt.Sprintf("%.0fK", v/1e3)
	case v == math.Trunc(v):
		return fmt.Sprintf("%.0f", v)
	default:
		return trimZero(fmt.Sprintf("%.1f", v))
	}
}

func trimZero(s string) string {
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// valueAt returns v[i], treating missing entries as zero.
func valueAt(v []float64, i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return 0
}

// drawLines draws a possibly multi-line label centered on at.
func drawLines(s canvas.Surface, text string, at canvas.Point, ts canvas.TextStyle) {
	lines := strings.Split(text, "\n")
	_, h := s.MeasureText("Mg", ts)
	for i, line := range lines {
		s.Text(line, canvas.Pt(at.X, at.Y+float64(i)*h*1.1), ts)
	}
}
