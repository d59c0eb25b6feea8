package widget

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/prive-edr/dashmock/pkg/canvas"
	"github.com/prive-edr/dashmock/pkg/fonts"
	"github.com/prive-edr/dashmock/pkg/theme"
)

// Bar is one labeled value. Color overrides thresholds and the widget
// default; Annotation overrides the printed value.
type Bar struct {
	Label      string
	Value      float64
	Color      theme.Name
	Annotation string
}

func (b Bar) annotation() string {
	if b.Annotation != "" {
		return b.Annotation
	}
	return formatValue(b.Value)
}

func barValues(bars []Bar) []float64 {
	v := make([]float64, len(bars))
	for i, b := range bars {
		v[i] = b.Value
	}
	return v
}

// BarRanking draws one horizontal bar per entry, first entry on top.
// Callers sort the entries for top-N rankings.
type BarRanking struct {
	Title      string
	XLabel     string
	Bars       []Bar
	Color      theme.Name
	Thresholds []Threshold // checked in order, first match wins
	XMax       float64     // zero means automatic
}

func (BarRanking) Kind() Kind { return KindBarRanking }

// layout returns the axes and the bar rectangles in input order.
func (r BarRanking) layout(s canvas.Surface, th *theme.Theme, body canvas.Rect) (axes, []canvas.Rect) {
	n := len(r.Bars)
	spec := axesSpec{xLabel: r.XLabel, gridX: true, xMax: r.XMax}
	if spec.xMax == 0 {
		if m, err := stats.Max(barValues(r.Bars)); err == nil {
			spec.xMax = niceMax(m * 1.25)
		}
	}
	// Category i sits at y = n-1-i so the first bar is drawn on top.
	spec.yMin, spec.yMax = -0.5, float64(n)-0.5
	spec.yTicks = make([]tick, n)
	for i, b := range r.Bars {
		spec.yTicks[i] = tick{v: float64(n - 1 - i), label: b.Label}
	}
	ax := layoutAxes(s, th, body, spec)

	rects := make([]canvas.Rect, n)
	h := 0.7 * ax.y.unit()
	for i, b := range r.Bars {
		cy := ax.y.at(float64(n - 1 - i))
		x0 := ax.x.at(0)
		rects[i] = canvas.Rect{X: x0, Y: cy - h/2, W: math.Max(0, ax.x.at(b.Value)-x0), H: h}
	}
	return ax, rects
}

func (r BarRanking) Render(s canvas.Surface, th *theme.Theme) {
	body := panel(s, th, r.Title)
	ax, rects := r.layout(s, th, body)
	ax.draw(s, th)

	ts := canvas.TextStyle{Size: th.Type().CardTitle, Color: th.Color(theme.TextPrimary), Weight: fonts.Bold}
	for i, b := range r.Bars {
		c := colorFor(b, r.Thresholds, r.Color)
		rc := rects[i]
		s.Rect(rc, canvas.Style{Fill: th.Alpha(c, 0.8), Stroke: th.Color(theme.Border), LineWidth: 1.5})
		s.Text(b.annotation(), canvas.Pt(rc.X+rc.W+pad(s, 4), rc.Y+rc.H/2), ts)
	}
}

// CategoryBars draws one vertical bar per category with the value printed
// above it, and an optional reference line across the plot.
type CategoryBars struct {
	Title      string
	YLabel     string
	Bars       []Bar
	Color      theme.Name
	Thresholds []Threshold
	YMin, YMax float64 // both zero means 0 to an automatic maximum
	Reference  *Reference
	Width      float64 // bar width as a fraction of the slot, default 0.6
}

func (CategoryBars) Kind() Kind { return KindCategoryBars }

func (c CategoryBars) layout(s canvas.Surface, th *theme.Theme, body canvas.Rect) (axes, []canvas.Rect) {
	n := len(c.Bars)
	spec := axesSpec{yLabel: c.YLabel, gridY: true, yMin: c.YMin, yMax: c.YMax}
	if c.YMin == 0 && c.YMax == 0 {
		if m, err := stats.Max(barValues(c.Bars)); err == nil {
			spec.yMax = niceMax(m * 1.15)
		}
	}
	spec.xMin, spec.xMax = -0.5, float64(n)-0.5
	spec.xTicks = make([]tick, n)
	for i, b := range c.Bars {
		spec.xTicks[i] = tick{v: float64(i), label: b.Label}
	}
	ax := layoutAxes(s, th, body, spec)

	width := c.Width
	if width <= 0 {
		width = 0.6
	}
	w := width * ax.x.unit()
	rects := make([]canvas.Rect, n)
	base := ax.y.at(spec.yMin)
	for i, b := range c.Bars {
		cx := ax.x.at(float64(i))
		top := ax.y.at(b.Value)
		rects[i] = canvas.Rect{X: cx - w/2, Y: top, W: w, H: math.Max(0, base-top)}
	}
	return ax, rects
}

func (c CategoryBars) Render(s canvas.Surface, th *theme.Theme) {
	body := panel(s, th, c.Title)
	ax, rects := c.layout(s, th, body)
	ax.draw(s, th)

	ts := canvas.TextStyle{
		Size:   th.Type().CardTitle,
		Color:  th.Color(theme.TextPrimary),
		Weight: fonts.Bold,
		Align:  canvas.AlignCenter,
		VAlign: canvas.VAlignBaseline,
	}
	for i, b := range c.Bars {
		col := colorFor(b, c.Thresholds, c.Color)
		rc := rects[i]
		s.Rect(rc, canvas.Style{Fill: th.Alpha(col, 0.8), Stroke: th.Color(theme.Border), LineWidth: 1.5})
		s.Text(b.annotation(), canvas.Pt(rc.X+rc.W/2, rc.Y-pad(s, 3)), ts)
	}

	if r := c.Reference; r != nil && !ax.plot.Empty() {
		y := ax.y.at(r.Value)
		s.Line(canvas.Pt(ax.plot.X, y), canvas.Pt(ax.plot.X+ax.plot.W, y), canvas.Style{
			Stroke: th.Alpha(r.Color, 0.5), LineWidth: 1.5, Dash: []float64{5, 3},
		})
		if r.Label != "" {
			s.Text(r.Label, canvas.Pt(ax.plot.X+ax.plot.W-pad(s, 2), y-pad(s, 3)), canvas.TextStyle{
				Size:   th.Type().Small,
				Color:  th.Color(r.Color),
				Align:  canvas.AlignRight,
				VAlign: canvas.VAlignBaseline,
			})
		}
	}
}
