package widget

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/prive-edr/dashmock/pkg/canvas"
	"github.com/prive-edr/dashmock/pkg/theme"
)

// Series is one line of a LineTimeline.
type Series struct {
	Label  string
	Values []float64
	Color  theme.Name
	Fill   bool    // shade the area between the line and the baseline
	Glyph  Glyph   // marker drawn at each point
	Width  float64 // line width in points, default 2
}

// LineTimeline draws line series over a shared x sequence. When XLabels is
// set the x axis is categorical and X is ignored.
type LineTimeline struct {
	Title     string
	XLabel    string
	YLabel    string
	X         []float64
	XLabels   []string
	Series    []Series
	YMin      float64 // YMin and YMax both zero means automatic
	YMax      float64
	Reference *Reference
	Legend    Corner
}

func (LineTimeline) Kind() Kind { return KindLineTimeline }

func (t LineTimeline) xs() []float64 {
	if len(t.XLabels) > 0 {
		xs := make([]float64, len(t.XLabels))
		for i := range xs {
			xs[i] = float64(i)
		}
		return xs
	}
	return t.X
}

func (t LineTimeline) layout(s canvas.Surface, th *theme.Theme, body canvas.Rect) axes {
	xs := t.xs()
	spec := axesSpec{xLabel: t.XLabel, yLabel: t.YLabel, gridX: true, gridY: true}
	if n := len(xs); n > 0 {
		spec.xMin, spec.xMax = xs[0], xs[n-1]
	}
	if len(t.XLabels) > 0 {
		spec.xTicks = make([]tick, len(t.XLabels))
		for i, l := range t.XLabels {
			spec.xTicks[i] = tick{v: float64(i), label: l}
		}
		// keep first and last markers off the spines
		spec.xMin, spec.xMax = -0.3, float64(len(t.XLabels)-1)+0.3
	}
	spec.yMin, spec.yMax = t.YMin, t.YMax
	if t.YMin == 0 && t.YMax == 0 {
		var all []float64
		for _, sr := range t.Series {
			all = append(all, sr.Values...)
		}
		if t.Reference != nil {
			all = append(all, t.Reference.Value)
		}
		if m, err := stats.Max(all); err == nil {
			spec.yMax = niceMax(m * 1.1)
		}
		if lo, err := stats.Min(all); err == nil && lo < 0 {
			spec.yMin = -niceMax(-lo * 1.1)
		}
	}
	return layoutAxes(s, th, body, spec)
}

func (t LineTimeline) Render(s canvas.Surface, th *theme.Theme) {
	body := panel(s, th, t.Title)
	ax := t.layout(s, th, body)
	ax.draw(s, th)

	xs := t.xs()
	base := math.Max(ax.spec.yMin, math.Min(0, ax.spec.yMax))
	var legend []legendEntry
	for _, sr := range t.Series {
		n := min(len(xs), len(sr.Values))
		pts := make([]canvas.Point, n)
		for i := range n {
			pts[i] = ax.pt(xs[i], sr.Values[i])
		}
		if sr.Fill && n > 1 {
			poly := append([]canvas.Point{}, pts...)
			poly = append(poly, ax.pt(xs[n-1], base), ax.pt(xs[0], base))
			s.Polygon(poly, canvas.Style{Fill: th.Alpha(sr.Color, 0.2)})
		}
		width := sr.Width
		if width == 0 {
			width = 2
		}
		s.Polyline(pts, canvas.Style{Stroke: th.Alpha(sr.Color, 0.9), LineWidth: width})
		for _, p := range pts {
			drawGlyph(s, th, sr.Glyph, p, sr.Color)
		}
		legend = append(legend, legendEntry{label: sr.Label, fill: sr.Color, alpha: 0.9, line: true})
	}

	if r := t.Reference; r != nil && !ax.plot.Empty() {
		y := ax.y.at(r.Value)
		s.Line(canvas.Pt(ax.plot.X, y), canvas.Pt(ax.plot.X+ax.plot.W, y), canvas.Style{
			Stroke: th.Alpha(r.Color, 0.7), LineWidth: 1.5, Dash: []float64{5, 3},
		})
		if r.Label != "" {
			legend = append(legend, legendEntry{label: r.Label, fill: r.Color, alpha: 0.7, line: true})
		}
	}
	drawLegend(s, th, ax.plot, legend, t.Legend)
}

func drawGlyph(s canvas.Surface, th *theme.Theme, g Glyph, at canvas.Point, c theme.Name) {
	r := pad(s, 2.5)
	st := canvas.Style{Fill: th.Color(c)}
	switch g {
	case GlyphCircle:
		s.Circle(at, r, st)
	case GlyphSquare:
		s.Rect(canvas.Rect{X: at.X - r, Y: at.Y - r, W: 2 * r, H: 2 * r}, st)
	case GlyphTriangle:
		s.Polygon([]canvas.Point{
			{X: at.X, Y: at.Y - r*1.2},
			{X: at.X + r*1.1, Y: at.Y + r*0.8},
			{X: at.X - r*1.1, Y: at.Y + r*0.8},
		}, st)
	}
}
