package widget

import (
	"math"
	"strings"

	"github.com/prive-edr/dashmock/pkg/canvas"
	"github.com/prive-edr/dashmock/pkg/theme"
)

// scale maps a data interval onto a pixel interval. Values outside the
// data interval are clamped to its ends.
type scale struct {
	min, max float64
	lo, hi   float64
}

func (sc scale) at(v float64) float64 {
	if sc.max == sc.min {
		return sc.lo
	}
	t := (v - sc.min) / (sc.max - sc.min)
	t = math.Max(0, math.Min(1, t))
	return sc.lo + t*(sc.hi-sc.lo)
}

// unit returns the pixel length of one data unit.
func (sc scale) unit() float64 {
	if sc.max == sc.min {
		return 0
	}
	return math.Abs(sc.hi-sc.lo) / (sc.max - sc.min)
}

type tick struct {
	v     float64
	label string
}

type axesSpec struct {
	xMin, xMax     float64
	yMin, yMax     float64
	xTicks, yTicks []tick // nil means automatic numeric ticks
	xLabel, yLabel string
	gridX, gridY   bool
}

type axes struct {
	plot           canvas.Rect
	x, y           scale
	xTicks, yTicks []tick
	spec           axesSpec
}

// layoutAxes reserves room for tick labels and axis titles inside body and
// returns the resulting plot transform. It does not draw.
func layoutAxes(s canvas.Surface, th *theme.Theme, body canvas.Rect, spec axesSpec) axes {
	if spec.xMax <= spec.xMin {
		spec.xMax = spec.xMin + 1
	}
	if spec.yMax <= spec.yMin {
		spec.yMax = spec.yMin + 1
	}
	xt := spec.xTicks
	if xt == nil {
		xt = numericTicks(spec.xMin, spec.xMax, 7)
	}
	yt := spec.yTicks
	if yt == nil {
		yt = numericTicks(spec.yMin, spec.yMax, 5)
	}

	tickTS := tickStyle(th)
	labelTS := axisLabelStyle(th)

	var yw float64
	for _, t := range yt {
		w, _ := s.MeasureText(t.label, tickTS)
		yw = math.Max(yw, w)
	}
	_, lineH := s.MeasureText("Mg", tickTS)
	xLines := 1
	for _, t := range xt {
		xLines = max(xLines, strings.Count(t.label, "\n")+1)
	}
	_, labelH := s.MeasureText("Mg", labelTS)

	left := yw + pad(s, 8)
	if spec.yLabel != "" {
		left += labelH + pad(s, 4)
	}
	bottom := float64(xLines)*lineH*1.1 + pad(s, 6)
	if spec.xLabel != "" {
		bottom += labelH + pad(s, 4)
	}
	top := pad(s, 4)
	right := pad(s, 10)

	plot := canvas.Rect{
		X: body.X + left,
		Y: body.Y + top,
		W: math.Max(0, body.W-left-right),
		H: math.Max(0, body.H-top-bottom),
	}
	return axes{
		plot:   plot,
		x:      scale{min: spec.xMin, max: spec.xMax, lo: plot.X, hi: plot.X + plot.W},
		y:      scale{min: spec.yMin, max: spec.yMax, lo: plot.Y + plot.H, hi: plot.Y},
		xTicks: xt,
		yTicks: yt,
		spec:   spec,
	}
}

// pt maps a data point to pixels.
func (a axes) pt(x, y float64) canvas.Point {
	return canvas.Pt(a.x.at(x), a.y.at(y))
}

// draw renders grid lines, spines, tick labels and axis titles.
func (a axes) draw(s canvas.Surface, th *theme.Theme) {
	if a.plot.Empty() {
		return
	}
	grid := canvas.Style{Stroke: th.Alpha(theme.TextSecondary, 0.2), LineWidth: 0.8, Dash: []float64{3, 3}}
	spine := canvas.Style{Stroke: th.Alpha(theme.TextSecondary, 0.5), LineWidth: 1}
	tickTS := tickStyle(th)
	p := a.plot

	for _, t := range a.yTicks {
		y := a.y.at(t.v)
		if a.spec.gridY {
			s.Line(canvas.Pt(p.X, y), canvas.Pt(p.X+p.W, y), grid)
		}
		ts := tickTS
		ts.Align = canvas.AlignRight
		s.Text(t.label, canvas.Pt(p.X-pad(s, 4), y), ts)
	}
	for _, t := range a.xTicks {
		x := a.x.at(t.v)
		if a.spec.gridX {
			s.Line(canvas.Pt(x, p.Y), canvas.Pt(x, p.Y+p.H), grid)
		}
		ts := tickTS
		ts.Align = canvas.AlignCenter
		ts.VAlign = canvas.VAlignTop
		drawLines(s, t.label, canvas.Pt(x, p.Y+p.H+pad(s, 4)), ts)
	}

	s.Line(canvas.Pt(p.X, p.Y), canvas.Pt(p.X, p.Y+p.H), spine)
	s.Line(canvas.Pt(p.X, p.Y+p.H), canvas.Pt(p.X+p.W, p.Y+p.H), spine)

	labelTS := axisLabelStyle(th)
	if a.spec.xLabel != "" {
		ts := labelTS
		ts.Align = canvas.AlignCenter
		ts.VAlign = canvas.VAlignBaseline
		b := s.Bounds()
		s.Text(a.spec.xLabel, canvas.Pt(p.X+p.W/2, b.H-pad(s, 8)), ts)
	}
	if a.spec.yLabel != "" {
		ts := labelTS
		ts.Align = canvas.AlignCenter
		ts.VAlign = canvas.VAlignTop
		ts.Vertical = true
		s.Text(a.spec.yLabel, canvas.Pt(pad(s, 8), p.Y+p.H/2), ts)
	}
}

func tickStyle(th *theme.Theme) canvas.TextStyle {
	return canvas.TextStyle{Size: th.Type().Base, Color: th.Color(theme.TextSecondary)}
}

func axisLabelStyle(th *theme.Theme) canvas.TextStyle {
	return canvas.TextStyle{Size: th.Type().CardTitle, Color: th.Color(theme.TextSecondary)}
}

// numericTicks returns evenly spaced ticks at round values within [lo, hi].
func numericTicks(lo, hi float64, n int) []tick {
	var out []tick
	for _, v := range niceTicks(lo, hi, n) {
		out = append(out, tick{v: v, label: formatValue(v)})
	}
	return out
}

// niceTicks picks about n tick positions at 1, 2 or 5 times a power of ten.
func niceTicks(lo, hi float64, n int) []float64 {
	if hi <= lo || n < 2 {
		return []float64{lo}
	}
	step := niceNum(niceNum(hi-lo, false)/float64(n-1), true)
	start := math.Ceil(lo/step) * step
	var out []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > hi+step*1e-9 {
			break
		}
		out = append(out, math.Round(v/step)*step)
	}
	return out
}

func niceNum(x float64, round bool) float64 {
	if x <= 0 {
		return 1
	}
	exp := math.Floor(math.Log10(x))
	pow := math.Pow(10, exp)
	f := x / pow
	var nf float64
	if round {
		switch {
		case f < 1.5:
			nf = 1
		case f < 3:
			nf = 2
		case f < 7:
			nf = 5
		default:
			nf = 10
		}
	} else {
		switch {
		case f <= 1:
			nf = 1
		case f <= 2:
			nf = 2
		case f <= 5:
			nf = 5
		default:
			nf = 10
		}
	}
	return nf * pow
}

// niceMax rounds v up to a value that lands on a tick.
func niceMax(v float64) float64 {
	if v <= 0 {
		return 1
	}
	step := niceNum(niceNum(v, false)/4, true)
	return math.Ceil(v/step) * step
}
