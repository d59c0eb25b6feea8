package canvas

import (
	"image/color"
	"slices"
)

// OpKind identifies a recorded primitive.
type OpKind string

const (
	OpRect        OpKind = "rect"
	OpRoundedRect OpKind = "rounded-rect"
	OpCircle      OpKind = "circle"
	OpLine        OpKind = "line"
	OpPolyline    OpKind = "polyline"
	OpPolygon     OpKind = "polygon"
	OpWedge       OpKind = "wedge"
	OpText        OpKind = "text"
)

// Op is one recorded drawing call in absolute surface coordinates.
type Op struct {
	Kind   OpKind
	Rect   Rect    // rect, rounded-rect
	Points []Point // line (2 points), polyline, polygon; circle and wedge center
	Radius float64 // rounded-rect corner, circle, wedge outer radius
	Inner  float64 // wedge inner radius
	Start  float64 // wedge start angle
	End    float64 // wedge end angle
	Text   string
	Style  Style
	Font   TextStyle
}

// Recorder is a Surface that draws nothing and remembers every call.
type Recorder struct {
	W, H float64
	DPI  float64
	Ops  []Op
}

// NewRecorder creates a recorder of the given pixel size at 150 DPI.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h, DPI: 150}
}

func (r *Recorder) Bounds() Rect { return Rect{W: r.W, H: r.H} }

func (r *Recorder) PxPerPt() float64 {
	if r.DPI <= 0 {
		return 1
	}
	return r.DPI / 72
}

func (r *Recorder) Rect(rc Rect, st Style) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Rect: rc, Style: st})
}

func (r *Recorder) RoundedRect(rc Rect, radius float64, st Style) {
	r.Ops = append(r.Ops, Op{Kind: OpRoundedRect, Rect: rc, Radius: radius, Style: st})
}

func (r *Recorder) Circle(c Point, radius float64, st Style) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Points: []Point{c}, Radius: radius, Style: st})
}

func (r *Recorder) Line(a, b Point, st Style) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Points: []Point{a, b}, Style: st})
}

func (r *Recorder) Polyline(pts []Point, st Style) {
	r.Ops = append(r.Ops, Op{Kind: OpPolyline, Points: slices.Clone(pts), Style: st})
}

func (r *Recorder) Polygon(pts []Point, st Style) {
	r.Ops = append(r.Ops, Op{Kind: OpPolygon, Points: slices.Clone(pts), Style: st})
}

func (r *Recorder) Wedge(c Point, outer, inner, start, end float64, st Style) {
	r.Ops = append(r.Ops, Op{Kind: OpWedge, Points: []Point{c}, Radius: outer, Inner: inner, Start: start, End: end, Style: st})
}

func (r *Recorder) Text(s string, at Point, ts TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Points: []Point{at}, Text: s, Font: ts})
}

// MeasureText approximates glyph metrics: 0.6em per rune, 1em tall.
func (r *Recorder) MeasureText(s string, ts TextStyle) (float64, float64) {
	em := textSize(ts) * r.PxPerPt()
	return float64(len([]rune(s))) * em * 0.6, em
}

// Filter returns the recorded ops of the given kind in call order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// FilledWith returns ops of kind whose fill color equals c.
func (r *Recorder) FilledWith(kind OpKind, c color.Color) []Op {
	var out []Op
	for _, op := range r.Filter(kind) {
		if op.Style.Fill != nil && sameColor(op.Style.Fill, c) {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns every recorded string in call order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Filter(OpText) {
		out = append(out, op.Text)
	}
	return out
}

// Reset discards all recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
