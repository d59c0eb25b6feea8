package canvas

// view is a Surface restricted to a rectangle of its parent.
type view struct {
	parent Surface
	area   Rect
}

// Sub returns a Surface whose origin is the top-left corner of r in s.
// Nested views compose, so a view of a view is offset by both rectangles.
func Sub(s Surface, r Rect) Surface {
	if v, ok := s.(*view); ok {
		return &view{parent: v.parent, area: r.Translate(v.area.Min())}
	}
	return &view{parent: s, area: r}
}

func (v *view) off(p Point) Point {
	return Point{p.X + v.area.X, p.Y + v.area.Y}
}

func (v *view) offAll(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = v.off(p)
	}
	return out
}

func (v *view) Bounds() Rect     { return Rect{W: v.area.W, H: v.area.H} }
func (v *view) PxPerPt() float64 { return v.parent.PxPerPt() }

func (v *view) Rect(r Rect, st Style) { v.parent.Rect(r.Translate(v.area.Min()), st) }
func (v *view) RoundedRect(r Rect, radius float64, st Style) {
	v.parent.RoundedRect(r.Translate(v.area.Min()), radius, st)
}
func (v *view) Circle(c Point, radius float64, st Style) { v.parent.Circle(v.off(c), radius, st) }
func (v *view) Line(a, b Point, st Style)                { v.parent.Line(v.off(a), v.off(b), st) }
func (v *view) Polyline(pts []Point, st Style)           { v.parent.Polyline(v.offAll(pts), st) }
func (v *view) Polygon(pts []Point, st Style)            { v.parent.Polygon(v.offAll(pts), st) }
func (v *view) Wedge(c Point, outer, inner, start, end float64, st Style) {
	v.parent.Wedge(v.off(c), outer, inner, start, end, st)
}
func (v *view) Text(s string, at Point, ts TextStyle) { v.parent.Text(s, v.off(at), ts) }
func (v *view) MeasureText(s string, ts TextStyle) (float64, float64) {
	return v.parent.MeasureText(s, ts)
}
