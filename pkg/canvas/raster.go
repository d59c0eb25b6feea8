package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/prive-edr/dashmock/pkg/fonts"
)

// Raster is a Surface backed by an in-memory RGBA image.
//
// A Raster is exclusively owned by the generation that created it. Call
// Release once the image has been exported.
type Raster struct {
	dc    *gg.Context
	faces *fonts.Cache
	dpi   float64
	bg    color.Color
	w, h  int
}

// NewRaster allocates a w×h pixel canvas filled with bg. dpi controls the
// pixel size of point-based measurements.
func NewRaster(w, h int, dpi float64, bg color.Color) *Raster {
	dc := gg.NewContext(w, h)
	dc.SetColor(bg)
	dc.Clear()
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	return &Raster{dc: dc, faces: fonts.NewCache(dpi), dpi: dpi, bg: bg, w: w, h: h}
}

// Size returns the canvas size in pixels.
func (r *Raster) Size() (w, h int) { return r.w, r.h }

// DPI returns the resolution the raster was created with.
func (r *Raster) DPI() float64 { return r.dpi }

// Background returns the fill color the canvas was cleared with.
func (r *Raster) Background() color.Color { return r.bg }

// Image returns the rendered image, or nil after Release.
func (r *Raster) Image() image.Image {
	if r.dc == nil {
		return nil
	}
	return r.dc.Image()
}

// Release frees the drawing context and cached font faces. It is safe to
// call more than once.
func (r *Raster) Release() {
	if r.dc == nil {
		return
	}
	_ = r.faces.Close()
	r.dc = nil
}

// Released reports whether Release has been called.
func (r *Raster) Released() bool { return r.dc == nil }

func (r *Raster) Bounds() Rect     { return Rect{W: float64(r.w), H: float64(r.h)} }
func (r *Raster) PxPerPt() float64 { return r.dpi / 72 }

func (r *Raster) Rect(rc Rect, st Style) {
	r.dc.DrawRectangle(rc.X, rc.Y, rc.W, rc.H)
	r.paint(st)
}

func (r *Raster) RoundedRect(rc Rect, radius float64, st Style) {
	radius = math.Min(radius, math.Min(rc.W, rc.H)/2)
	r.dc.DrawRoundedRectangle(rc.X, rc.Y, rc.W, rc.H, radius)
	r.paint(st)
}

func (r *Raster) Circle(c Point, radius float64, st Style) {
	r.dc.DrawCircle(c.X, c.Y, radius)
	r.paint(st)
}

func (r *Raster) Line(a, b Point, st Style) {
	r.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	st.Fill = nil
	r.paint(st)
}

func (r *Raster) Polyline(pts []Point, st Style) {
	if len(pts) < 2 {
		return
	}
	r.dc.NewSubPath()
	r.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	st.Fill = nil
	r.paint(st)
}

func (r *Raster) Polygon(pts []Point, st Style) {
	if len(pts) < 3 {
		return
	}
	r.dc.NewSubPath()
	r.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	r.dc.ClosePath()
	r.paint(st)
}

func (r *Raster) Wedge(c Point, outer, inner, start, end float64, st Style) {
	if outer <= 0 || start == end {
		return
	}
	r.dc.NewSubPath()
	if inner <= 0 {
		r.dc.MoveTo(c.X, c.Y)
		r.dc.DrawArc(c.X, c.Y, outer, start, end)
	} else {
		r.dc.DrawArc(c.X, c.Y, outer, start, end)
		r.dc.DrawArc(c.X, c.Y, inner, end, start)
	}
	r.dc.ClosePath()
	r.paint(st)
}

func (r *Raster) Text(s string, at Point, ts TextStyle) {
	if s == "" {
		return
	}
	r.dc.SetFontFace(r.face(ts))
	r.dc.SetColor(textColor(ts))
	ax, ay := anchors(ts)
	if ts.Vertical {
		r.dc.Push()
		r.dc.RotateAbout(-math.Pi/2, at.X, at.Y)
		r.dc.DrawStringAnchored(s, at.X, at.Y, ax, ay)
		r.dc.Pop()
		return
	}
	r.dc.DrawStringAnchored(s, at.X, at.Y, ax, ay)
}

func (r *Raster) MeasureText(s string, ts TextStyle) (float64, float64) {
	r.dc.SetFontFace(r.face(ts))
	return r.dc.MeasureString(s)
}

func (r *Raster) face(ts TextStyle) font.Face {
	f, err := r.faces.Face(ts.Weight, textSize(ts))
	if err != nil {
		return basicfont.Face7x13
	}
	return f
}

// paint fills and then strokes the current path.
func (r *Raster) paint(st Style) {
	if st.Fill != nil {
		r.dc.SetColor(st.Fill)
		if st.Stroke != nil {
			r.dc.FillPreserve()
		} else {
			r.dc.Fill()
		}
	}
	if st.Stroke != nil {
		lw := st.LineWidth
		if lw <= 0 {
			lw = 1
		}
		scale := r.PxPerPt()
		r.dc.SetColor(st.Stroke)
		r.dc.SetLineWidth(lw * scale)
		if len(st.Dash) > 0 {
			dash := make([]float64, len(st.Dash))
			for i, d := range st.Dash {
				dash[i] = d * scale
			}
			r.dc.SetDash(dash...)
		} else {
			r.dc.SetDash()
		}
		r.dc.Stroke()
	}
	r.dc.ClearPath()
}

func textSize(ts TextStyle) float64 {
	if ts.Size <= 0 {
		return 9
	}
	return ts.Size
}

func textColor(ts TextStyle) color.Color {
	if ts.Color == nil {
		return color.White
	}
	return ts.Color
}
