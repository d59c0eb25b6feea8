package canvas

import (
	"image/color"
	"math"

	"github.com/prive-edr/dashmock/pkg/fonts"
)

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{r.X, r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{r.X + r.W, r.Y + r.H} }

// Center returns the midpoint.
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Inset shrinks r by dx on the left and right and dy on the top and bottom.
// The result never has negative size.
func (r Rect) Inset(dx, dy float64) Rect {
	w := math.Max(0, r.W-2*dx)
	h := math.Max(0, r.H-2*dy)
	return Rect{X: r.X + dx, Y: r.Y + dy, W: w, H: h}
}

// Overlaps reports whether r and o share interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Translate returns r moved by p.
func (r Rect) Translate(p Point) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, W: r.W, H: r.H}
}

// Style describes fill and stroke for a shape. A nil color disables that
// part of the shape.
type Style struct {
	Fill      color.Color
	Stroke    color.Color
	LineWidth float64   // points
	Dash      []float64 // points, alternating on/off
}

// Align is horizontal text alignment relative to the anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// VAlign is vertical text alignment relative to the anchor point.
type VAlign int

const (
	VAlignMiddle VAlign = iota
	VAlignTop
	VAlignBaseline
	VAlignBottom
)

// TextStyle describes how a string is drawn.
type TextStyle struct {
	Size     float64 // points
	Color    color.Color
	Weight   fonts.Weight
	Align    Align
	VAlign   VAlign
	Vertical bool // rotate 90° counter-clockwise around the anchor
}

// Surface is the set of drawing primitives available to renderers.
//
// Angles are radians in screen space: 0 points right and positive angles
// turn clockwise because the y axis points down.
type Surface interface {
	// Bounds is the drawable area in the surface's own coordinates.
	Bounds() Rect
	// PxPerPt converts point sizes to pixels.
	PxPerPt() float64

	Rect(r Rect, st Style)
	RoundedRect(r Rect, radius float64, st Style)
	Circle(c Point, radius float64, st Style)
	Line(a, b Point, st Style)
	Polyline(pts []Point, st Style)
	Polygon(pts []Point, st Style)
	// Wedge draws the sector between start and end angles. A zero inner
	// radius draws a pie slice, a positive one an annular segment.
	Wedge(c Point, outer, inner, start, end float64, st Style)

	Text(s string, at Point, ts TextStyle)
	MeasureText(s string, ts TextStyle) (w, h float64)
}

// anchors converts alignment into gg-style anchor fractions.
func anchors(ts TextStyle) (ax, ay float64) {
	switch ts.Align {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1
	}
	switch ts.VAlign {
	case VAlignMiddle:
		ay = 0.5
	case VAlignTop:
		ay = 1
	case VAlignBottom:
		ay = -0.25
	}
	return ax, ay
}
