package widget

import (
	"math"

	"github.com/prive-edr/dashmock/pkg/canvas"
	"github.com/prive-edr/dashmock/pkg/fonts"
	"github.com/prive-edr/dashmock/pkg/theme"
)

// Marker is the status symbol at the start of a list row.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerDot
	MarkerCheck
	MarkerWarn
)

// Row is one record of a TextList.
type Row struct {
	Label string
	Meta  string
	Value string
	Color theme.Name // accent for the marker, value and box edge
	// MetaColor overrides the metadata color (text_secondary by default).
	MetaColor theme.Name
	Marker    Marker
	MonoMeta  bool
}

// TextList stacks rows top to bottom at a fixed pitch. Row i occupies
// [Top + i*RowHeight, Top + (i+1)*RowHeight) of the body height. Rows that
// would extend past the body are the caller's concern; supply only as many
// as fit.
type TextList struct {
	Title     string
	Rows      []Row
	Top       float64 // fraction of body height, default 0.04
	RowHeight float64 // fraction of body height, default 0.155
	Boxed     bool
	// EdgeByRow strokes each box with the row color instead of the border.
	EdgeByRow bool
}

func (TextList) Kind() Kind { return KindTextList }

func (l TextList) pitch() (top, step float64) {
	top, step = l.Top, l.RowHeight
	if top <= 0 {
		top = 0.04
	}
	if step <= 0 {
		step = 0.155
	}
	return top, step
}

// RowRect returns the rectangle of row i within body.
func (l TextList) RowRect(i int, body canvas.Rect) canvas.Rect {
	top, step := l.pitch()
	return canvas.Rect{
		X: body.X,
		Y: body.Y + (top+float64(i)*step)*body.H,
		W: body.W,
		H: step * 0.85 * body.H,
	}
}

func (l TextList) Render(s canvas.Surface, th *theme.Theme) {
	body := panel(s, th, l.Title)
	typo := th.Type()
	for i, row := range l.Rows {
		rc := l.RowRect(i, body)
		accent := row.Color
		if accent == "" {
			accent = theme.TextPrimary
		}
		if l.Boxed {
			edge := th.Color(theme.Border)
			if l.EdgeByRow {
				edge = th.Alpha(accent, 0.6)
			}
			s.RoundedRect(rc, pad(s, 3), canvas.Style{
				Fill: th.Alpha(theme.BgCardHover, 0.6), Stroke: edge, LineWidth: 1.5,
			})
		}

		x := rc.X + pad(s, 6)
		cy := rc.Y + rc.H/2
		if row.Marker != MarkerNone {
			r := math.Min(rc.H*0.18, pad(s, 6))
			drawMarker(s, th, row.Marker, canvas.Pt(x+r, cy), r, accent)
			x += 2*r + pad(s, 6)
		}

		labelY, metaY := cy, cy
		if row.Meta != "" {
			labelY = rc.Y + rc.H*0.32
			metaY = rc.Y + rc.H*0.72
		}
		s.Text(row.Label, canvas.Pt(x, labelY), canvas.TextStyle{
			Size: typo.CardTitle, Color: th.Color(theme.TextPrimary), Weight: fonts.Bold,
		})
		if row.Meta != "" {
			meta := canvas.TextStyle{Size: typo.Base, Color: th.Color(theme.TextSecondary)}
			if row.MetaColor != "" {
				meta.Color = th.Color(row.MetaColor)
			}
			if row.MonoMeta {
				meta.Weight = fonts.Mono
				meta.Size = typo.Small
			}
			s.Text(row.Meta, canvas.Pt(x, metaY), meta)
		}
		if row.Value != "" {
			s.Text(row.Value, canvas.Pt(rc.X+rc.W-pad(s, 6), cy), canvas.TextStyle{
				Size: typo.Base, Color: th.Color(accent), Weight: fonts.Bold, Align: canvas.AlignRight,
			})
		}
	}
}

func drawMarker(s canvas.Surface, th *theme.Theme, m Marker, c canvas.Point, r float64, col theme.Name) {
	switch m {
	case MarkerDot:
		s.Circle(c, r, canvas.Style{Fill: th.Alpha(col, 0.9)})
	case MarkerCheck:
		s.Circle(c, r, canvas.Style{Fill: th.Alpha(col, 0.9)})
		s.Polyline([]canvas.Point{
			{X: c.X - r*0.5, Y: c.Y},
			{X: c.X - r*0.1, Y: c.Y + r*0.4},
			{X: c.X + r*0.5, Y: c.Y - r*0.4},
		}, canvas.Style{Stroke: th.Color(theme.White), LineWidth: 1.5})
	case MarkerWarn:
		s.Polygon([]canvas.Point{
			{X: c.X, Y: c.Y - r},
			{X: c.X + r, Y: c.Y + r*0.8},
			{X: c.X - r, Y: c.Y + r*0.8},
		}, canvas.Style{Fill: th.Alpha(col, 0.9)})
		s.Text("!", canvas.Pt(c.X, c.Y+r*0.15), canvas.TextStyle{
			Size: th.Type().Small, Color: th.Color(theme.BgDark), Weight: fonts.Bold, Align: canvas.AlignCenter,
		})
	}
}
