package widget

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/prive-edr/dashmock/pkg/canvas"
	"github.com/prive-edr/dashmock/pkg/fonts"
	"github.com/prive-edr/dashmock/pkg/theme"
)

// Slice is one wedge of a Donut.
type Slice struct {
	Label string
	Value float64
	Color theme.Name
}

// Donut draws a ring (or, with Hole zero, a pie) of proportional wedges
// starting at 12 o'clock and running counter-clockwise.
type Donut struct {
	Title  string
	Slices []Slice
	Hole   float64 // inner radius as a fraction of the outer radius
	Format string  // percentage format, default "%.1f%%"
}

func (Donut) Kind() Kind { return KindDonut }

// arc is the angular extent of a wedge in screen radians.
type arc struct {
	start, end float64
}

func (a arc) mid() float64  { return (a.start + a.end) / 2 }
func (a arc) span() float64 { return math.Abs(a.end - a.start) }

// wedgeAngles returns the arc of each non-negative value, proportional to
// its share of the total. It returns nil when the total is not positive.
func wedgeAngles(values []float64) []arc {
	total, err := stats.Sum(values)
	if err != nil || total <= 0 {
		return nil
	}
	arcs := make([]arc, len(values))
	a := -math.Pi / 2
	for i, v := range values {
		sweep := 2 * math.Pi * v / total
		arcs[i] = arc{start: a, end: a - sweep}
		a -= sweep
	}
	return arcs
}

func (d Donut) Render(s canvas.Surface, th *theme.Theme) {
	body := panel(s, th, d.Title)
	if body.Empty() {
		return
	}
	values := make([]float64, len(d.Slices))
	for i, sl := range d.Slices {
		values[i] = math.Max(0, sl.Value)
	}
	arcs := wedgeAngles(values)
	if arcs == nil {
		return
	}

	center := body.Center()
	outer := 0.36 * math.Min(body.W, body.H*1.15)
	outer = math.Min(outer, body.H/2-pad(s, 12))
	if outer <= 0 {
		return
	}
	inner := outer * math.Max(0, math.Min(d.Hole, 0.95))
	format := d.Format
	if format == "" {
		format = "%.1f%%"
	}
	total, _ := stats.Sum(values)

	border := th.Color(theme.Border)
	for i, sl := range d.Slices {
		s.Wedge(center, outer, inner, arcs[i].start, arcs[i].end, canvas.Style{
			Fill: th.Color(sl.Color), Stroke: border, LineWidth: 2,
		})
	}

	pctTS := canvas.TextStyle{
		Size:   th.Type().CardTitle,
		Color:  th.Color(theme.TextPrimary),
		Weight: fonts.Bold,
		Align:  canvas.AlignCenter,
	}
	labelTS := pctTS
	for i, sl := range d.Slices {
		a := arcs[i]
		if a.span() == 0 {
			continue
		}
		m := a.mid()
		cos, sin := math.Cos(m), math.Sin(m)

		pr := outer * 0.6
		if inner > 0 {
			pr = (outer + inner) / 2
		}
		pct := fmt.Sprintf(format, 100*values[i]/total)
		s.Text(pct, canvas.Pt(center.X+pr*cos, center.Y+pr*sin), pctTS)

		lr := outer * 1.12
		ts := labelTS
		switch {
		case cos > 0.2:
			ts.Align = canvas.AlignLeft
		case cos < -0.2:
			ts.Align = canvas.AlignRight
		}
		s.Text(sl.Label, canvas.Pt(center.X+lr*cos, center.Y+lr*sin), ts)
	}
}
