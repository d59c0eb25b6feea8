package widget

import (
	"math"

	"github.com/prive-edr/dashmock/pkg/canvas"
	"github.com/prive-edr/dashmock/pkg/fonts"
	"github.com/prive-edr/dashmock/pkg/theme"
)

// Gauge is a circular progress ring around a headline value.
type Gauge struct {
	Title    string
	Value    float64
	Max      float64 // default 100
	Display  string  // printed value, defaults to the formatted Value
	Label    string
	Subtitle string
	Color    theme.Name
}

func (Gauge) Kind() Kind { return KindGauge }

// fraction returns Value/Max clamped to [0, 1].
func (g Gauge) fraction() float64 {
	m := g.Max
	if m <= 0 {
		m = 100
	}
	return math.Max(0, math.Min(1, g.Value/m))
}

func (g Gauge) Render(s canvas.Surface, th *theme.Theme) {
	body := panel(s, th, g.Title)
	if body.Empty() {
		return
	}
	col := g.Color
	if col == "" {
		col = theme.Low
	}
	c := body.Center()
	outer := 0.42 * math.Min(body.W, body.H)
	ring := math.Min(pad(s, 14), outer*0.3)
	inner := outer - ring

	start := -math.Pi / 2
	s.Wedge(c, outer, inner, start, start+2*math.Pi, canvas.Style{Fill: th.Alpha(theme.TextSecondary, 0.2)})
	if f := g.fraction(); f > 0 {
		s.Wedge(c, outer, inner, start, start+2*math.Pi*f, canvas.Style{Fill: th.Color(col)})
	}

	typo := th.Type()
	display := g.Display
	if display == "" {
		display = formatValue(g.Value)
	}
	s.Text(display, canvas.Pt(c.X, c.Y-inner*0.15), canvas.TextStyle{
		Size: typo.GaugeValue, Color: th.Color(col), Weight: fonts.Bold, Align: canvas.AlignCenter,
	})
	s.Text(g.Label, canvas.Pt(c.X, c.Y+inner*0.35), canvas.TextStyle{
		Size: typo.Subtitle, Color: th.Color(theme.TextPrimary), Align: canvas.AlignCenter,
	})
	s.Text(g.Subtitle, canvas.Pt(c.X, c.Y+inner*0.6), canvas.TextStyle{
		Size: typo.Base, Color: th.Color(col), Align: canvas.AlignCenter,
	})
}
