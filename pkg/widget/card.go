package widget

import (
	"github.com/prive-edr/dashmock/pkg/canvas"
	"github.com/prive-edr/dashmock/pkg/fonts"
	"github.com/prive-edr/dashmock/pkg/theme"
)

// MetricCard is a headline number with a title and an optional subtitle.
// Value and Subtitle are pre-formatted by the caller.
type MetricCard struct {
	Title    string
	Value    string
	Subtitle string
	Trend    float64 // > 0 colors the subtitle with the accent color
}

func (MetricCard) Kind() Kind { return KindMetricCard }

func (m MetricCard) Render(s canvas.Surface, th *theme.Theme) {
	b := s.Bounds()
	card := canvas.Rect{X: 0.05 * b.W, Y: 0.1 * b.H, W: 0.9 * b.W, H: 0.8 * b.H}
	s.RoundedRect(card, pad(s, 8), canvas.Style{
		Fill:      th.Alpha(theme.BgCard, 0.9),
		Stroke:    th.Color(theme.Border),
		LineWidth: 2,
	})

	typo := th.Type()
	cx := b.W / 2
	s.Text(m.Title, canvas.Pt(cx, 0.25*b.H), canvas.TextStyle{
		Size:  typo.CardTitle,
		Color: th.Color(theme.TextSecondary),
		Align: canvas.AlignCenter,
	})
	if m.Value != "" {
		s.Text(m.Value, canvas.Pt(cx, 0.55*b.H), canvas.TextStyle{
			Size:   typo.CardValue,
			Color:  th.Color(theme.TextPrimary),
			Weight: fonts.Bold,
			Align:  canvas.AlignCenter,
		})
	}
	if m.Subtitle != "" {
		s.Text(m.Subtitle, canvas.Pt(cx, 0.75*b.H), canvas.TextStyle{
			Size:  typo.Base,
			Color: th.Color(m.subtitleColor()),
			Align: canvas.AlignCenter,
		})
	}
}

func (m MetricCard) subtitleColor() theme.Name {
	if m.Trend > 0 {
		return theme.Accent
	}
	return theme.TextSecondary
}
