// Package theme defines the fixed palette and typography shared by every
// widget renderer.
//
// A [Theme] is an immutable value. Renderers receive it explicitly and only
// read from it; there is no process-wide style state. [Default] returns the
// dark cyber-security palette used by all four dashboards.
//
//	th := theme.Default()
//	fill := th.Color(theme.BgCard)
//	band := th.Alpha(theme.Critical, 0.9)
package theme

import (
	"fmt"
	"image/color"
	"maps"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// Name is a semantic color name.
type Name string

// Surface, brand and text colors.
const (
	BgDark        Name = "bg_dark"
	BgCard        Name = "bg_card"
	BgCardHover   Name = "bg_card_hover"
	Primary       Name = "primary"
	Secondary     Name = "secondary"
	Accent        Name = "accent"
	Warning       Name = "warning"
	Danger        Name = "danger"
	TextPrimary   Name = "text_primary"
	TextSecondary Name = "text_secondary"
	Border        Name = "border"
	Grid          Name = "grid"
	White         Name = "white"
)

// Severity tier colors. Tier names double as color names.
const (
	Critical Name = "critical"
	High     Name = "high"
	Medium   Name = "medium"
	Low      Name = "low"
	Info     Name = "info"
)

// StackOrder is the bottom-to-top order of severity tiers in stacked charts.
var StackOrder = []Name{Critical, High, Medium, Low}

// Rank returns the position of tier in [StackOrder], or len(StackOrder) for
// names that are not stackable tiers.
func Rank(tier Name) int {
	if i := slices.Index(StackOrder, tier); i >= 0 {
		return i
	}
	return len(StackOrder)
}

var defaultPalette = map[Name]string{
	BgDark:        "#0a0e1a",
	BgCard:        "#141b2d",
	BgCardHover:   "#1a2332",
	Primary:       "#6366f1",
	Secondary:     "#8b5cf6",
	Accent:        "#10b981",
	Warning:       "#f59e0b",
	Danger:        "#ef4444",
	TextPrimary:   "#e5e7eb",
	TextSecondary: "#9ca3af",
	Border:        "#1f2937",
	Grid:          "#1f2937",
	White:         "#ffffff",
	Critical:      "#dc2626",
	High:          "#f97316",
	Medium:        "#facc15",
	Low:           "#22c55e",
	Info:          "#3b82f6",
}

// Typography holds font sizes in points.
type Typography struct {
	Family     string
	Base       float64
	Small      float64
	Title      float64
	Subtitle   float64
	Panel      float64
	CardTitle  float64
	CardValue  float64
	GaugeValue float64
}

var defaultTypography = Typography{
	Family:     "Go",
	Base:       9,
	Small:      8,
	Title:      20,
	Subtitle:   11,
	Panel:      12,
	CardTitle:  10,
	CardValue:  28,
	GaugeValue: 40,
}

// Theme is an immutable palette plus typography.
type Theme struct {
	colors map[Name]color.NRGBA
	typo   Typography
}

// Default returns the standard dark theme.
func Default() *Theme {
	th, err := build(defaultPalette)
	if err != nil {
		panic(err) // palette literals are fixed
	}
	return th
}

func build(palette map[Name]string) (*Theme, error) {
	colors := make(map[Name]color.NRGBA, len(palette))
	for name, hex := range palette {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("color %s: %w", name, err)
		}
		r, g, b := c.RGB255()
		colors[name] = color.NRGBA{R: r, G: g, B: b, A: 0xff}
	}
	return &Theme{colors: colors, typo: defaultTypography}, nil
}

// WithOverrides returns a copy of t with the given colors replaced.
// Values are hex strings ("#rrggbb"). t itself is left untouched.
func (t *Theme) WithOverrides(overrides map[string]string) (*Theme, error) {
	palette := make(map[Name]string, len(t.colors)+len(overrides))
	for name, c := range t.colors {
		palette[name] = colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
	}
	for name, hex := range overrides {
		palette[Name(name)] = hex
	}
	th, err := build(palette)
	if err != nil {
		return nil, err
	}
	th.typo = t.typo
	return th, nil
}

// Color returns the named color. Unknown names fall back to TextPrimary.
func (t *Theme) Color(n Name) color.NRGBA {
	if c, ok := t.colors[n]; ok {
		return c
	}
	return t.colors[TextPrimary]
}

// Alpha returns the named color with opacity a in [0, 1].
func (t *Theme) Alpha(n Name, a float64) color.NRGBA {
	c := t.Color(n)
	c.A = uint8(clamp01(a)*255 + 0.5)
	return c
}

// Tint blends the named color toward target by f in [0, 1].
func (t *Theme) Tint(n, target Name, f float64) color.NRGBA {
	a, b := toColorful(t.Color(n)), toColorful(t.Color(target))
	r, g, bl := a.BlendRgb(b, clamp01(f)).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: 0xff}
}

// Background is the canvas background color.
func (t *Theme) Background() color.NRGBA {
	return t.Color(BgDark)
}

// Type returns the typography settings.
func (t *Theme) Type() Typography {
	return t.typo
}

// Names returns all defined color names in sorted order.
func (t *Theme) Names() []Name {
	return slices.Sorted(maps.Keys(t.colors))
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
