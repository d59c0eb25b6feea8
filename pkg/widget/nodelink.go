package widget

import (
	"math"
	"strings"

	"github.com/prive-edr/dashmock/pkg/canvas"
	"github.com/prive-edr/dashmock/pkg/fonts"
	"github.com/prive-edr/dashmock/pkg/theme"
)

// Node is a labeled circle at caller-chosen logical coordinates. Y grows
// upward, as on a chart.
type Node struct {
	ID    string
	Label string
	X, Y  float64
	Color theme.Name
}

// Edge connects two nodes by ID.
type Edge struct {
	From, To string
}

// NodeLink draws a small declarative diagram such as a process tree. It
// computes no layout: node positions are taken as given.
type NodeLink struct {
	Title  string
	Nodes  []Node
	Edges  []Edge
	Extent float64 // logical width and height, default 10
	Radius float64 // logical node radius, default 0.4
}

func (NodeLink) Kind() Kind { return KindNodeLink }

// transform maps logical coordinates into body, preserving aspect ratio.
type transform struct {
	scale  float64
	origin canvas.Point // pixel position of logical (0, 0)
}

func (t transform) pt(x, y float64) canvas.Point {
	return canvas.Pt(t.origin.X+x*t.scale, t.origin.Y-y*t.scale)
}

func (n NodeLink) transform(body canvas.Rect) transform {
	ext := n.Extent
	if ext <= 0 {
		ext = 10
	}
	sc := math.Min(body.W, body.H) / ext
	ox := body.X + (body.W-ext*sc)/2
	oy := body.Y + (body.H+ext*sc)/2
	return transform{scale: sc, origin: canvas.Pt(ox, oy)}
}

func (n NodeLink) radius() float64 {
	if n.Radius <= 0 {
		return 0.4
	}
	return n.Radius
}

func (n NodeLink) Render(s canvas.Surface, th *theme.Theme) {
	body := panel(s, th, n.Title)
	if body.Empty() {
		return
	}
	tf := n.transform(body)
	r := n.radius()

	byID := make(map[string]Node, len(n.Nodes))
	for _, nd := range n.Nodes {
		byID[nd.ID] = nd
	}
	edge := canvas.Style{Stroke: th.Alpha(theme.TextSecondary, 0.5), LineWidth: 1.5, Dash: []float64{4, 3}}
	for _, e := range n.Edges {
		from, ok1 := byID[e.From]
		to, ok2 := byID[e.To]
		if !ok1 || !ok2 {
			continue
		}
		s.Line(tf.pt(from.X, from.Y-r*0.75), tf.pt(to.X, to.Y+r*0.75), edge)
	}

	typo := th.Type()
	for _, nd := range n.Nodes {
		c := tf.pt(nd.X, nd.Y)
		s.Circle(c, r*tf.scale, canvas.Style{
			Fill: th.Alpha(nd.Color, 0.8), Stroke: th.Color(theme.Border), LineWidth: 2,
		})
		s.Text(shortName(nd.Label), c, canvas.TextStyle{
			Size: typo.Small - 1, Color: th.Color(theme.White), Weight: fonts.Bold, Align: canvas.AlignCenter,
		})
		s.Text(nd.Label, tf.pt(nd.X, nd.Y-r*1.75), canvas.TextStyle{
			Size: typo.Small - 1, Color: th.Color(theme.TextSecondary), Align: canvas.AlignCenter, VAlign: canvas.VAlignTop,
		})
	}
}

// shortName strips the extension and truncates to eight characters.
func shortName(label string) string {
	base, _, _ := strings.Cut(label, ".")
	if r := []rune(base); len(r) > 8 {
		return string(r[:8])
	}
	return base
}
