package widget

import (
	"cmp"
	"slices"

	"github.com/montanaflynn/stats"

	"github.com/prive-edr/dashmock/pkg/canvas"
	"github.com/prive-edr/dashmock/pkg/theme"
)

// Layer is one severity tier of a stacked timeline.
type Layer struct {
	Tier   theme.Name
	Label  string
	Values []float64
}

// StackedTimeline draws severity tiers as cumulative filled bands. Layers
// are stacked bottom to top in [theme.StackOrder] regardless of the order
// they are given in; a missing or empty tier is a zero-height band.
type StackedTimeline struct {
	Title  string
	XLabel string
	YLabel string
	X      []float64
	Layers []Layer
	Legend Corner
}

func (StackedTimeline) Kind() Kind { return KindStackedTimeline }

// stackPlan is the computed geometry of a stacked timeline.
type stackPlan struct {
	ax      axes
	xs      []float64
	layers  []Layer
	bottoms [][]float64
	tops    [][]float64
}

// StackLayers orders layers by tier and returns, for each layer, its
// baseline and top at every one of n positions. The top of the last layer is
// the elementwise sum of all layers.
func StackLayers(layers []Layer, n int) (ordered []Layer, bottoms, tops [][]float64) {
	ordered = slices.Clone(layers)
	slices.SortStableFunc(ordered, func(a, b Layer) int {
		return cmp.Compare(theme.Rank(a.Tier), theme.Rank(b.Tier))
	})
	running := make([]float64, n)
	for _, l := range ordered {
		bottom := slices.Clone(running)
		for i := range running {
			running[i] += valueAt(l.Values, i)
		}
		bottoms = append(bottoms, bottom)
		tops = append(tops, slices.Clone(running))
	}
	return ordered, bottoms, tops
}

func (t StackedTimeline) points() int {
	if len(t.X) > 0 {
		return len(t.X)
	}
	n := 0
	for _, l := range t.Layers {
		n = max(n, len(l.Values))
	}
	return n
}

func (t StackedTimeline) xs() []float64 {
	if len(t.X) > 0 {
		return t.X
	}
	xs := make([]float64, t.points())
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

func (t StackedTimeline) plan(s canvas.Surface, th *theme.Theme, body canvas.Rect) stackPlan {
	n := t.points()
	xs := t.xs()
	layers, bottoms, tops := StackLayers(t.Layers, n)

	spec := axesSpec{xLabel: t.XLabel, yLabel: t.YLabel, gridX: true, gridY: true}
	if n > 0 {
		spec.xMin, spec.xMax = xs[0], xs[n-1]
	}
	if len(tops) > 0 {
		if m, err := stats.Max(tops[len(tops)-1]); err == nil {
			spec.yMax = niceMax(m * 1.05)
		}
	}
	return stackPlan{ax: layoutAxes(s, th, body, spec), xs: xs, layers: layers, bottoms: bottoms, tops: tops}
}

func (t StackedTimeline) Render(s canvas.Surface, th *theme.Theme) {
	body := panel(s, th, t.Title)
	p := t.plan(s, th, body)
	p.ax.draw(s, th)

	var legend []legendEntry
	for li, l := range p.layers {
		alpha := bandAlpha(l.Tier)
		if len(p.xs) > 0 {
			poly := make([]canvas.Point, 0, 2*len(p.xs))
			for i, x := range p.xs {
				poly = append(poly, p.ax.pt(x, p.tops[li][i]))
			}
			for i := len(p.xs) - 1; i >= 0; i-- {
				poly = append(poly, p.ax.pt(p.xs[i], p.bottoms[li][i]))
			}
			s.Polygon(poly, canvas.Style{Fill: th.Alpha(l.Tier, alpha)})
		}
		label := l.Label
		if label == "" {
			label = string(l.Tier)
		}
		legend = append(legend, legendEntry{label: label, fill: l.Tier, alpha: alpha})
	}
	drawLegend(s, th, p.ax.plot, legend, t.Legend)
}

// bandAlpha fades each tier a little more than the one below it.
func bandAlpha(tier theme.Name) float64 {
	return max(0.5, 0.9-0.1*float64(theme.Rank(tier)))
}
