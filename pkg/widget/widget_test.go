package widget

import (
	"image/color"
	"math"
	"slices"
	"testing"

	"github.com/prive-edr/dashmock/pkg/canvas"
	"github.com/prive-edr/dashmock/pkg/theme"
)

const eps = 1e-9

func hours(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

func TestStackLayersOrderAndSums(t *testing.T) {
	layers := []Layer{
		{Tier: theme.Low, Values: []float64{20, 18, 22}},
		{Tier: theme.Critical, Values: []float64{2, 0, 3}},
		{Tier: theme.Medium, Values: nil},
		{Tier: theme.High, Values: []float64{5, 7}},
	}
	ordered, bottoms, tops := StackLayers(layers, 3)

	var tiers []theme.Name
	for _, l := range ordered {
		tiers = append(tiers, l.Tier)
	}
	want := []theme.Name{theme.Critical, theme.High, theme.Medium, theme.Low}
	if !slices.Equal(tiers, want) {
		t.Fatalf("order = %v, want %v", tiers, want)
	}

	// Each baseline is the previous layer's top.
	for i := 1; i < len(tops); i++ {
		if !slices.Equal(bottoms[i], tops[i-1]) {
			t.Errorf("layer %d bottom %v != layer %d top %v", i, bottoms[i], i-1, tops[i-1])
		}
	}
	// Empty medium tier is a zero-height band.
	if !slices.Equal(bottoms[2], tops[2]) {
		t.Errorf("empty tier should have zero height: %v vs %v", bottoms[2], tops[2])
	}
	// Short high tier is padded with zeros.
	if got := tops[1][2]; got != 3 {
		t.Errorf("high top at x=2 = %v, want 3", got)
	}
	if got := tops[3]; !slices.Equal(got, []float64{27, 25, 25}) {
		t.Errorf("outer top = %v, want [27 25 25]", got)
	}
}

func TestStackedTimelineOuterBoundaryIsSum(t *testing.T) {
	th := theme.Default()
	spec := StackedTimeline{
		Title: "Threat Detection Timeline",
		X:     hours(24),
		Layers: []Layer{
			{Tier: theme.Low, Values: make([]float64, 24)},
			{Tier: theme.Critical, Values: make([]float64, 24)},
			{Tier: theme.High, Values: make([]float64, 24)},
			{Tier: theme.Medium, Values: make([]float64, 24)},
		},
	}
	sums := make([]float64, 24)
	for li, l := range spec.Layers {
		for i := range l.Values {
			v := float64((i*7+li*13)%11 + li)
			l.Values[i] = v
			sums[i] += v
		}
	}

	rec := canvas.NewRecorder(1400, 320)
	spec.Render(rec, th)

	outer := rec.FilledWith(canvas.OpPolygon, th.Alpha(theme.Low, bandAlpha(theme.Low)))
	if len(outer) != 1 {
		t.Fatalf("found %d low-tier bands, want 1", len(outer))
	}
	pts := outer[0].Points
	if len(pts) != 48 {
		t.Fatalf("band has %d points, want 48", len(pts))
	}

	body := panelBody(rec, th, spec.Title, false)
	p := spec.plan(rec, th, body)
	for i := range 24 {
		want := p.ax.y.at(sums[i])
		if math.Abs(pts[i].Y-want) > eps {
			t.Errorf("x=%d top y = %v, want %v (sum %v)", i, pts[i].Y, want, sums[i])
		}
		if math.Abs(pts[i].X-p.ax.x.at(float64(i))) > eps {
			t.Errorf("x=%d top x = %v, want %v", i, pts[i].X, p.ax.x.at(float64(i)))
		}
	}

	if bands := rec.Filter(canvas.OpPolygon); len(bands) != 4 {
		t.Errorf("drew %d bands, want 4", len(bands))
	}
}

func TestBarRankingCountAndOrder(t *testing.T) {
	th := theme.Default()
	tests := []struct {
		name   string
		labels []string
		values []float64
	}{
		{"five hosts", []string{"DESKTOP-A4F21", "LAPTOP-8B92E", "SERVER-DC01", "WORKSTATION-45", "DEVBOX-STAGING"}, []float64{18, 14, 12, 9, 7}},
		{"unsorted", []string{"a", "b", "c"}, []float64{1, 30, 5}},
		{"single", []string{"only"}, []float64{4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := BarRanking{Title: "Top", Color: theme.Danger}
			for i, l := range tt.labels {
				spec.Bars = append(spec.Bars, Bar{Label: l, Value: tt.values[i], Annotation: l + "!"})
			}

			rec := canvas.NewRecorder(900, 400)
			spec.Render(rec, th)

			bars := rec.FilledWith(canvas.OpRect, th.Alpha(theme.Danger, 0.8))
			if len(bars) != len(tt.values) {
				t.Fatalf("drew %d bars, want %d", len(bars), len(tt.values))
			}
			for i := 1; i < len(bars); i++ {
				if bars[i].Rect.Y <= bars[i-1].Rect.Y {
					t.Errorf("bar %d (y=%v) not below bar %d (y=%v)", i, bars[i].Rect.Y, i-1, bars[i-1].Rect.Y)
				}
			}
			for i := range bars {
				for j := range bars {
					if tt.values[i] > tt.values[j] && bars[i].Rect.W <= bars[j].Rect.W {
						t.Errorf("bar %d (%v) should be wider than bar %d (%v)", i, tt.values[i], j, tt.values[j])
					}
				}
			}

			var annotations []string
			for _, s := range rec.Texts() {
				if len(s) > 0 && s[len(s)-1] == '!' {
					annotations = append(annotations, s)
				}
			}
			var want []string
			for _, l := range tt.labels {
				want = append(want, l+"!")
			}
			if !slices.Equal(annotations, want) {
				t.Errorf("annotations = %v, want %v", annotations, want)
			}
		})
	}
}

func TestColorFor(t *testing.T) {
	thresholds := []Threshold{{Min: 16, Color: theme.Danger}, {Min: 9, Color: theme.Warning}}
	tests := []struct {
		name string
		bar  Bar
		def  theme.Name
		want theme.Name
	}{
		{"above top", Bar{Value: 22}, theme.Accent, theme.Danger},
		{"middle", Bar{Value: 12}, theme.Accent, theme.Warning},
		{"boundary", Bar{Value: 9}, theme.Accent, theme.Warning},
		{"below", Bar{Value: 3}, theme.Accent, theme.Accent},
		{"fixed color wins", Bar{Value: 22, Color: theme.Info}, theme.Accent, theme.Info},
		{"no default", Bar{Value: 1}, "", theme.Primary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorFor(tt.bar, thresholds, tt.def); got != tt.want {
				t.Errorf("colorFor = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCategoryBarsReferenceAndRange(t *testing.T) {
	th := theme.Default()
	spec := CategoryBars{
		Title: "Compliance",
		Bars: []Bar{
			{Label: "SOC 2", Value: 100}, {Label: "HIPAA", Value: 99},
			{Label: "GDPR", Value: 98}, {Label: "PCI DSS", Value: 97},
		},
		Thresholds: []Threshold{{Min: 98, Color: theme.Accent}},
		Color:      theme.Warning,
		YMin:       90,
		YMax:       105,
		Reference:  &Reference{Value: 95, Color: theme.Danger},
	}
	rec := canvas.NewRecorder(800, 300)
	spec.Render(rec, th)

	accent := rec.FilledWith(canvas.OpRect, th.Alpha(theme.Accent, 0.8))
	warn := rec.FilledWith(canvas.OpRect, th.Alpha(theme.Warning, 0.8))
	if len(accent) != 3 || len(warn) != 1 {
		t.Errorf("accent bars = %d, warning bars = %d; want 3 and 1", len(accent), len(warn))
	}
	for i := 1; i < len(accent); i++ {
		if accent[i].Rect.X <= accent[i-1].Rect.X {
			t.Error("bars should run left to right in input order")
		}
		if accent[i].Rect.H >= accent[i-1].Rect.H {
			t.Error("lower values should give shorter bars")
		}
	}

	var refs int
	for _, op := range rec.Filter(canvas.OpLine) {
		if op.Style.Stroke != nil && op.Style.Stroke == color.Color(th.Alpha(theme.Danger, 0.5)) {
			refs++
			if op.Points[0].Y != op.Points[1].Y {
				t.Error("reference line should be horizontal")
			}
		}
	}
	if refs != 1 {
		t.Errorf("reference lines = %d, want 1", refs)
	}
}

func TestDonutWedgesProportional(t *testing.T) {
	th := theme.Default()
	values := []float64{23, 45, 87, 145}
	spec := Donut{Title: "Alert Severity Distribution", Hole: 0.6}
	for i, v := range values {
		spec.Slices = append(spec.Slices, Slice{Label: "s", Value: v, Color: theme.StackOrder[i]})
	}

	rec := canvas.NewRecorder(600, 400)
	spec.Render(rec, th)

	wedges := rec.Filter(canvas.OpWedge)
	if len(wedges) != len(values) {
		t.Fatalf("drew %d wedges, want %d", len(wedges), len(values))
	}
	var total float64
	for _, v := range values {
		total += v
	}
	for i, w := range wedges {
		got := math.Abs(w.End-w.Start) / (2 * math.Pi)
		want := values[i] / total
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("wedge %d share = %v, want %v", i, got, want)
		}
		if w.Inner <= 0 || w.Inner >= w.Radius {
			t.Errorf("wedge %d inner radius %v should be within (0, %v)", i, w.Inner, w.Radius)
		}
		if i > 0 && math.Abs(w.Start-wedges[i-1].End) > eps {
			t.Errorf("wedge %d does not start where wedge %d ends", i, i-1)
		}
	}
	if math.Abs(wedges[0].Start+math.Pi/2) > eps {
		t.Errorf("first wedge starts at %v, want -π/2", wedges[0].Start)
	}
}

func TestDonutAllZeroDrawsNoWedges(t *testing.T) {
	rec := canvas.NewRecorder(300, 300)
	Donut{Slices: []Slice{{Value: 0}, {Value: 0}}}.Render(rec, theme.Default())
	if n := len(rec.Filter(canvas.OpWedge)); n != 0 {
		t.Errorf("drew %d wedges for all-zero input", n)
	}
}

func TestTextListRowPlacement(t *testing.T) {
	l := TextList{Top: 0.05, RowHeight: 0.2}
	body := canvas.Rect{X: 10, Y: 40, W: 300, H: 500}

	var prev canvas.Rect
	for i := range 4 {
		rc := l.RowRect(i, body)
		if want := 40 + (0.05+0.2*float64(i))*500; math.Abs(rc.Y-want) > eps {
			t.Errorf("row %d y = %v, want %v", i, rc.Y, want)
		}
		if i > 0 {
			if rc.Y < prev.Y+prev.H {
				t.Errorf("row %d overlaps row %d", i, i-1)
			}
			if math.Abs((rc.Y-prev.Y)-100) > eps {
				t.Errorf("row pitch = %v, want 100", rc.Y-prev.Y)
			}
		}
		prev = rc
	}
}

func TestTextListRendersInInsertionOrder(t *testing.T) {
	rec := canvas.NewRecorder(600, 400)
	TextList{
		Title: "Recent Critical Alerts",
		Rows: []Row{
			{Label: "first", Meta: "Host: A", Value: "15:42", Color: theme.Critical, Marker: MarkerDot},
			{Label: "second", Value: "14:18", Marker: MarkerCheck},
			{Label: "third", Marker: MarkerWarn},
		},
		Boxed: true,
	}.Render(rec, theme.Default())

	var labels []string
	for _, s := range rec.Texts() {
		if s == "first" || s == "second" || s == "third" {
			labels = append(labels, s)
		}
	}
	if !slices.Equal(labels, []string{"first", "second", "third"}) {
		t.Errorf("labels = %v", labels)
	}
	if n := len(rec.Filter(canvas.OpRoundedRect)); n != 4 {
		t.Errorf("rounded rects = %d, want 4 (panel + 3 rows)", n)
	}
}

func TestNodeLinkUsesCallerPositions(t *testing.T) {
	th := theme.Default()
	spec := NodeLink{
		Title: "Process Execution Tree",
		Nodes: []Node{
			{ID: "explorer", Label: "explorer.exe", X: 5, Y: 9, Color: theme.Accent},
			{ID: "cmd", Label: "cmd.exe", X: 3, Y: 7, Color: theme.Warning},
			{ID: "ps", Label: "powershell.exe", X: 7, Y: 7, Color: theme.Danger},
		},
		Edges: []Edge{{"explorer", "cmd"}, {"explorer", "ps"}, {"ps", "missing"}},
	}
	rec := canvas.NewRecorder(500, 500)
	spec.Render(rec, th)

	circles := rec.Filter(canvas.OpCircle)
	if len(circles) != 3 {
		t.Fatalf("circles = %d, want 3", len(circles))
	}
	tf := spec.transform(panelBody(rec, th, spec.Title, false))
	for i, nd := range spec.Nodes {
		if got, want := circles[i].Points[0], tf.pt(nd.X, nd.Y); got != want {
			t.Errorf("node %s at %v, want %v", nd.ID, got, want)
		}
	}
	// explorer (y=9) is above cmd (y=7) on screen.
	if circles[0].Points[0].Y >= circles[1].Points[0].Y {
		t.Error("higher logical y should be higher on screen")
	}

	var edges int
	for _, op := range rec.Filter(canvas.OpLine) {
		if len(op.Style.Dash) == 2 && op.Style.Dash[0] == 4 {
			edges++
		}
	}
	if edges != 2 {
		t.Errorf("edges = %d, want 2 (unknown endpoint skipped)", edges)
	}
}

func TestShortName(t *testing.T) {
	tests := map[string]string{
		"powershell.exe": "powershe",
		"cmd.exe":        "cmd",
		"rundll32.exe":   "rundll32",
		"noext":          "noext",
	}
	for in, want := range tests {
		if got := shortName(in); got != want {
			t.Errorf("shortName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMetricCardSubtitleColor(t *testing.T) {
	tests := []struct {
		trend float64
		want  theme.Name
	}{
		{3.2, theme.Accent},
		{0, theme.TextSecondary},
		{-15, theme.TextSecondary},
	}
	for _, tt := range tests {
		if got := (MetricCard{Trend: tt.trend}).subtitleColor(); got != tt.want {
			t.Errorf("trend %v: color = %s, want %s", tt.trend, got, tt.want)
		}
	}
}

func TestMetricCardDrawsText(t *testing.T) {
	rec := canvas.NewRecorder(400, 200)
	MetricCard{Title: "ACTIVE THREATS", Value: "23", Subtitle: "↓ 15% vs yesterday", Trend: -15}.Render(rec, theme.Default())
	if got := rec.Texts(); !slices.Equal(got, []string{"ACTIVE THREATS", "23", "↓ 15% vs yesterday"}) {
		t.Errorf("texts = %v", got)
	}
	if n := len(rec.Filter(canvas.OpRoundedRect)); n != 1 {
		t.Errorf("card frames = %d, want 1", n)
	}
}

func TestGaugeFraction(t *testing.T) {
	tests := []struct {
		g    Gauge
		want float64
	}{
		{Gauge{Value: 87}, 0.87},
		{Gauge{Value: 5, Max: 10}, 0.5},
		{Gauge{Value: 150}, 1},
		{Gauge{Value: -3}, 0},
	}
	for _, tt := range tests {
		if got := tt.g.fraction(); math.Abs(got-tt.want) > eps {
			t.Errorf("fraction(%+v) = %v, want %v", tt.g, got, tt.want)
		}
	}
}

func emptyWidgets() []Widget {
	return []Widget{
		MetricCard{},
		StackedTimeline{},
		StackedTimeline{Layers: []Layer{{Tier: theme.Critical}}},
		LineTimeline{},
		LineTimeline{Series: []Series{{Label: "x", Fill: true, Glyph: GlyphCircle}}},
		LineTimeline{XLabels: []string{}, Reference: &Reference{Value: 70}},
		BarRanking{},
		CategoryBars{Reference: &Reference{Value: 1}},
		Donut{},
		TextList{},
		NodeLink{},
		NodeLink{Edges: []Edge{{"a", "b"}}},
		Gauge{},
	}
}

func TestEmptyInputsRecorder(t *testing.T) {
	th := theme.Default()
	for _, w := range emptyWidgets() {
		t.Run(string(w.Kind()), func(t *testing.T) {
			rec := canvas.NewRecorder(400, 250)
			w.Render(rec, th)
			if len(rec.Ops) == 0 && w.Kind() != KindMetricCard {
				t.Error("expected at least the panel frame")
			}
		})
	}
}

func TestEmptyInputsRaster(t *testing.T) {
	th := theme.Default()
	r := canvas.NewRaster(800, 500, 72, th.Background())
	defer r.Release()
	for _, w := range emptyWidgets() {
		t.Run(string(w.Kind()), func(t *testing.T) {
			w.Render(canvas.Sub(r, canvas.Rect{X: 10, Y: 10, W: 300, H: 200}), th)
		})
	}
}

func TestTinyRegion(t *testing.T) {
	th := theme.Default()
	rec := canvas.NewRecorder(4, 4)
	for _, w := range emptyWidgets() {
		w.Render(rec, th)
	}
	Donut{Slices: []Slice{{Value: 1}}}.Render(rec, th)
	Gauge{Value: 50}.Render(rec, th)
}

func TestNiceTicks(t *testing.T) {
	tests := []struct {
		lo, hi float64
		n      int
		want   []float64
	}{
		{0, 1, 5, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{0, 100, 5, []float64{0, 20, 40, 60, 80, 100}},
		{90, 105, 5, []float64{90, 95, 100, 105}},
		{0, 23, 7, []float64{0, 10, 20}},
	}
	for _, tt := range tests {
		got := niceTicks(tt.lo, tt.hi, tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("niceTicks(%v, %v) = %v, want %v", tt.lo, tt.hi, got, tt.want)
			continue
		}
		for i := range got {
			if math.Abs(got[i]-tt.want[i]) > 1e-9 {
				t.Errorf("niceTicks(%v, %v) = %v, want %v", tt.lo, tt.hi, got, tt.want)
				break
			}
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := map[float64]string{
		7:       "7",
		12.5:    "12.5",
		420000:  "420K",
		2400000: "2.4M",
		1000000: "1M",
		0:       "0",
	}
	for v, want := range tests {
		if got := formatValue(v); got != want {
			t.Errorf("formatValue(%v) = %q, want %q", v, got, want)
		}
	}
}
