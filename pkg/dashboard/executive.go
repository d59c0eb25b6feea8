package dashboard

import (
	"fmt"
	"strings"

	"github.com/prive-edr/dashmock/pkg/layout"
	"github.com/prive-edr/dashmock/pkg/theme"
	"github.com/prive-edr/dashmock/pkg/widget"
)

// riskSeries lists the open-risk tiers plotted on the trend, with markers.
var riskSeries = []struct {
	tier  theme.Name
	glyph widget.Glyph
}{
	{theme.Critical, widget.GlyphCircle},
	{theme.High, widget.GlyphSquare},
	{theme.Medium, widget.GlyphTriangle},
}

var threatColors = []theme.Name{theme.Critical, theme.Danger, theme.High, theme.Warning, theme.Medium, theme.Low}

func composeExecutive(d ExecutiveData) *Dashboard {
	var series []widget.Series
	for _, rs := range riskSeries {
		if v, ok := d.OpenRisks[rs.tier]; ok {
			series = append(series, widget.Series{
				Label: tierLabel(rs.tier), Values: v, Color: rs.tier, Glyph: rs.glyph, Width: 3,
			})
		}
	}

	frameworks := make([]widget.Bar, len(d.FrameworkStatus))
	for i, c := range d.FrameworkStatus {
		frameworks[i] = widget.Bar{Label: c.Label, Value: c.Value, Annotation: fmt.Sprintf("%.0f%%", c.Value)}
	}

	threats := make([]widget.Slice, len(d.Threats))
	for i, c := range d.Threats {
		threats[i] = widget.Slice{Label: c.Label, Value: c.Value, Color: threatColors[i%len(threatColors)]}
	}

	roi := make([]widget.Bar, len(d.ROI))
	for i, c := range d.ROI {
		roi[i] = widget.Bar{Label: c.Label, Value: c.Value, Annotation: fmt.Sprintf("$%.0fK", c.Value)}
	}

	findings := make([]widget.Row, len(d.Findings))
	for i, f := range d.Findings {
		row := widget.Row{Label: f.Title, Meta: f.Detail, Color: theme.Warning, MetaColor: theme.Warning, Marker: widget.MarkerWarn}
		if f.OK {
			row.Color, row.MetaColor, row.Marker = theme.Accent, theme.Accent, widget.MarkerCheck
		}
		findings[i] = row
	}

	return &Dashboard{
		Title:    "Executive Security Dashboard - At a Glance",
		Subtitle: "Enterprise-wide security posture and risk metrics",
		Grid:     grid(3, 3),
		Placements: []Placement{
			{layout.Cell(0, 0), widget.MetricCard{
				Title:    "RISK SCORE",
				Value:    fmt.Sprintf("%d/100", d.RiskScore),
				Subtitle: trend(d.RiskChange, " pts", "(Good)"),
				Trend:    float64(d.RiskChange),
			}},
			{layout.Cell(0, 1), widget.MetricCard{
				Title:    "COMPLIANCE",
				Value:    fmt.Sprintf("%.1f%%", d.Compliance),
				Subtitle: strings.Join(d.Frameworks, ", "),
			}},
			{layout.Cell(0, 2), widget.MetricCard{
				Title:    "COST SAVINGS",
				Value:    dollars(d.CostSavings),
				Subtitle: "vs legacy tools",
			}},
			{layout.Cell(1, 0), widget.Gauge{
				Title:    "Overall Posture",
				Value:    d.SecurityScore,
				Label:    "Security Score",
				Subtitle: trend(d.ScoreChange, " points", "this month"),
				Color:    theme.Low,
			}},
			{layout.Cell(1, 1), widget.LineTimeline{
				Title:   "Risk Reduction Trend",
				YLabel:  "Open Risks",
				XLabels: d.Months,
				Series:  series,
				Legend:  widget.UpperRight,
			}},
			{layout.Cell(1, 2), widget.CategoryBars{
				Title:      "Compliance Framework Status",
				YLabel:     "Compliance %",
				Bars:       frameworks,
				Color:      theme.Warning,
				Thresholds: []widget.Threshold{{Min: 98, Color: theme.Accent}},
				YMin:       90,
				YMax:       105,
				Reference:  &widget.Reference{Value: 95, Color: theme.Danger},
			}},
			{layout.Cell(2, 0), widget.Donut{
				Title:  "Threat Category Breakdown (30 Days)",
				Slices: threats,
				Format: "%.0f%%",
			}},
			{layout.Cell(2, 1), widget.CategoryBars{
				Title:  "Return on Investment (Year 1)",
				YLabel: "Savings ($K)",
				Bars:   roi,
				Color:  theme.Accent,
			}},
			{layout.Cell(2, 2), widget.TextList{
				Title:     "Risk Summary & Recommendations",
				Rows:      findings,
				Top:       0.02,
				RowHeight: 0.196,
			}},
		},
	}
}
