package dashboard

import (
	"fmt"

	"github.com/prive-edr/dashmock/pkg/layout"
	"github.com/prive-edr/dashmock/pkg/theme"
	"github.com/prive-edr/dashmock/pkg/widget"
)

// channelColors cycles over the exfiltration channels, worst first.
var channelColors = []theme.Name{theme.Danger, theme.High, theme.Medium, theme.Warning, theme.Accent}

func composeDLP(d DLPData) *Dashboard {
	types := make([]widget.Bar, len(d.DataTypes))
	for i, c := range d.DataTypes {
		types[i] = widget.Bar{Label: c.Label, Value: c.Value}
	}

	channels := make([]widget.Slice, len(d.Channels))
	for i, c := range d.Channels {
		channels[i] = widget.Slice{Label: c.Label, Value: c.Value, Color: channelColors[i%len(channelColors)]}
	}

	rules := make([]widget.Row, len(d.Rules))
	for i, p := range d.Rules {
		rules[i] = widget.Row{
			Label:  p.Name,
			Meta:   compact(float64(p.Files)) + " files",
			Value:  tierLabel(p.Severity),
			Color:  severityColor(p.Severity),
			Marker: widget.MarkerDot,
		}
	}

	return &Dashboard{
		Title:    "Data Loss Prevention - Policy Management",
		Subtitle: fmt.Sprintf("Cryptographic fingerprinting protecting %s sensitive documents", compact(float64(d.FilesScanned))),
		Grid:     grid(4, 4),
		Placements: []Placement{
			{layout.Cell(0, 0), widget.MetricCard{
				Title:    "VIOLATIONS",
				Value:    thousands(d.Violations),
				Subtitle: trend(d.ViolationsChange, "%", "vs last week"),
				Trend:    float64(d.ViolationsChange),
			}},
			{layout.Cell(0, 1), widget.MetricCard{Title: "POLICIES", Value: thousands(d.Policies), Subtitle: "active rules"}},
			{layout.Cell(0, 2), widget.MetricCard{Title: "FILES SCANNED", Value: compact(float64(d.FilesScanned)), Subtitle: "fingerprinted"}},
			{layout.Cell(0, 3), widget.MetricCard{Title: "BLOCKED", Value: thousands(d.Blocked), Subtitle: "exfiltration attempts"}},
			{layout.Row(1, 0, 4), widget.LineTimeline{
				Title:  "DLP Violations Trend (Last 30 Days)",
				XLabel: "Days Ago",
				YLabel: "Violation Count",
				X:      d.Days,
				Series: []widget.Series{
					{Label: "Violations Detected", Values: d.Detected, Color: theme.Danger, Fill: true, Glyph: widget.GlyphCircle, Width: 2.5},
					{Label: "Blocked", Values: d.Stopped, Color: theme.Accent, Fill: true, Glyph: widget.GlyphSquare, Width: 2.5},
				},
				Legend: widget.UpperRight,
			}},
			{layout.Row(2, 0, 2), widget.BarRanking{
				Title:  "Protected Data Types",
				XLabel: "Files Fingerprinted",
				Bars:   types,
				Color:  theme.Primary,
			}},
			{layout.Row(2, 2, 4), widget.Donut{
				Title:  "Violations by Channel",
				Slices: channels,
				Hole:   0.6,
				Format: "%.0f%%",
			}},
			{layout.Row(3, 0, 4), widget.TextList{
				Title:     "Active DLP Policies",
				Rows:      rules,
				Top:       0.02,
				RowHeight: 0.16,
				Boxed:     true,
			}},
		},
	}
}

// severityColor maps a policy severity to its accent: high policies use the
// danger red, medium the warning amber.
func severityColor(n theme.Name) theme.Name {
	switch n {
	case theme.High:
		return theme.Danger
	case theme.Medium:
		return theme.Warning
	}
	return n
}
