package dashboard

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/prive-edr/dashmock/pkg/layout"
	"github.com/prive-edr/dashmock/pkg/theme"
	"github.com/prive-edr/dashmock/pkg/widget"
)

// tacticThresholds colors detection counts: more than 15 is danger, more
// than 8 is warning. Counts are whole numbers.
var tacticThresholds = []widget.Threshold{
	{Min: 16, Color: theme.Danger},
	{Min: 9, Color: theme.Warning},
}

// tierLabel returns the display name of a tier, e.g. "Critical".
func tierLabel(n theme.Name) string { return cases.Title(language.English).String(string(n)) }

func composeSOC(d SOCData) *Dashboard {
	layers := make([]widget.Layer, 0, len(theme.StackOrder))
	for _, tier := range theme.StackOrder {
		layers = append(layers, widget.Layer{Tier: tier, Label: tierLabel(tier), Values: d.ByTier[tier]})
	}

	tactics := make([]widget.Bar, len(d.Tactics))
	for i, c := range d.Tactics {
		tactics[i] = widget.Bar{Label: c.Label, Value: c.Value}
	}

	severity := make([]widget.Slice, len(d.Severity))
	for i, c := range d.Severity {
		tier := theme.Info
		if i < len(theme.StackOrder) {
			tier = theme.StackOrder[i]
		}
		severity[i] = widget.Slice{Label: c.Label, Value: c.Value, Color: tier}
	}

	hosts := make([]widget.Bar, len(d.Hosts))
	for i, c := range d.Hosts {
		hosts[i] = widget.Bar{Label: c.Label, Value: c.Value, Annotation: fmt.Sprintf("%.0f alerts", c.Value)}
	}

	alerts := make([]widget.Row, len(d.Alerts))
	for i, a := range d.Alerts {
		alerts[i] = widget.Row{
			Label:     a.Title,
			Meta:      "Host: " + a.Host,
			Value:     a.Time,
			Color:     theme.Critical,
			Marker:    widget.MarkerDot,
			MonoMeta:  true,
			MetaColor: theme.TextSecondary,
		}
	}

	return &Dashboard{
		Title:    "Security Operations Center - Live Threat Monitoring",
		Subtitle: fmt.Sprintf("Real-time endpoint protection across %s agents", thousands(d.AgentsOnline)),
		Grid:     grid(4, 6),
		Placements: []Placement{
			{layout.Row(0, 0, 2), widget.MetricCard{
				Title:    "ACTIVE THREATS",
				Value:    thousands(d.ActiveThreats),
				Subtitle: trend(d.ThreatsChange, "%", "vs yesterday"),
				Trend:    float64(d.ThreatsChange),
			}},
			{layout.Row(0, 2, 4), widget.MetricCard{
				Title:    "EVENTS/SECOND",
				Value:    compact(d.EventsPerSecond),
				Subtitle: trend(d.EventsChange, "%", "vs avg"),
				Trend:    float64(d.EventsChange),
			}},
			{layout.Row(0, 4, 6), widget.MetricCard{
				Title:    "AGENTS ONLINE",
				Value:    thousands(d.AgentsOnline),
				Subtitle: fmt.Sprintf("%.1f%% uptime", d.Uptime),
			}},
			{layout.Row(1, 0, 6), widget.StackedTimeline{
				Title:  "Threat Detection Timeline (Last 24 Hours)",
				XLabel: "Hour of Day",
				YLabel: "Threat Count",
				X:      d.Hours,
				Layers: layers,
				Legend: widget.UpperLeft,
			}},
			{layout.Row(2, 0, 4), widget.BarRanking{
				Title:      "MITRE ATT&CK Tactics Coverage",
				XLabel:     "Detections Today",
				Bars:       tactics,
				Color:      theme.Accent,
				Thresholds: tacticThresholds,
			}},
			{layout.Row(2, 4, 6), widget.Donut{
				Title:  "Alert Severity Distribution",
				Slices: severity,
				Hole:   0.6,
			}},
			{layout.Row(3, 0, 3), widget.BarRanking{
				Title:  "Top 5 Affected Endpoints",
				XLabel: "Alert Count",
				Bars:   hosts,
				Color:  theme.Danger,
			}},
			{layout.Row(3, 3, 6), widget.TextList{
				Title:     "Recent Critical Alerts",
				Rows:      alerts,
				Top:       0.04,
				RowHeight: 0.24,
			}},
		},
	}
}
