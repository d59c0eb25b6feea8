package dashboard

import (
	"github.com/prive-edr/dashmock/pkg/layout"
	"github.com/prive-edr/dashmock/pkg/theme"
	"github.com/prive-edr/dashmock/pkg/widget"
)

func composeHunting(d HuntingData) *Dashboard {
	nodes := make([]widget.Node, len(d.Tree))
	var edges []widget.Edge
	for i, p := range d.Tree {
		nodes[i] = widget.Node{ID: p.Name, Label: p.Name, X: p.X, Y: p.Y, Color: p.Tier}
		if p.Parent != "" {
			edges = append(edges, widget.Edge{From: p.Parent, To: p.Name})
		}
	}

	iocs := make([]widget.Row, len(d.IOCs))
	for i, ioc := range d.IOCs {
		iocs[i] = widget.Row{
			Label:     ioc.Type + ":",
			Meta:      ioc.Value,
			Value:     ioc.Threat,
			Color:     ioc.Tier,
			MetaColor: theme.TextPrimary,
			MonoMeta:  true,
		}
	}

	return &Dashboard{
		Title:    "Threat Hunting Workbench - Advanced Investigation",
		Subtitle: "Query billions of events in <100ms with ClickHouse analytics",
		Grid:     grid(4, 4),
		Placements: []Placement{
			{layout.Cell(0, 0), widget.MetricCard{Title: "QUERY TIME", Value: duration(d.QueryTime), Subtitle: "Lightning fast"}},
			{layout.Cell(0, 1), widget.MetricCard{Title: "RESULTS", Value: thousands(d.Results), Subtitle: "events found"}},
			{layout.Cell(0, 2), widget.MetricCard{Title: "TIME RANGE", Value: duration(d.Window), Subtitle: "scanning period"}},
			{layout.Cell(0, 3), widget.MetricCard{Title: "DATA SCANNED", Value: bytesize(d.BytesScanned), Subtitle: "compressed"}},
			{layout.Row(1, 0, 4), widget.LineTimeline{
				Title:  "Event Timeline - Process Creation & Network Connections",
				XLabel: "Hour of Day",
				YLabel: "Events per Minute",
				X:      d.Times,
				Series: []widget.Series{
					{Label: "Process Creation", Values: d.Process, Color: theme.Primary, Fill: true},
					{Label: "Network Connections", Values: d.Network, Color: theme.Accent, Fill: true},
				},
				Legend: widget.UpperRight,
			}},
			{layout.Cells(2, 0, 2, 2), widget.NodeLink{
				Title: "Process Execution Tree",
				Nodes: nodes,
				Edges: edges,
			}},
			{layout.Cells(2, 2, 2, 2), widget.TextList{
				Title:     "Threat Intelligence Matches",
				Rows:      iocs,
				Top:       0.03,
				RowHeight: 0.16,
				Boxed:     true,
				EdgeByRow: true,
			}},
		},
	}
}
