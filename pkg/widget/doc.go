// Package widget draws the individual dashboard widgets.
//
// Each widget kind is a plain spec struct that implements [Widget]. Render
// is a pure function of the spec, the surface and the theme: it reads no
// globals, generates no data and keeps no state between calls. The surface
// handed to Render is already restricted to the widget's region, so all
// coordinates are region-relative.
//
// # Kinds
//
//   - [MetricCard]: title, large value, trend-colored subtitle
//   - [StackedTimeline]: severity tiers stacked as cumulative bands
//   - [LineTimeline]: one or more line series with optional fill and markers
//   - [BarRanking]: horizontal bars in input order with value annotations
//   - [CategoryBars]: vertical bars with optional reference line
//   - [Donut]: proportional wedges, ring or full pie
//   - [TextList]: fixed-pitch rows of label, metadata and value
//   - [NodeLink]: nodes at caller coordinates joined by edges
//   - [Gauge]: circular progress ring around a headline value
//
// Every renderer accepts empty input and then draws only its frame.
package widget
