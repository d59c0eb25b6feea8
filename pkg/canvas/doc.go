// Package canvas provides the drawing surface that widget renderers paint on.
//
// # Surface
//
// [Surface] is a small set of primitives: rectangles, rounded rectangles,
// circles, lines, polygons, annular wedges and text. Geometry is in pixels
// with the origin at the top left; line widths, dashes and font sizes are in
// points so output scales with DPI.
//
// # Regions
//
// [Sub] returns a view of a surface restricted to a rectangle. Coordinates
// passed to the view are relative to the rectangle's top-left corner, so a
// renderer never needs to know where on the canvas it sits.
//
//	r := canvas.NewRaster(2400, 1500, 150, bg)
//	defer r.Release()
//	card := canvas.Sub(r, canvas.Rect{X: 120, Y: 140, W: 700, H: 260})
//	card.Text("ACTIVE THREATS", canvas.Pt(350, 40), canvas.TextStyle{Size: 10, Align: canvas.AlignCenter})
//
// # Back ends
//
//   - [Raster]: anti-aliased rendering into an in-memory RGBA image (gg)
//   - [Recorder]: records every primitive for geometry assertions in tests
package canvas
