// Package layout allocates non-overlapping canvas regions from a fixed grid.
//
// A [Grid] divides a bounding box into Rows×Cols equal cells separated by
// gaps. Gaps are expressed as a fraction of the average cell size, so a
// WSpace of 0.3 leaves 30% of a cell's width between adjacent columns.
// Widgets claim rectangular [Span]s of cells; [Grid.Allocate] turns spans
// into pixel regions and rejects spans that leave the grid or overlap.
package layout

import (
	"fmt"

	"github.com/prive-edr/dashmock/pkg/canvas"
	"github.com/prive-edr/dashmock/pkg/errors"
)

// Span is a rectangular range of grid cells.
type Span struct {
	Row, Col   int
	Rows, Cols int
}

// Cell returns a 1×1 span.
func Cell(row, col int) Span { return Span{Row: row, Col: col, Rows: 1, Cols: 1} }

// Cells returns a rows×cols span anchored at (row, col).
func Cells(row, col, rows, cols int) Span {
	return Span{Row: row, Col: col, Rows: rows, Cols: cols}
}

// Row returns a span covering cols [from, to) of row r.
func Row(r, from, to int) Span { return Span{Row: r, Col: from, Rows: 1, Cols: to - from} }

func (s Span) String() string {
	return fmt.Sprintf("[%d:%d, %d:%d]", s.Row, s.Row+s.Rows, s.Col, s.Col+s.Cols)
}

// Region is a span resolved to pixels.
type Region struct {
	Span Span
	Rect canvas.Rect
}

// Grid describes the cell structure of a dashboard body.
type Grid struct {
	Rows, Cols int
	Bounds     canvas.Rect
	WSpace     float64 // column gap as a fraction of average cell width
	HSpace     float64 // row gap as a fraction of average cell height
}

func (g Grid) cellSize() (w, h, gapW, gapH float64) {
	w = g.Bounds.W / (float64(g.Cols) + g.WSpace*float64(g.Cols-1))
	h = g.Bounds.H / (float64(g.Rows) + g.HSpace*float64(g.Rows-1))
	return w, h, w * g.WSpace, h * g.HSpace
}

// Contains reports whether s lies fully inside the grid.
func (g Grid) Contains(s Span) bool {
	return s.Rows > 0 && s.Cols > 0 &&
		s.Row >= 0 && s.Col >= 0 &&
		s.Row+s.Rows <= g.Rows && s.Col+s.Cols <= g.Cols
}

// Rect returns the pixel rectangle of s. It does not validate s.
func (g Grid) Rect(s Span) canvas.Rect {
	w, h, gw, gh := g.cellSize()
	return canvas.Rect{
		X: g.Bounds.X + float64(s.Col)*(w+gw),
		Y: g.Bounds.Y + float64(s.Row)*(h+gh),
		W: float64(s.Cols)*w + float64(s.Cols-1)*gw,
		H: float64(s.Rows)*h + float64(s.Rows-1)*gh,
	}
}

// Allocate resolves spans to regions in the given order. It fails if the
// grid is degenerate, a span leaves the grid, or two spans share a cell.
func (g Grid) Allocate(spans []Span) ([]Region, error) {
	if g.Rows <= 0 || g.Cols <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "grid must have positive size, got %dx%d", g.Rows, g.Cols)
	}
	owner := make([]int, g.Rows*g.Cols)
	for i := range owner {
		owner[i] = -1
	}

	regions := make([]Region, 0, len(spans))
	for i, s := range spans {
		if !g.Contains(s) {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "span %d %s outside %dx%d grid", i, s, g.Rows, g.Cols)
		}
		for r := s.Row; r < s.Row+s.Rows; r++ {
			for c := s.Col; c < s.Col+s.Cols; c++ {
				idx := r*g.Cols + c
				if prev := owner[idx]; prev >= 0 {
					return nil, errors.New(errors.ErrCodeInvalidLayout, "span %d %s overlaps span %d %s", i, s, prev, spans[prev])
				}
				owner[idx] = i
			}
		}
		regions = append(regions, Region{Span: s, Rect: g.Rect(s)})
	}
	return regions, nil
}

// Uncovered returns the cells that no span in spans claims, row by row.
func (g Grid) Uncovered(spans []Span) []Span {
	covered := make(map[[2]int]bool)
	for _, s := range spans {
		for r := s.Row; r < s.Row+s.Rows; r++ {
			for c := s.Col; c < s.Col+s.Cols; c++ {
				covered[[2]int{r, c}] = true
			}
		}
	}
	var out []Span
	for r := range g.Rows {
		for c := range g.Cols {
			if !covered[[2]int{r, c}] {
				out = append(out, Cell(r, c))
			}
		}
	}
	return out
}
