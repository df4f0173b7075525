package core

import "math"

// Viewport maps world coordinates onto a character grid and back.
// The whole world is always visible; each cell covers a fixed world area.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
}

// NewViewport creates a viewport showing a worldW x worldH world on cols x rows cells.
func NewViewport(worldW, worldH float64, cols, rows int) Viewport {
	return Viewport{
		WorldW: worldW,
		WorldH: worldH,
		Cols:   max(cols, 1),
		Rows:   max(rows, 1),
	}
}

// CellW returns the world width covered by one cell.
func (v Viewport) CellW() float64 {
	return v.WorldW / float64(v.Cols)
}

// CellH returns the world height covered by one cell.
func (v Viewport) CellH() float64 {
	return v.WorldH / float64(v.Rows)
}

// ToCell converts a world point to the cell containing it.
func (v Viewport) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x / v.CellW())), int(math.Floor(y / v.CellH()))
}

// ToWorld converts a cell to the world point at its center.
func (v Viewport) ToWorld(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * v.CellW(), (float64(row) + 0.5) * v.CellH()
}

// RectCells returns the cell span covered by a world rectangle.
// Every non-empty rectangle covers at least one cell.
func (v Viewport) RectCells(r Rect) (x, y, w, h int) {
	x, y = v.ToCell(r.X, r.Y)
	x2 := int(math.Ceil(r.Right() / v.CellW()))
	y2 := int(math.Ceil(r.Bottom() / v.CellH()))
	w = max(x2-x, 1)
	h = max(y2-y, 1)
	return x, y, w, h
}
