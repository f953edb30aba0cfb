package core

import "math"

// CellRect is a block of terminal cells. It includes its left and top edges
// and excludes Right and Bottom.
type CellRect struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// NewCellRect creates a cell rectangle. Negative sizes collapse to empty.
func NewCellRect(x, y, w, h int) CellRect {
	return CellRect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// Right returns the first column past the rectangle.
func (r CellRect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r CellRect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r CellRect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the overlap of two rectangles, or an empty rect.
func (r CellRect) Intersect(other CellRect) CellRect {
	x0, y0 := max(r.X, other.X), max(r.Y, other.Y)
	x1, y1 := min(r.Right(), other.Right()), min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return CellRect{X: x0, Y: y0}
	}
	return CellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains reports whether the cell (col, row) is inside the rectangle.
func (r CellRect) Contains(col, row int) bool {
	return col >= r.X && col < r.Right() && row >= r.Y && row < r.Bottom()
}

// CellSpan returns the cells touched by a pixel box, one cell per pixel
// across and CellAspect pixels per cell down. Edges landing exactly on a
// cell boundary still include the next cell.
func CellSpan(x0, y0, x1, y1 float64) CellRect {
	col0 := int(math.Floor(x0))
	col1 := int(math.Ceil(x1))
	row0 := int(math.Floor(y0 / CellAspect))
	row1 := int(math.Ceil(y1 / CellAspect))
	return NewCellRect(col0, row0, col1-col0+1, row1-row0+1)
}
