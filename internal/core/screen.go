package core

import (
	"math"
	"strings"
	"unicode/utf8"
)

// CellAspect is how many pixels tall one terminal cell is relative to its width.
// Terminal cells are roughly twice as tall as they are wide.
const CellAspect = 2

// Glyphs used when rasterizing shapes into cells.
const (
	GlyphFill  = '█'
	GlyphDot   = '•'
	GlyphBlank = ' '
)

// Cell is a single character with its color.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D character buffer for rendering.
// It decouples scene drawing from the terminal: the simulation draws shapes
// in pixel space through the Canvas interface, and the platform handles
// actual display. One cell is one pixel wide and CellAspect pixels tall.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

var _ Canvas = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions in cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the drawable cells.
func (s *Screen) Bounds() CellRect {
	return NewCellRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions. Content is cleared.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with blank default-colored cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: GlyphBlank}
		}
	}
}

// Set places a rune at the given cell, keeping the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.Bounds().Contains(x, y) {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.Bounds().Contains(x, y) {
		return Cell{Rune: GlyphBlank}
	}
	return s.cells[y][x]
}

// Size implements Canvas. The pixel height is the cell height times CellAspect.
func (s *Screen) Size() (int, int) {
	return s.width, s.height * CellAspect
}

// FillRect implements Canvas. A rectangle smaller than one cell still
// marks the cell under its center.
func (s *Screen) FillRect(x, y, w, h float64, c Color) {
	painted := s.fill(x, y, x+w, y+h, c, func(float64, float64) bool { return true })
	if !painted {
		s.plot(x+w/2, y+h/2, GlyphFill, c)
	}
}

// FillCircle implements Canvas.
func (s *Screen) FillCircle(cx, cy, r float64, c Color) {
	inside := func(px, py float64) bool {
		return (px-cx)*(px-cx)+(py-cy)*(py-cy) <= r*r
	}
	if !s.fill(cx-r, cy-r, cx+r, cy+r, c, inside) {
		s.plot(cx, cy, GlyphDot, c)
	}
}

// FillDome implements Canvas.
func (s *Screen) FillDome(cx, cy, r float64, c Color) {
	inside := func(px, py float64) bool {
		return py <= cy && (px-cx)*(px-cx)+(py-cy)*(py-cy) <= r*r
	}
	if !s.fill(cx-r, cy-r, cx+r, cy, c, inside) {
		s.plot(cx, cy, GlyphFill, c)
	}
}

// DrawText implements Canvas.
func (s *Screen) DrawText(x, y float64, text string, c Color) {
	col := int(math.Floor(x))
	row := int(math.Floor(y / CellAspect))
	for i, r := range []rune(text) {
		s.SetCell(col+i, row, Cell{Rune: r, Color: c})
	}
}

// MeasureText implements Canvas. Every rune is one cell wide.
func (s *Screen) MeasureText(text string) (w, h float64) {
	return float64(utf8.RuneCountInString(text)), CellAspect
}

// fill paints every cell in the pixel box whose center satisfies inside.
func (s *Screen) fill(x0, y0, x1, y1 float64, c Color, inside func(px, py float64) bool) bool {
	span := CellSpan(x0, y0, x1, y1).Intersect(s.Bounds())

	painted := false
	for row := span.Y; row < span.Bottom(); row++ {
		py := (float64(row) + 0.5) * CellAspect
		if py < y0 || py > y1 {
			continue
		}
		for col := span.X; col < span.Right(); col++ {
			px := float64(col) + 0.5
			if px < x0 || px > x1 || !inside(px, py) {
				continue
			}
			s.cells[row][col] = Cell{Rune: GlyphFill, Color: c}
			painted = true
		}
	}
	return painted
}

// plot marks the cell containing pixel (px, py).
func (s *Screen) plot(px, py float64, r rune, c Color) {
	s.SetCell(int(math.Floor(px)), int(math.Floor(py/CellAspect)), Cell{Rune: r, Color: c})
}

// String returns the screen content as plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a plain string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
