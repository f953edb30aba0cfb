package core

// Canvas is a pixel-addressed drawing surface. Coordinates are window
// pixels with the origin at the top-left corner and y pointing down.
type Canvas interface {
	// Size returns the drawable area in pixels.
	Size() (w, h int)

	// FillRect fills an axis-aligned rectangle given by its top-left corner.
	FillRect(x, y, w, h float64, c Color)

	// FillCircle fills a disc.
	FillCircle(cx, cy, r float64, c Color)

	// FillDome fills the upper half of a disc.
	FillDome(cx, cy, r float64, c Color)

	// DrawText writes text with its top-left corner at (x, y).
	DrawText(x, y float64, text string, c Color)

	// MeasureText returns the pixel size DrawText would cover.
	MeasureText(text string) (w, h float64)
}
