package core

// PixelScale converts world units to pixels along each axis.
type PixelScale struct {
	X, Y float64
}

// CoordinateSpace maps world units to pixels for the current window size.
// The logical layout keeps the reference aspect ratio; the shorter-fitting
// axis decides the scale and the rest of the window is letterboxed.
type CoordinateSpace struct {
	width  int
	height int
	scale  PixelScale
}

// NewCoordinateSpace creates a coordinate space for a window of w×h pixels.
func NewCoordinateSpace(w, h int) CoordinateSpace {
	var c CoordinateSpace
	c.Resize(w, h)
	return c
}

// Resize recomputes the scale for a new window size.
// Non-positive sizes produce a zero scale.
func (c *CoordinateSpace) Resize(w, h int) {
	c.width = max(w, 0)
	c.height = max(h, 0)
	c.scale = ScaleFor(c.width, c.height)
}

// ScaleFor returns the world-to-pixel scale for a window of w×h pixels.
func ScaleFor(w, h int) PixelScale {
	if w <= 0 || h <= 0 {
		return PixelScale{}
	}
	effW := min(float64(w), float64(h)/ReferenceAspect)
	effH := effW * ReferenceAspect
	return PixelScale{
		X: effW / UnitsPerScreenWidth,
		Y: effH / UnitsPerScreenHeight,
	}
}

// Scale returns the current scale factors.
func (c CoordinateSpace) Scale() PixelScale {
	return c.scale
}

// WindowSize returns the window size in pixels.
func (c CoordinateSpace) WindowSize() (int, int) {
	return c.width, c.height
}

// Degenerate reports whether the window has no drawable area.
// Render sync must be skipped for such frames.
func (c CoordinateSpace) Degenerate() bool {
	return c.scale.X == 0 || c.scale.Y == 0
}

// ToX converts a horizontal distance to pixels.
func (c CoordinateSpace) ToX(u WorldUnit) float64 {
	return float64(u) * c.scale.X
}

// ToY converts a vertical distance to pixels.
func (c CoordinateSpace) ToY(u WorldUnit) float64 {
	return float64(u) * c.scale.Y
}

// ToPixels converts a world position to pixels with the origin at the
// window center and y pointing up.
func (c CoordinateSpace) ToPixels(p WorldVec2) (x, y float64) {
	return c.ToX(p.X), c.ToY(p.Y)
}

// ToLogical is the inverse of ToPixels. ok is false when the scale is zero.
func (c CoordinateSpace) ToLogical(x, y float64) (WorldVec2, bool) {
	if c.Degenerate() {
		return WorldVec2{}, false
	}
	return WorldVec2{X: WorldUnit(x / c.scale.X), Y: WorldUnit(y / c.scale.Y)}, true
}

// ToWindow converts a world position to window pixels with the origin at
// the top-left corner and y pointing down.
func (c CoordinateSpace) ToWindow(p WorldVec2) (x, y float64) {
	px, py := c.ToPixels(p)
	return float64(c.width)/2 + px, float64(c.height)/2 - py
}

// FromWindow is the inverse of ToWindow.
func (c CoordinateSpace) FromWindow(x, y float64) (WorldVec2, bool) {
	return c.ToLogical(x-float64(c.width)/2, float64(c.height)/2-y)
}

// Viewport returns the letterboxed drawing area in window pixels.
func (c CoordinateSpace) Viewport() (x, y, w, h float64) {
	w = UnitsPerScreenWidth * c.scale.X
	h = UnitsPerScreenHeight * c.scale.Y
	x = (float64(c.width) - w) / 2
	y = (float64(c.height) - h) / 2
	return x, y, w, h
}
