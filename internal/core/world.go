// Package core provides fundamental types and utilities shared by the
// simulation and its frontends. It contains no external dependencies
// (especially no Bubble Tea or Ebiten) to keep game logic pure and testable.
package core

import (
	"cmp"
	"math"
)

// Reference layout of the logical world.
const (
	// ReferenceAspect is height/width of the reference screen (16:9).
	ReferenceAspect = 720.0 / 1280.0

	// UnitsPerScreenWidth is how many world units span the screen horizontally.
	UnitsPerScreenWidth = 50.0

	// UnitsPerScreenHeight is how many world units span the screen vertically.
	UnitsPerScreenHeight = UnitsPerScreenWidth * ReferenceAspect
)

// Screen edges in world units. The origin is the center of the screen, y grows up.
const (
	Top    WorldUnit = UnitsPerScreenHeight / 2
	Bottom WorldUnit = -UnitsPerScreenHeight / 2
	Left   WorldUnit = -UnitsPerScreenWidth / 2
	Right  WorldUnit = UnitsPerScreenWidth / 2
)

// WorldUnit is a logical distance, independent of pixels.
type WorldUnit float64

// Abs returns the absolute value.
func (u WorldUnit) Abs() WorldUnit {
	return WorldUnit(math.Abs(float64(u)))
}

// Cmp compares two units. NaN sorts before every number so the
// ordering stays total.
func (u WorldUnit) Cmp(other WorldUnit) int {
	return cmp.Compare(u, other)
}

// ClampUnit restricts u to [lo, hi]. If lo > hi the midpoint is returned.
// NaN clamps to lo.
func ClampUnit(u, lo, hi WorldUnit) WorldUnit {
	switch {
	case lo.Cmp(hi) > 0:
		return (lo + hi) / 2
	case u.Cmp(lo) < 0:
		return lo
	case u.Cmp(hi) > 0:
		return hi
	}
	return u
}

// WorldVec2 is a pair of world units.
type WorldVec2 struct {
	X, Y WorldUnit
}

// Vec builds a WorldVec2 from raw floats.
func Vec(x, y float64) WorldVec2 {
	return WorldVec2{X: WorldUnit(x), Y: WorldUnit(y)}
}

// Add returns v + o.
func (v WorldVec2) Add(o WorldVec2) WorldVec2 {
	return WorldVec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v WorldVec2) Sub(o WorldVec2) WorldVec2 {
	return WorldVec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v WorldVec2) Scale(s float64) WorldVec2 {
	return WorldVec2{X: v.X * WorldUnit(s), Y: v.Y * WorldUnit(s)}
}

// Neg returns -v.
func (v WorldVec2) Neg() WorldVec2 {
	return WorldVec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product.
func (v WorldVec2) Dot(o WorldVec2) float64 {
	return float64(v.X)*float64(o.X) + float64(v.Y)*float64(o.Y)
}

// LengthSquared returns |v|².
func (v WorldVec2) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns |v|.
func (v WorldVec2) Length() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// IsZero reports whether both components are zero.
func (v WorldVec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector along v.
// ok is false for a zero or non-finite vector, in which case the zero vector is returned.
func (v WorldVec2) Normalize() (n WorldVec2, ok bool) {
	l := v.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return WorldVec2{}, false
	}
	return WorldVec2{X: v.X / WorldUnit(l), Y: v.Y / WorldUnit(l)}, true
}

// NormalizeOr returns the unit vector along v, or fallback when v cannot be normalized.
func (v WorldVec2) NormalizeOr(fallback WorldVec2) WorldVec2 {
	if n, ok := v.Normalize(); ok {
		return n
	}
	return fallback
}

// WorldRect is an axis-aligned rectangle centered on the origin.
type WorldRect struct {
	HalfW, HalfH WorldUnit
}

// RectOf builds a rectangle from its full width and height.
func RectOf(w, h WorldUnit) WorldRect {
	return WorldRect{HalfW: w / 2, HalfH: h / 2}
}

// Size returns the full width and height.
func (r WorldRect) Size() WorldVec2 {
	return WorldVec2{X: r.HalfW * 2, Y: r.HalfH * 2}
}

// Contains reports whether p, relative to the rectangle's center,
// lies inside or on the edge.
func (r WorldRect) Contains(p WorldVec2) bool {
	return p.X.Abs() <= r.HalfW && p.Y.Abs() <= r.HalfH
}

// ClosestPoint returns the point of the rectangle nearest to p.
// Both are relative to the rectangle's center; points inside map to themselves.
func (r WorldRect) ClosestPoint(p WorldVec2) WorldVec2 {
	return WorldVec2{
		X: ClampUnit(p.X, -r.HalfW, r.HalfW),
		Y: ClampUnit(p.Y, -r.HalfH, r.HalfH),
	}
}

// TopLeft returns the top-left corner relative to the center.
func (r WorldRect) TopLeft() WorldVec2 {
	return WorldVec2{X: -r.HalfW, Y: r.HalfH}
}
