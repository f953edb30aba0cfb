package rain

import "github.com/vovakirdan/rainshield/internal/core"

// SpriteKind names a drawable asset.
type SpriteKind int

const (
	SpriteSky SpriteKind = iota
	SpriteGround
	SpriteRain
	SpriteShelter
	SpriteUmbrella
	SpriteHandle
	SpriteNpcBody
	SpriteNpcEye
)

// Shape is how a sprite is rasterized.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
	ShapeDome // upper half of a disc, base at the entity center
)

// SpriteInfo describes an asset. Width and Height are native pixels; the
// simulation only needs Width to derive the pixel-to-logical scale.
type SpriteInfo struct {
	Width  uint32
	Height uint32
	Color  core.Color
	Shape  Shape
}

// SpriteSource resolves asset handles to their dimensions and looks.
type SpriteSource interface {
	Sprite(kind SpriteKind) SpriteInfo
}

// BuiltinSprites is the default catalog of flat-colored shapes.
type BuiltinSprites struct{}

// Sprite implements SpriteSource.
func (BuiltinSprites) Sprite(kind SpriteKind) SpriteInfo {
	switch kind {
	case SpriteSky:
		return SpriteInfo{Width: 1280, Height: 720, Color: core.ColorSky, Shape: ShapeRect}
	case SpriteGround:
		return SpriteInfo{Width: 1280, Height: 80, Color: core.ColorGround, Shape: ShapeRect}
	case SpriteRain:
		return SpriteInfo{Width: 20, Height: 20, Color: core.ColorRain, Shape: ShapeCircle}
	case SpriteShelter:
		return SpriteInfo{Width: 150, Height: 240, Color: core.ColorShelter, Shape: ShapeRect}
	case SpriteUmbrella:
		return SpriteInfo{Width: 600, Height: 300, Color: core.ColorPlayer, Shape: ShapeDome}
	case SpriteHandle:
		return SpriteInfo{Width: 10, Height: 110, Color: core.ColorHandle, Shape: ShapeRect}
	case SpriteNpcBody:
		return SpriteInfo{Width: 50, Height: 80, Color: DryColor, Shape: ShapeRect}
	case SpriteNpcEye:
		return SpriteInfo{Width: 12, Height: 12, Color: core.ColorEye, Shape: ShapeRect}
	default:
		return SpriteInfo{Width: 1, Height: 1, Color: core.ColorDefault, Shape: ShapeRect}
	}
}

func spriteOf(kind SpriteKind, info SpriteInfo) Sprite {
	w := max(info.Width, 1)
	return Sprite{Kind: kind, Shape: info.Shape, Color: info.Color, Width: w, Height: info.Height}
}
