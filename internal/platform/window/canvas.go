package window

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/rainshield/internal/core"
)

// Glyph size of the ebitenutil debug font.
const (
	glyphW = 6
	glyphH = 16
)

// canvas draws onto an ebiten image.
type canvas struct {
	dst *ebiten.Image
}

var _ core.Canvas = canvas{}

func (c canvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (c canvas) FillRect(x, y, w, h float64, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), toRGBA(col), true)
}

func (c canvas) FillCircle(cx, cy, r float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), toRGBA(col), true)
}

// FillDome fills the upper half disc one pixel row at a time.
func (c canvas) FillDome(cx, cy, r float64, col core.Color) {
	rgba := toRGBA(col)
	for _, s := range domeSpans(cx, cy, r) {
		vector.DrawFilledRect(c.dst, float32(s.x), float32(s.y), float32(s.w), 1, rgba, false)
	}
}

// DrawText uses the debug font, which is always white.
func (c canvas) DrawText(x, y float64, text string, _ core.Color) {
	ebitenutil.DebugPrintAt(c.dst, text, int(x), int(y))
}

func (c canvas) MeasureText(text string) (w, h float64) {
	return float64(utf8.RuneCountInString(text) * glyphW), glyphH
}

// span is one horizontal pixel row of a filled shape.
type span struct {
	x, y, w float64
}

// domeSpans returns the rows covering the upper half of a disc whose
// flat base lies on y = cy.
func domeSpans(cx, cy, r float64) []span {
	if r <= 0 {
		return nil
	}
	rows := int(math.Ceil(r))
	spans := make([]span, 0, rows)
	for i := range rows {
		dy := float64(i) + 0.5
		if dy > r {
			break
		}
		hw := math.Sqrt(r*r - dy*dy)
		spans = append(spans, span{x: cx - hw, y: cy - float64(i) - 1, w: 2 * hw})
	}
	return spans
}

// toRGBA converts a "#RRGGBB" color. The default color is white.
func toRGBA(c core.Color) color.RGBA {
	r, g, b, ok := c.Components()
	if !ok {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
