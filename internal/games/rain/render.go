package rain

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/rainshield/internal/core"
	"github.com/vovakirdan/rainshield/internal/ecs"
)

// Render syncs transforms and draws the scene and HUD.
// Nothing but the HUD is drawn while the window has no drawable area.
func (g *Game) Render(dst core.Canvas) {
	if g.syncTransforms() {
		g.drawScene(dst)
	}
	g.drawHUD(dst)
}

func (g *Game) drawScene(dst core.Canvas) {
	type item struct {
		t    Transform
		look Sprite
	}
	items := make([]item, 0, g.looks.Len())
	g.looks.Each(func(e ecs.Entity, s *Sprite) {
		if t, ok := g.transforms.Get(e); ok {
			items = append(items, item{t: *t, look: *s})
		}
	})
	slices.SortStableFunc(items, func(a, b item) int {
		switch {
		case a.t.Depth < b.t.Depth:
			return -1
		case a.t.Depth > b.t.Depth:
			return 1
		default:
			return 0
		}
	})

	for _, it := range items {
		drawSprite(dst, it.t, it.look)
	}
}

func drawSprite(dst core.Canvas, t Transform, s Sprite) {
	w := float64(s.Width) * t.ScaleX
	h := float64(s.Height) * t.ScaleY
	switch s.Shape {
	case ShapeCircle:
		dst.FillCircle(t.X, t.Y, w/2, s.Color)
	case ShapeDome:
		dst.FillDome(t.X, t.Y, w/2, s.Color)
	default:
		dst.FillRect(t.X-w/2, t.Y-h/2, w, h, s.Color)
	}
}

// drawHUD writes the overlays inside the letterboxed viewport so they stay
// over the world on windows wider or taller than 16:9.
func (g *Game) drawHUD(dst core.Canvas) {
	vx, vy, vw, vh := g.space.Viewport()
	_, lineH := dst.MeasureText("M")

	score := fmt.Sprintf(" Score: %d ", g.score.Total())
	if rem := g.Remaining(); rem > 0 {
		score += fmt.Sprintf(" Time: %d ", int(rem.Seconds()+0.999))
	}
	dst.DrawText(vx, vy, score, core.ColorText)

	if g.debug {
		stats := fmt.Sprintf(" fps %d  steps/s %d  drops %d  npcs %d ", g.fps, g.tps, g.drops.Len(), g.npcs.Len())
		dst.DrawText(vx, vy+lineH, stats, core.ColorDim)
	}

	switch {
	case g.gameOver:
		drawCentered(dst, vx+vw/2, vy+vh/2, "TIME UP", fmt.Sprintf("Score: %d  |  Press R to restart", g.score.Total()))
	case g.paused:
		drawCentered(dst, vx+vw/2, vy+vh/2, "PAUSED", "Press P to resume")
	}
}

func drawCentered(dst core.Canvas, cx, cy float64, title, subtitle string) {
	tw, th := dst.MeasureText(title)
	sw, _ := dst.MeasureText(subtitle)
	y := cy - th
	dst.DrawText(cx-tw/2, y, title, core.ColorText)
	dst.DrawText(cx-sw/2, y+2*th, subtitle, core.ColorDim)
}
