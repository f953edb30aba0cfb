package rain

import "github.com/vovakirdan/rainshield/internal/ecs"

// syncTransforms writes the absolute screen transform of every entity.
// Root entities are placed from their own position; children are their
// parent's transform plus their local offset. It reports false and leaves
// the previous transforms untouched when the window has no drawable area.
func (g *Game) syncTransforms() bool {
	if g.space.Degenerate() {
		return false
	}

	g.positions.Each(func(e ecs.Entity, p *Position) {
		if _, child := g.world.Parent(e); child {
			return
		}
		t := g.rootTransform(p)
		g.transforms.Set(e, t)
		g.syncChildren(e, t)
	})

	g.npcs.Each(func(_ ecs.Entity, npc *Npc) {
		if body, ok := g.looks.Get(npc.Body); ok {
			body.Color = npc.Wetness.Color()
		}
	})
	return true
}

func (g *Game) rootTransform(p *Position) Transform {
	x, y := g.space.ToWindow(p.Pos)
	sx, sy := g.spriteScale(p)
	return Transform{X: x, Y: y, ScaleX: sx, ScaleY: sy, Rotation: p.Rotation, Depth: p.Depth}
}

func (g *Game) syncChildren(parent ecs.Entity, pt Transform) {
	for _, c := range g.world.Children(parent) {
		p, ok := g.positions.Get(c)
		if !ok {
			continue
		}
		ox, oy := g.space.ToPixels(p.Pos)
		sx, sy := g.spriteScale(p)
		t := Transform{
			X:        pt.X + ox,
			Y:        pt.Y - oy,
			ScaleX:   sx,
			ScaleY:   sy,
			Rotation: pt.Rotation + p.Rotation,
			Depth:    p.Depth,
		}
		g.transforms.Set(c, t)
		g.syncChildren(c, t)
	}
}

// spriteScale converts native sprite pixels to window pixels so the
// sprite spans p.Scale world units horizontally.
func (g *Game) spriteScale(p *Position) (sx, sy float64) {
	if p.ImageWidth == 0 {
		return 0, 0
	}
	w := float64(p.ImageWidth)
	return g.space.ToX(p.Scale) / w, g.space.ToY(p.Scale) / w
}

// TransformOf returns the last synced transform of e.
func (g *Game) TransformOf(e ecs.Entity) (Transform, bool) {
	t, ok := g.transforms.Get(e)
	if !ok {
		return Transform{}, false
	}
	return *t, true
}
