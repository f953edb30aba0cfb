package rain

import (
	"fmt"

	"github.com/vovakirdan/rainshield/internal/core"
	"github.com/vovakirdan/rainshield/internal/ecs"
)

// applyIntent sets the player's velocity from the directional input.
// Diagonals are normalized so every heading moves at the same speed.
func (g *Game) applyIntent(in core.InputFrame) error {
	e, _, err := ecs.Single(g.players)
	if err != nil {
		return fmt.Errorf("rain: player: %w", err)
	}
	v, ok := g.velocities.Get(e)
	if !ok {
		return fmt.Errorf("rain: player %d has no velocity", e)
	}

	ax, ay := in.Axis()
	dir := core.Vec(float64(ax), float64(ay)).NormalizeOr(core.WorldVec2{})
	v.Delta = dir.Scale(g.cfg.Player.Speed)
	return nil
}

// clampBodies keeps the player inside the playable rectangle and NPCs
// inside the playable width.
func (g *Game) clampBodies() {
	half := core.WorldUnit(g.cfg.Player.Width / 2)
	g.players.Each(func(e ecs.Entity, _ *Player) {
		if p, ok := g.positions.Get(e); ok {
			p.Pos.X = core.ClampUnit(p.Pos.X, core.Left+half, core.Right-half)
			p.Pos.Y = core.ClampUnit(p.Pos.Y, core.Bottom+half, core.Top-half)
		}
	})

	npcHalf := core.WorldUnit(g.cfg.Npc.Width / 2)
	g.npcs.Each(func(e ecs.Entity, _ *Npc) {
		if p, ok := g.positions.Get(e); ok {
			p.Pos.X = core.ClampUnit(p.Pos.X, core.Left+npcHalf, core.Right-npcHalf)
		}
	})
}
