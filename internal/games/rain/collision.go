package rain

import (
	"fmt"

	"github.com/vovakirdan/rainshield/internal/config"
	"github.com/vovakirdan/rainshield/internal/core"
	"github.com/vovakirdan/rainshield/internal/ecs"
)

// up is the fallback contact normal for a drop at the shield center.
var up = core.Vec(0, 1)

// bounce returns the velocity change that reflects the closing part of
// relVel along normal n, scaled by restitution. Separating or resting
// contacts get no impulse.
func bounce(n, relVel core.WorldVec2, restitution float64) (core.WorldVec2, bool) {
	dot := n.Dot(relVel)
	if dot >= 0 {
		return core.WorldVec2{}, false
	}
	return n.Scale(-(1 + restitution) * dot), true
}

// shieldContact reports whether a drop at offset diff from the shield
// center touches it. The shield only blocks from above.
func shieldContact(diff core.WorldVec2, reach float64) bool {
	return diff.Y >= 0 && diff.LengthSquared() < reach*reach
}

// shelterResponse returns the drop velocity after meeting a shelter.
// offset is the drop position relative to the shelter center. Contacts
// below the top-left diagonal hit the side face and reflect a rightward
// velocity; the rest hit the top face, reflect a falling velocity and get
// nudged sideways so drops cannot rest on the roof forever.
func shelterResponse(offset core.WorldVec2, bounds core.WorldRect, vel core.WorldVec2, restitution, nudge float64) (core.WorldVec2, bool) {
	if !bounds.Contains(offset) {
		return vel, false
	}
	r := core.WorldUnit(restitution)
	from := offset.Sub(bounds.TopLeft())
	if from.Y < -from.X {
		if vel.X > 0 {
			vel.X = -vel.X * r
		}
	} else if vel.Y < 0 {
		vel.Y = -vel.Y * r
		vel.X += core.WorldUnit(nudge)
	}
	return vel, true
}

// touchesRect reports whether a circle of the given radius at offset
// (relative to the rectangle center) overlaps the rectangle.
func touchesRect(offset core.WorldVec2, bounds core.WorldRect, radius float64) bool {
	closest := bounds.ClosestPoint(offset)
	return offset.Sub(closest).LengthSquared() < radius*radius
}

// resolveCollisions runs the player, shelter and NPC checks for every live drop.
func (g *Game) resolveCollisions() error {
	if err := g.collidePlayer(); err != nil {
		return err
	}
	if err := g.collideShelter(); err != nil {
		return err
	}
	g.absorbIntoNpcs()
	return nil
}

func (g *Game) collidePlayer() error {
	pe, _, err := ecs.Single(g.players)
	if err != nil {
		return fmt.Errorf("rain: player: %w", err)
	}
	pp, _ := g.positions.Get(pe)
	pv, _ := g.velocities.Get(pe)
	if pp == nil || pv == nil {
		return fmt.Errorf("rain: player %d is missing position or velocity", pe)
	}

	reach := g.cfg.Player.Width/2 + g.cfg.Rain.Radius
	destroy := g.cfg.Rain.OnPlayer == config.OnPlayerDestroy

	g.drops.Each(func(e ecs.Entity, _ *Drop) {
		if g.world.Pending(e) {
			return
		}
		p, _ := g.positions.Get(e)
		v, _ := g.velocities.Get(e)
		if p == nil || v == nil {
			return
		}

		diff := p.Pos.Sub(pp.Pos)
		if !shieldContact(diff, reach) {
			return
		}
		n := diff.NormalizeOr(up)
		impulse, closing := bounce(n, v.Delta.Sub(pv.Delta), g.cfg.Player.Restitution)
		if !closing {
			return
		}
		if destroy {
			g.world.Despawn(e)
			return
		}
		v.Delta = v.Delta.Add(impulse)
	})
	return nil
}

func (g *Game) collideShelter() error {
	se, shelter, err := ecs.Single(g.shelters)
	if err != nil {
		return fmt.Errorf("rain: shelter: %w", err)
	}
	sp, ok := g.positions.Get(se)
	if !ok {
		return fmt.Errorf("rain: shelter %d has no position", se)
	}

	g.drops.Each(func(e ecs.Entity, _ *Drop) {
		if g.world.Pending(e) {
			return
		}
		p, _ := g.positions.Get(e)
		v, _ := g.velocities.Get(e)
		if p == nil || v == nil {
			return
		}
		if nv, hit := shelterResponse(p.Pos.Sub(sp.Pos), shelter.Bounds, v.Delta, g.cfg.Shelter.Restitution, g.cfg.Shelter.Nudge); hit {
			v.Delta = nv
		}
	})
	return nil
}

// absorbIntoNpcs removes every drop touching a non-soaked NPC. A drop is
// absorbed by the first NPC it touches and never twice.
func (g *Game) absorbIntoNpcs() {
	radius := g.cfg.Rain.Radius
	npcs := g.npcs.Entities()

	g.drops.Each(func(d ecs.Entity, _ *Drop) {
		if g.world.Pending(d) {
			return
		}
		dp, ok := g.positions.Get(d)
		if !ok {
			return
		}
		for _, ne := range npcs {
			if g.world.Pending(ne) {
				continue
			}
			npc, _ := g.npcs.Get(ne)
			np, _ := g.positions.Get(ne)
			if npc == nil || np == nil || npc.Wetness.Soaked() {
				continue
			}
			if !touchesRect(dp.Pos.Sub(np.Pos), npc.Bounds, radius) {
				continue
			}

			g.world.Despawn(d)
			npc.Wetness.Absorb()
			g.emit(Absorption{Npc: ne, Drop: d, Wetness: npc.Wetness, Step: g.ctx.steps})
			return
		}
	})
}
