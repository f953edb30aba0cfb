package rain

import (
	"github.com/vovakirdan/rainshield/internal/core"
	"github.com/vovakirdan/rainshield/internal/ecs"
)

// applyGravity accelerates every gravity-tagged entity downward by g*dt.
func (g *Game) applyGravity(dt float64) {
	pull := core.WorldUnit(g.cfg.Physics.Gravity * dt)
	g.gravity.Each(func(e ecs.Entity, _ *Gravity) {
		if v, ok := g.velocities.Get(e); ok {
			v.Delta.Y -= pull
		}
	})
}

// integrate moves every entity with a velocity by velocity*dt.
func (g *Game) integrate(dt float64) {
	g.velocities.Each(func(e ecs.Entity, v *Velocity) {
		if p, ok := g.positions.Get(e); ok {
			p.Pos = integrateStep(p.Pos, v.Delta, dt)
		}
	})
}

func integrateStep(p, v core.WorldVec2, dt float64) core.WorldVec2 {
	return p.Add(v.Scale(dt))
}
