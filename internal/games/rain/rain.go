package rain

import (
	"time"

	"github.com/vovakirdan/rainshield/internal/core"
	"github.com/vovakirdan/rainshield/internal/ecs"
)

// outOfBounds reports whether a drop of the given radius has left the
// visible area through the floor or a side.
func outOfBounds(p core.WorldVec2, radius core.WorldUnit) bool {
	return p.Y < core.Bottom-radius || p.X < core.Left-radius || p.X > core.Right+radius
}

// cleanupRain marks drops that left the screen for removal.
func (g *Game) cleanupRain() {
	radius := core.WorldUnit(g.cfg.Rain.Radius)
	g.drops.Each(func(e ecs.Entity, _ *Drop) {
		if p, ok := g.positions.Get(e); ok && outOfBounds(p.Pos, radius) {
			g.world.Despawn(e)
		}
	})
}

// dropPositions returns the positions of drops not queued for removal.
func (g *Game) dropPositions() []core.WorldVec2 {
	out := make([]core.WorldVec2, 0, g.drops.Len())
	g.drops.Each(func(e ecs.Entity, _ *Drop) {
		if g.world.Pending(e) {
			return
		}
		if p, ok := g.positions.Get(e); ok {
			out = append(out, p.Pos)
		}
	})
	return out
}

// tickSpawners advances the rain and NPC spawn timers and queues spawns
// that came due. Spawns are applied by the next flush.
func (g *Game) tickSpawners(dt time.Duration) {
	score, steps := g.score.Total(), g.ctx.steps

	g.ctx.rainTimer += dt
	interval := g.difficulty.SpawnInterval(g.cfg.Rain.SpawnInterval, score, steps)
	for g.ctx.rainTimer >= interval {
		g.ctx.rainTimer -= interval
		g.spawnDrop()
	}

	if g.cfg.Npc.SpawnInterval <= 0 {
		return
	}
	g.ctx.npcTimer += dt
	if g.ctx.npcTimer < g.cfg.Npc.SpawnInterval {
		return
	}
	g.ctx.npcTimer -= g.cfg.Npc.SpawnInterval
	if g.liveNpcs() < g.difficulty.MaxNpcs(g.cfg.Npc.MaxCount, score, steps) {
		g.spawnNpc()
	}
}

func (g *Game) liveNpcs() int {
	n := 0
	g.npcs.Each(func(e ecs.Entity, _ *Npc) {
		if !g.world.Pending(e) {
			n++
		}
	})
	return n
}

// spawnDrop queues a drop at a random x just above the top edge.
func (g *Game) spawnDrop() {
	r := g.cfg.Rain.Radius
	x := g.ctx.rng.Range(float64(core.Left), float64(core.Right))
	g.spawnDropAt(core.Vec(x, float64(core.Top)+r), core.WorldVec2{})
}

// spawnDropAt queues a drop with the given position and velocity.
func (g *Game) spawnDropAt(pos, vel core.WorldVec2) {
	look := spriteOf(SpriteRain, g.sprites.Sprite(SpriteRain))
	diameter := core.WorldUnit(2 * g.cfg.Rain.Radius)

	g.world.Queue(func(w *ecs.World) {
		e := w.Spawn()
		g.positions.Set(e, Position{Pos: pos, Scale: diameter, ImageWidth: look.Width, Depth: DepthRain})
		g.velocities.Set(e, Velocity{Delta: vel})
		g.gravity.Set(e, Gravity{})
		g.drops.Set(e, Drop{})
		g.looks.Set(e, look)
	})
}

// spawnNpc queues an NPC standing on the ground at a random x.
func (g *Game) spawnNpc() {
	half := g.cfg.Npc.Width / 2
	x := g.ctx.rng.Range(float64(core.Left)+half, float64(core.Right)-half)
	g.spawnNpcAt(core.Vec(x, g.cfg.Physics.Ground+g.cfg.Npc.Height/2))
}

// spawnNpcAt queues an NPC with its body and eye children.
func (g *Game) spawnNpcAt(pos core.WorldVec2) {
	cfg := g.cfg.Npc
	body := spriteOf(SpriteNpcBody, g.sprites.Sprite(SpriteNpcBody))
	eye := spriteOf(SpriteNpcEye, g.sprites.Sprite(SpriteNpcEye))
	width := core.WorldUnit(cfg.Width)

	g.world.Queue(func(w *ecs.World) {
		e := w.Spawn()
		b := w.Spawn()
		i := w.Spawn()
		w.AddChild(e, b)
		w.AddChild(e, i)

		g.positions.Set(e, Position{Pos: pos})
		g.velocities.Set(e, Velocity{})
		g.npcs.Set(e, Npc{
			State:   Idle(cfg.IdleTime),
			Wetness: NewWetness(cfg.MaxWetness),
			Bounds:  core.RectOf(width, core.WorldUnit(cfg.Height)),
			Body:    b,
			Eye:     i,
		})

		g.positions.Set(b, Position{Scale: width, ImageWidth: body.Width, Depth: DepthNpcBody})
		g.looks.Set(b, body)
		g.positions.Set(i, Position{
			Pos:        core.Vec(cfg.Width/4, cfg.Height*0.4),
			Scale:      width / 4,
			ImageWidth: eye.Width,
			Depth:      DepthNpcEye,
		})
		g.looks.Set(i, eye)
	})
}

// spawnScene queues the static scene: background, shelter and player.
func (g *Game) spawnScene() {
	sky := spriteOf(SpriteSky, g.sprites.Sprite(SpriteSky))
	ground := spriteOf(SpriteGround, g.sprites.Sprite(SpriteGround))
	shelter := spriteOf(SpriteShelter, g.sprites.Sprite(SpriteShelter))
	umbrella := spriteOf(SpriteUmbrella, g.sprites.Sprite(SpriteUmbrella))
	handle := spriteOf(SpriteHandle, g.sprites.Sprite(SpriteHandle))

	groundTop := core.WorldUnit(g.cfg.Physics.Ground)
	groundDepth := groundTop - core.Bottom
	// Stretch the ground strip to cover everything below ground level.
	ground.Height = uint32(float64(groundDepth) / core.UnitsPerScreenWidth * float64(ground.Width)) //#nosec G115 -- ground lies inside the screen

	sc := g.cfg.Shelter
	pc := g.cfg.Player
	umbrella.Width = pc.ImageWidth
	if pc.ImageHeight > 0 {
		umbrella.Height = pc.ImageHeight
	}

	g.world.Queue(func(w *ecs.World) {
		bg := w.Spawn()
		g.positions.Set(bg, Position{Scale: core.UnitsPerScreenWidth, ImageWidth: sky.Width, Depth: DepthBackground})
		g.looks.Set(bg, sky)

		gr := w.Spawn()
		w.AddChild(bg, gr)
		g.positions.Set(gr, Position{
			Pos:        core.WorldVec2{Y: core.Bottom + groundDepth/2},
			Scale:      core.UnitsPerScreenWidth,
			ImageWidth: ground.Width,
			Depth:      DepthGround,
		})
		g.looks.Set(gr, ground)

		s := w.Spawn()
		g.positions.Set(s, Position{
			Pos:        core.Vec(float64(core.Right)-sc.Width/2, float64(groundTop)+sc.Height/2),
			Scale:      core.WorldUnit(sc.Width),
			ImageWidth: shelter.Width,
			Depth:      DepthShelter,
		})
		g.shelters.Set(s, Shelter{Bounds: core.RectOf(core.WorldUnit(sc.Width), core.WorldUnit(sc.Height))})
		g.looks.Set(s, shelter)

		p := w.Spawn()
		g.positions.Set(p, Position{Scale: core.WorldUnit(pc.Width), ImageWidth: umbrella.Width, Depth: DepthPlayer})
		g.velocities.Set(p, Velocity{})
		g.players.Set(p, Player{})
		g.looks.Set(p, umbrella)

		h := w.Spawn()
		w.AddChild(p, h)
		handleW := core.WorldUnit(pc.Width / 20)
		handleH := handleW * core.WorldUnit(handle.Height) / core.WorldUnit(handle.Width)
		g.positions.Set(h, Position{
			Pos:        core.WorldVec2{Y: -handleH / 2},
			Scale:      handleW,
			ImageWidth: handle.Width,
			Depth:      DepthPlayer,
		})
		g.looks.Set(h, handle)
	})
}
