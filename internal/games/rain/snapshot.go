package rain

import (
	"math"

	"github.com/vovakirdan/rainshield/internal/core"
	"github.com/vovakirdan/rainshield/internal/ecs"
)

// NpcSnapshot is the observable state of one NPC.
type NpcSnapshot struct {
	Pos     core.WorldVec2
	Mode    Mode
	Dir     Direction
	Wetness int
}

// Snapshot captures the simulation state for determinism checks.
type Snapshot struct {
	Step     int
	Score    int
	GameOver bool
	Player   core.WorldVec2
	Drops    []core.WorldVec2
	Npcs     []NpcSnapshot
	RNGState uint64
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Step:     g.ctx.steps,
		Score:    g.score.Total(),
		GameOver: g.gameOver,
		Drops:    g.dropPositions(),
		RNGState: g.ctx.rng.State(),
	}
	if e, _, err := ecs.Single(g.players); err == nil {
		if p, ok := g.positions.Get(e); ok {
			snap.Player = p.Pos
		}
	}
	g.npcs.Each(func(e ecs.Entity, npc *Npc) {
		p, ok := g.positions.Get(e)
		if !ok {
			return
		}
		snap.Npcs = append(snap.Npcs, NpcSnapshot{
			Pos:     p.Pos,
			Mode:    npc.State.Mode,
			Dir:     npc.State.Dir,
			Wetness: npc.Wetness.Level(),
		})
	})
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Step)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}
	h = hashVec(h, snap.Player)
	h = h*31 + uint64(len(snap.Drops))
	for _, d := range snap.Drops {
		h = hashVec(h, d)
	}
	h = h*31 + uint64(len(snap.Npcs))
	for _, n := range snap.Npcs {
		h = hashVec(h, n.Pos)
		h = h*31 + uint64(n.Mode)    //#nosec G115 -- hash computation
		h = h*31 + uint64(n.Dir+1)   //#nosec G115 -- hash computation
		h = h*31 + uint64(n.Wetness) //#nosec G115 -- hash computation
	}
	return h*31 + snap.RNGState
}

func hashVec(h uint64, v core.WorldVec2) uint64 {
	h = h*31 + math.Float64bits(float64(v.X))
	return h*31 + math.Float64bits(float64(v.Y))
}
