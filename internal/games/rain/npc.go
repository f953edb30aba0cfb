package rain

import (
	"time"

	"github.com/vovakirdan/rainshield/internal/config"
	"github.com/vovakirdan/rainshield/internal/core"
	"github.com/vovakirdan/rainshield/internal/ecs"
)

// Mode is the activity of an NPC.
type Mode int

const (
	ModeIdle Mode = iota
	ModeWalking
	ModeRunning
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeWalking:
		return "walking"
	case ModeRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Direction is a horizontal heading. Zero means none.
type Direction int

const (
	DirLeft  Direction = -1
	DirNone  Direction = 0
	DirRight Direction = 1
)

// NpcState is Idle(timer), Walking(dir, timer) or Running(dir, timer).
// Dir is DirNone while idle.
type NpcState struct {
	Mode  Mode
	Dir   Direction
	Timer time.Duration
}

// Idle returns the idle state with the given timer.
func Idle(timer time.Duration) NpcState {
	return NpcState{Mode: ModeIdle, Timer: timer}
}

// Walking returns the walking state.
func Walking(dir Direction, timer time.Duration) NpcState {
	return NpcState{Mode: ModeWalking, Dir: dir, Timer: timer}
}

// Running returns the running state.
func Running(dir Direction, timer time.Duration) NpcState {
	return NpcState{Mode: ModeRunning, Dir: dir, Timer: timer}
}

// alert reports whether a sighted hazard interrupts the state.
func (s NpcState) alert() bool {
	return s.Mode == ModeIdle || s.Mode == ModeWalking
}

// Next evaluates one step of the state machine. run is the direction to
// run in if a hazard is in sight, DirNone otherwise.
func (s NpcState) Next(dt time.Duration, run Direction, cfg config.NpcConfig, rng *RNG) NpcState {
	if run != DirNone && s.alert() {
		return Running(run, cfg.RunTime)
	}

	s.Timer -= dt
	if s.Timer > 0 {
		return s
	}

	switch s.Mode {
	case ModeRunning:
		if run != DirNone {
			return Running(run, cfg.RunTime)
		}
		return Idle(cfg.IdleTime)
	case ModeIdle:
		switch rng.Intn(3) {
		case 0:
			return Idle(cfg.IdleTime)
		case 1:
			return Walking(DirLeft, cfg.WalkTime)
		default:
			return Walking(DirRight, cfg.WalkTime)
		}
	default:
		return Idle(cfg.IdleTime)
	}
}

// Speed returns the signed horizontal speed for the state.
func (s NpcState) Speed(cfg config.NpcConfig) float64 {
	switch s.Mode {
	case ModeWalking:
		return cfg.WalkSpeed * float64(s.Dir)
	case ModeRunning:
		return cfg.RunSpeed * float64(s.Dir)
	default:
		return 0
	}
}

// runDirection picks the side to run to for a hazard at hazardX.
func runDirection(npcX, hazardX core.WorldUnit, reaction string) Direction {
	toward := DirRight
	if hazardX < npcX {
		toward = DirLeft
	}
	if reaction == config.ReactionChase {
		return toward
	}
	return -toward
}

// nearestDrop returns the closest drop strictly within sight. Ties keep
// the first in iteration order.
func nearestDrop(from core.WorldVec2, drops []core.WorldVec2, sight float64) (core.WorldVec2, bool) {
	var (
		best  core.WorldVec2
		bestD = sight * sight
		found bool
	)
	for _, d := range drops {
		dist := d.Sub(from).LengthSquared()
		if dist < bestD {
			best, bestD, found = d, dist, true
		}
	}
	return best, found
}

// separate pushes the headings of two walking NPCs apart when they overlap
// horizontally. a must not be to the right of b. Running NPCs keep the
// heading their reaction chose.
func separate(a, b *NpcState) {
	if a.Mode == ModeWalking {
		a.Dir = DirLeft
	}
	if b.Mode == ModeWalking {
		b.Dir = DirRight
	}
}

// atEdge reports whether an NPC heading dir at x is pressed against a side.
func atEdge(x core.WorldUnit, dir Direction, edge core.WorldUnit) bool {
	return (dir == DirLeft && x <= -edge) || (dir == DirRight && x >= edge)
}

// updateNpcs runs the NPC decision system: state transitions, soaked
// timeouts, pairwise separation, edge handling and velocity output.
func (g *Game) updateNpcs(dt time.Duration) {
	cfg := g.cfg.Npc
	drops := g.dropPositions()

	type walker struct {
		e   ecs.Entity
		npc *Npc
		pos *Position
	}
	walkers := make([]walker, 0, g.npcs.Len())

	g.npcs.Each(func(e ecs.Entity, npc *Npc) {
		if g.world.Pending(e) {
			return
		}
		pos, ok := g.positions.Get(e)
		if !ok {
			return
		}

		run := DirNone
		if hazard, ok := nearestDrop(pos.Pos, drops, cfg.SightDistance); ok {
			run = runDirection(pos.Pos.X, hazard.X, g.cfg.Npc.Reaction)
		}
		npc.State = npc.State.Next(dt, run, cfg, g.ctx.rng)

		if npc.Wetness.Soaked() {
			npc.SoakedFor += dt
			if cfg.SoakedTimeout > 0 && npc.SoakedFor >= cfg.SoakedTimeout {
				g.world.Despawn(e)
				return
			}
		}
		walkers = append(walkers, walker{e: e, npc: npc, pos: pos})
	})

	if cfg.Separation {
		for i := range walkers {
			for j := i + 1; j < len(walkers); j++ {
				a, b := walkers[i], walkers[j]
				dx := b.pos.Pos.X - a.pos.Pos.X
				if dx.Abs() >= core.WorldUnit(cfg.Width) {
					continue
				}
				if dx >= 0 {
					separate(&a.npc.State, &b.npc.State)
				} else {
					separate(&b.npc.State, &a.npc.State)
				}
			}
		}
	}

	// Walkers turn around at a side; runners hold there until their run ends.
	edge := core.Right - core.WorldUnit(cfg.Width/2)
	for _, w := range walkers {
		s := &w.npc.State
		speed := s.Speed(cfg)
		if atEdge(w.pos.Pos.X, s.Dir, edge) {
			switch s.Mode {
			case ModeWalking:
				s.Dir = -s.Dir
				speed = s.Speed(cfg)
			case ModeRunning:
				speed = 0
			}
		}
		if v, ok := g.velocities.Get(w.e); ok {
			v.Delta = core.Vec(speed, 0)
		}
	}
}
