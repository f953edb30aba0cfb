package rain

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/rainshield/internal/config"
	"github.com/vovakirdan/rainshield/internal/core"
	"github.com/vovakirdan/rainshield/internal/ecs"
)

const tol = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < tol
}

func approxVec(a, b core.WorldVec2) bool {
	return approx(float64(a.X), float64(b.X)) && approx(float64(a.Y), float64(b.Y))
}

// quietConfig disables every automatic spawn so tests place entities by hand.
func quietConfig() config.RainConfig {
	cfg := config.DefaultRainConfig()
	cfg.Npc.InitialCount = 0
	cfg.Npc.SpawnInterval = 0
	cfg.Rain.SpawnInterval = time.Hour
	cfg.Round.Duration = 0
	cfg.Difficulty.Enabled = false
	return cfg
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 1280, ScreenH: 720, TickRate: 64, FPS: 60, Seed: 1}
}

func newTestGame(t *testing.T, mutate ...func(*config.RainConfig)) *Game {
	t.Helper()
	cfg := quietConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	g := New(WithConfig(cfg))
	g.Reset(testRuntime())
	return g
}

func addDrop(g *Game, pos, vel core.WorldVec2) ecs.Entity {
	g.spawnDropAt(pos, vel)
	g.world.Flush()
	es := g.drops.Entities()
	return es[len(es)-1]
}

func addNpc(g *Game, pos core.WorldVec2) ecs.Entity {
	g.spawnNpcAt(pos)
	g.world.Flush()
	es := g.npcs.Entities()
	return es[len(es)-1]
}

func playerOf(t *testing.T, g *Game) ecs.Entity {
	t.Helper()
	e, _, err := ecs.Single(g.players)
	if err != nil {
		t.Fatalf("Single(players) error = %v", err)
	}
	return e
}

func posOf(g *Game, e ecs.Entity) *Position {
	p, _ := g.positions.Get(e)
	return p
}

func velOf(g *Game, e ecs.Entity) *Velocity {
	v, _ := g.velocities.Get(e)
	return v
}

// npcGround is the resting center height of an NPC in the default config.
func npcGround(g *Game) float64 {
	return g.cfg.Physics.Ground + g.cfg.Npc.Height/2
}

// recorder is a Canvas that counts draw calls.
type recorder struct {
	w, h    int
	rects   int
	circles int
	domes   int
	texts   []string
	textX   []float64
	textY   []float64
}

func (r *recorder) Size() (int, int) {
	return r.w, r.h
}

func (r *recorder) FillRect(_, _, _, _ float64, _ core.Color) {
	r.rects++
}

func (r *recorder) FillCircle(_, _, _ float64, _ core.Color) {
	r.circles++
}

func (r *recorder) FillDome(_, _, _ float64, _ core.Color) {
	r.domes++
}

func (r *recorder) MeasureText(text string) (float64, float64) {
	return float64(len(text)), 1
}

func (r *recorder) DrawText(x, y float64, text string, _ core.Color) {
	r.texts = append(r.texts, text)
	r.textX = append(r.textX, x)
	r.textY = append(r.textY, y)
}
