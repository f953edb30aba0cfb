package rain

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/rainshield/internal/config"
	"github.com/vovakirdan/rainshield/internal/core"
	"github.com/vovakirdan/rainshield/internal/registry"
)

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	run := func() uint64 {
		g := New(WithConfig(config.DefaultRainConfig()))
		g.Reset(testRuntime())
		for i := range 600 {
			var in core.InputFrame
			switch {
			case i%90 < 30:
				in = input(core.ActionLeft)
			case i%90 < 60:
				in = input(core.ActionRight, core.ActionUp)
			default:
				in = input()
			}
			g.Step(in)
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	h1, h2 := run(), run()
	if h1 != h2 {
		t.Errorf("runs with the same seed diverged: %x != %x", h1, h2)
	}
}

func TestSeedChangesRun(t *testing.T) {
	run := func(seed int64) Snapshot {
		g := New(WithConfig(config.DefaultRainConfig()))
		rt := testRuntime()
		rt.Seed = seed
		g.Reset(rt)
		for range 64 {
			g.Step(input())
		}
		return g.Snapshot()
	}

	a, b := run(1), run(7)
	if a.RNGState == b.RNGState {
		t.Error("different seeds produced the same RNG state")
	}
}

func TestPlayerMovesWithIntent(t *testing.T) {
	g := newTestGame(t)
	pe := playerOf(t, g)

	for range 64 {
		g.Step(input(core.ActionRight))
	}
	if got := float64(posOf(g, pe).Pos.X); math.Abs(got-g.cfg.Player.Speed) > 1e-6 {
		t.Errorf("player X = %v after 1s, expected %v", got, g.cfg.Player.Speed)
	}

	g.Step(input(core.ActionRight, core.ActionUp))
	v := velOf(g, pe).Delta
	if !approx(v.Length(), g.cfg.Player.Speed) {
		t.Errorf("diagonal speed = %v, expected %v", v.Length(), g.cfg.Player.Speed)
	}

	g.Step(input())
	if !velOf(g, pe).Delta.IsZero() {
		t.Errorf("velocity = %v with no input, expected zero", velOf(g, pe).Delta)
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	g := newTestGame(t)
	pe := playerOf(t, g)

	for range 256 {
		g.Step(input(core.ActionLeft, core.ActionDown))
	}
	half := core.WorldUnit(g.cfg.Player.Width / 2)
	p := posOf(g, pe).Pos
	if !approx(float64(p.X), float64(core.Left+half)) || !approx(float64(p.Y), float64(core.Bottom+half)) {
		t.Errorf("player at %v, expected (%v, %v)", p, core.Left+half, core.Bottom+half)
	}
}

func TestMissingPlayerAbortsStep(t *testing.T) {
	g := newTestGame(t)
	g.world.Despawn(playerOf(t, g))
	g.world.Flush()

	res := g.Step(input(core.ActionRight))
	if g.Err() == nil {
		t.Fatal("Err() = nil without a player")
	}
	if !IsInvariantError(g.Err()) {
		t.Errorf("IsInvariantError(%v) = false", g.Err())
	}
	if res.State.GameOver {
		t.Error("a broken invariant should not end the run")
	}
	if g.ctx.steps != 0 {
		t.Errorf("steps = %d, expected the step to be aborted", g.ctx.steps)
	}
}

func TestDuplicatePlayerAbortsStep(t *testing.T) {
	g := newTestGame(t)
	extra := g.world.Spawn()
	g.players.Set(extra, Player{})

	g.Step(input())
	if !IsInvariantError(g.Err()) {
		t.Fatalf("Err() = %v, expected an invariant error", g.Err())
	}

	g.world.Despawn(extra)
	g.world.Flush()
	g.Step(input())
	if g.Err() != nil {
		t.Errorf("Err() = %v after the extra player was removed", g.Err())
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := newTestGame(t)
	d := addDrop(g, core.Vec(-20, 10), core.WorldVec2{})

	res := g.Step(input(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("Step(Pause) did not pause")
	}
	before := posOf(g, d).Pos
	for range 10 {
		g.Step(input(core.ActionRight))
	}
	if posOf(g, d).Pos != before || g.ctx.steps != 0 {
		t.Error("simulation advanced while paused")
	}

	res = g.Step(input(core.ActionPause))
	if res.State.Paused || g.ctx.steps != 1 {
		t.Errorf("Paused = %v, steps = %d after unpausing", res.State.Paused, g.ctx.steps)
	}
}

func TestDebugToggle(t *testing.T) {
	g := newTestGame(t)
	g.SetFrameStats(60, 64)
	g.Step(input(core.ActionDebug))

	r := &recorder{w: 1280, h: 720}
	g.Render(r)
	if len(r.texts) != 2 || r.texts[1] != " fps 60  steps/s 64  drops 0  npcs 0 " {
		t.Errorf("HUD texts = %q, expected score and stats lines", r.texts)
	}
}

func TestRoundEnds(t *testing.T) {
	g := newTestGame(t, func(c *config.RainConfig) {
		c.Round.Duration = time.Second
	})

	for i := range 63 {
		if res := g.Step(input()); res.State.GameOver {
			t.Fatalf("GameOver after %d steps, expected 64", i+1)
		}
	}
	if g.Remaining() != testStep {
		t.Errorf("Remaining() = %v, expected %v", g.Remaining(), testStep)
	}

	res := g.Step(input())
	if !res.State.GameOver {
		t.Fatal("GameOver = false after 1s round")
	}

	g.Step(input())
	if g.ctx.steps != 64 {
		t.Errorf("steps = %d, expected no steps after game over", g.ctx.steps)
	}

	r := &recorder{w: 1280, h: 720}
	g.Render(r)
	if r.texts[1] != "TIME UP" {
		t.Errorf("texts = %q, expected TIME UP", r.texts)
	}

	g.Reset(testRuntime())
	if g.State().GameOver || g.Remaining() != time.Second {
		t.Error("Reset did not start a new round")
	}
}

func TestStepReportsAbsorptions(t *testing.T) {
	g := newTestGame(t)
	addNpc(g, core.Vec(-10, npcGround(g)))
	top := npcGround(g) + g.cfg.Npc.Height/2
	addDrop(g, core.Vec(-10, top+0.2), core.Vec(0, -1))

	res := g.Step(input())
	if res.Events != 1 || res.State.Score != 1 {
		t.Errorf("Events = %d, Score = %d, expected 1 and 1", res.Events, res.State.Score)
	}
	if res = g.Step(input()); res.Events != 0 {
		t.Errorf("Events = %d on the next step, expected 0", res.Events)
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"rain", "rain_chase"} {
		game, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", id, err)
		}
		if game.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, game.ID())
		}
		if _, ok := game.(registry.FrameStats); !ok {
			t.Errorf("%q does not accept frame stats", id)
		}
	}
}
