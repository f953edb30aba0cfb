package rain_test

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/rainshield/internal/config"
	"github.com/vovakirdan/rainshield/internal/core"
	"github.com/vovakirdan/rainshield/internal/games/rain"
	"github.com/vovakirdan/rainshield/internal/games/rain/mocks"
)

func newSinkGame(t *testing.T, sink rain.EventSink) *rain.Game {
	t.Helper()
	cfg := config.DefaultRainConfig()
	cfg.Npc.InitialCount = 0
	cfg.Npc.SpawnInterval = 0
	cfg.Rain.SpawnInterval = time.Hour
	cfg.Difficulty.Enabled = false

	g := rain.New(rain.WithConfig(cfg), rain.WithEventSink(sink))
	g.Reset(core.RuntimeConfig{ScreenW: 1280, ScreenH: 720, TickRate: 64, Seed: 1})
	return g
}

// npcTop is the height of the top edge of an NPC standing on the ground.
func npcTop(g *rain.Game) float64 {
	cfg := g.Config()
	return cfg.Physics.Ground + cfg.Npc.Height
}

func TestAbsorptionEmitsEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockEventSink(ctrl)

	g := newSinkGame(t, sink)
	cfg := g.Config()
	g.PlaceNpc(core.Vec(-10, cfg.Physics.Ground+cfg.Npc.Height/2))
	g.PlaceDrop(core.Vec(-10, npcTop(g)+0.2), core.WorldVec2{})

	sink.EXPECT().Absorbed(gomock.Any()).Times(1).Do(func(a rain.Absorption) {
		if a.Wetness.Level() != 1 {
			t.Errorf("Wetness.Level() = %d, expected 1", a.Wetness.Level())
		}
		if a.Step != 0 {
			t.Errorf("Step = %d, expected 0", a.Step)
		}
	})

	res := g.Step(core.NewInputFrame())
	if res.Events != 1 {
		t.Errorf("Events = %d, expected 1", res.Events)
	}
}

func TestAbsorptionsUntilSoaked(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockEventSink(ctrl)

	g := newSinkGame(t, sink)
	cfg := g.Config()
	g.PlaceNpc(core.Vec(-10, cfg.Physics.Ground+cfg.Npc.Height/2))

	var levels []int
	sink.EXPECT().Absorbed(gomock.Any()).Times(cfg.Npc.MaxWetness + 1).Do(func(a rain.Absorption) {
		levels = append(levels, a.Wetness.Level())
	})

	// Drop one onto the NPC every step, wherever it has run to.
	for range cfg.Npc.MaxWetness + 3 {
		snap := g.Snapshot()
		if len(snap.Npcs) != 1 {
			t.Fatalf("npcs = %d, expected 1", len(snap.Npcs))
		}
		x := float64(snap.Npcs[0].Pos.X)
		g.PlaceDrop(core.Vec(x, npcTop(g)+0.2), core.WorldVec2{})
		g.Step(core.NewInputFrame())
	}

	if g.State().Score != cfg.Npc.MaxWetness+1 {
		t.Errorf("Score = %d, expected %d", g.State().Score, cfg.Npc.MaxWetness+1)
	}
	for i, l := range levels {
		if l != i+1 {
			t.Errorf("levels[%d] = %d, expected %d", i, l, i+1)
		}
	}
}
