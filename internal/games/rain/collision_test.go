package rain

import (
	"testing"

	"github.com/vovakirdan/rainshield/internal/config"
	"github.com/vovakirdan/rainshield/internal/core"
)

func TestBounceReturnsRestitutionTimesClosingSpeed(t *testing.T) {
	tests := []struct {
		name        string
		n           core.WorldVec2
		relVel      core.WorldVec2
		restitution float64
	}{
		{"head on", core.Vec(0, 1), core.Vec(0, -5), 0.15},
		{"diagonal", core.Vec(0.6, 0.8), core.Vec(-6, -8), 0.15},
		{"glancing", core.Vec(0.6, 0.8), core.Vec(4, -6), 0.3},
		{"elastic", core.Vec(1, 0), core.Vec(-2, 7), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closing := -tt.n.Dot(tt.relVel)
			impulse, ok := bounce(tt.n, tt.relVel, tt.restitution)
			if !ok {
				t.Fatal("bounce() reported no contact for a closing velocity")
			}
			separating := tt.n.Dot(tt.relVel.Add(impulse))
			if !approx(separating, tt.restitution*closing) {
				t.Errorf("separating speed = %v, expected %v", separating, tt.restitution*closing)
			}
		})
	}
}

func TestBounceIgnoresSeparatingContact(t *testing.T) {
	for _, rel := range []core.WorldVec2{core.Vec(0, 3), core.Vec(5, 0)} {
		if impulse, ok := bounce(core.Vec(0, 1), rel, 0.15); ok || !impulse.IsZero() {
			t.Errorf("bounce(%v) = %v, %v, expected no impulse", rel, impulse, ok)
		}
	}
}

func TestShieldContactOnlyFromAbove(t *testing.T) {
	tests := []struct {
		diff     core.WorldVec2
		expected bool
	}{
		{core.Vec(0, 3), true},
		{core.Vec(2, 0), true},
		{core.Vec(0, -1), false},
		{core.Vec(0, 3.9), false},
		{core.Vec(3, 3), false},
	}
	for _, tt := range tests {
		if got := shieldContact(tt.diff, 3.9); got != tt.expected {
			t.Errorf("shieldContact(%v) = %v, expected %v", tt.diff, got, tt.expected)
		}
	}
}

func TestPlayerDeflectsRainAndKeepsItsVelocity(t *testing.T) {
	g := newTestGame(t)
	pe := playerOf(t, g)
	d := addDrop(g, core.Vec(0, 3), core.Vec(0, -5))

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	if err := g.applyIntent(in); err != nil {
		t.Fatalf("applyIntent() error = %v", err)
	}
	if err := g.collidePlayer(); err != nil {
		t.Fatalf("collidePlayer() error = %v", err)
	}

	pv := velOf(g, pe).Delta
	if !approxVec(pv, core.Vec(g.cfg.Player.Speed, 0)) {
		t.Errorf("player velocity = %v, expected unchanged (%v, 0)", pv, g.cfg.Player.Speed)
	}
	dv := velOf(g, d).Delta
	separating := float64(dv.Sub(pv).Y)
	if !approx(separating, g.cfg.Player.Restitution*5) {
		t.Errorf("separating speed = %v, expected %v", separating, g.cfg.Player.Restitution*5)
	}
	if g.world.Pending(d) {
		t.Error("deflect policy must not despawn the drop")
	}
}

func TestPlayerDestroyPolicy(t *testing.T) {
	g := newTestGame(t, func(c *config.RainConfig) { c.Rain.OnPlayer = config.OnPlayerDestroy })
	d := addDrop(g, core.Vec(1, 2), core.Vec(0, -5))

	if err := g.collidePlayer(); err != nil {
		t.Fatalf("collidePlayer() error = %v", err)
	}
	if !g.world.Pending(d) {
		t.Error("destroy policy should queue the drop for removal")
	}
}

func TestShelterFaces(t *testing.T) {
	// Shelter centered at (100, -50) with half-extents (75, 120):
	// its top-left corner is (25, 70).
	center := core.Vec(100, -50)
	bounds := core.WorldRect{HalfW: 75, HalfH: 120}
	const r, nudge = 0.3, 1.0

	tests := []struct {
		name     string
		pos      core.WorldVec2
		vel      core.WorldVec2
		expected core.WorldVec2
		hit      bool
	}{
		// from corner (75, -30): -30 >= -75, top face
		{"top face falling", core.Vec(100, 40), core.Vec(0, -10), core.Vec(nudge, 3), true},
		{"top face rising", core.Vec(100, 40), core.Vec(2, 4), core.Vec(2, 4), true},
		// from corner (5, -10): -10 < -5, side face
		{"side face moving in", core.Vec(30, 60), core.Vec(10, -10), core.Vec(-3, -10), true},
		{"side face moving out", core.Vec(30, 60), core.Vec(-4, -10), core.Vec(-4, -10), true},
		{"touching edge", core.Vec(175, -50), core.Vec(0, -2), core.Vec(nudge, 0.6), true},
		{"outside", core.Vec(200, 0), core.Vec(0, -10), core.Vec(0, -10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := shelterResponse(tt.pos.Sub(center), bounds, tt.vel, r, nudge)
			if hit != tt.hit {
				t.Errorf("shelterResponse() hit = %v, expected %v", hit, tt.hit)
			}
			if !approxVec(got, tt.expected) {
				t.Errorf("shelterResponse() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestNpcAbsorbsDropOnce(t *testing.T) {
	g := newTestGame(t)
	n := addNpc(g, core.Vec(0, npcGround(g)))
	top := npcGround(g) + g.cfg.Npc.Height/2
	d := addDrop(g, core.Vec(0, top+0.3), core.Vec(0, -1))

	g.absorbIntoNpcs()
	g.absorbIntoNpcs() // same step, drop already queued

	npc, _ := g.npcs.Get(n)
	if npc.Wetness.Level() != 1 {
		t.Errorf("Wetness.Level() = %d, expected 1", npc.Wetness.Level())
	}
	if g.State().Score != 1 {
		t.Errorf("Score = %d, expected 1", g.State().Score)
	}
	if !g.world.Pending(d) {
		t.Fatal("absorbed drop should be queued for removal")
	}
	g.world.Flush()
	if g.world.Alive(d) || g.drops.Len() != 0 {
		t.Error("absorbed drop should be gone after flush")
	}
}

func TestOverlappingNpcsShareOneDrop(t *testing.T) {
	g := newTestGame(t)
	a := addNpc(g, core.Vec(0, npcGround(g)))
	b := addNpc(g, core.Vec(0.5, npcGround(g)))
	addDrop(g, core.Vec(0.25, npcGround(g)), core.WorldVec2{})

	g.absorbIntoNpcs()

	na, _ := g.npcs.Get(a)
	nb, _ := g.npcs.Get(b)
	if total := na.Wetness.Level() + nb.Wetness.Level(); total != 1 {
		t.Errorf("total wetness = %d, expected exactly one absorption", total)
	}
	if g.State().Score != 1 {
		t.Errorf("Score = %d, expected 1", g.State().Score)
	}
}

func TestSoakedNpcStopsAbsorbing(t *testing.T) {
	g := newTestGame(t)
	n := addNpc(g, core.Vec(0, npcGround(g)))
	npc, _ := g.npcs.Get(n)
	for !npc.Wetness.Soaked() {
		npc.Wetness.Absorb()
	}
	level := npc.Wetness.Level()

	d := addDrop(g, core.Vec(0, npcGround(g)), core.WorldVec2{})
	g.absorbIntoNpcs()

	if npc.Wetness.Level() != level {
		t.Errorf("Wetness.Level() = %d, expected unchanged %d", npc.Wetness.Level(), level)
	}
	if g.world.Pending(d) {
		t.Error("soaked NPC must not absorb")
	}
	if g.State().Score != 0 {
		t.Errorf("Score = %d, expected 0", g.State().Score)
	}
}

func TestTouchesRect(t *testing.T) {
	bounds := core.RectOf(2, 3.2)
	tests := []struct {
		offset   core.WorldVec2
		expected bool
	}{
		{core.Vec(0, 0), true},
		{core.Vec(0, 1.9), true},
		{core.Vec(0, 2.1), false},
		{core.Vec(1.2, 1.8), true},
		{core.Vec(1.4, 1.9), false},
	}
	for _, tt := range tests {
		if got := touchesRect(tt.offset, bounds, 0.4); got != tt.expected {
			t.Errorf("touchesRect(%v) = %v, expected %v", tt.offset, got, tt.expected)
		}
	}
}
