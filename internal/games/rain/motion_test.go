package rain

import (
	"testing"

	"github.com/vovakirdan/rainshield/internal/core"
)

func TestIntegrationSplitsLinearly(t *testing.T) {
	tests := []struct {
		v  core.WorldVec2
		dt float64
		n  int
	}{
		{core.Vec(1, -2), 1.0 / 64, 64},
		{core.Vec(-15.6, 0.5), 0.01, 7},
		{core.Vec(0, 0), 0.5, 3},
		{core.Vec(3, 4), 0, 10},
	}

	for _, tt := range tests {
		start := core.Vec(2, 5)
		split := start
		for range tt.n {
			split = integrateStep(split, tt.v, tt.dt)
		}
		whole := integrateStep(start, tt.v, float64(tt.n)*tt.dt)

		if !approxVec(split, whole) {
			t.Errorf("%d steps of %v = %v, expected %v", tt.n, tt.dt, split, whole)
		}
	}
}

func TestGravityDecreasesVerticalVelocity(t *testing.T) {
	g := newTestGame(t)
	d := addDrop(g, core.Vec(-20, 10), core.Vec(1, 0))
	dt := testStep.Seconds()
	pull := g.cfg.Physics.Gravity * dt

	prev := float64(velOf(g, d).Delta.Y)
	for i := 0; i < 32; i++ {
		g.applyGravity(dt)
		got := float64(velOf(g, d).Delta.Y)
		if !approx(prev-got, pull) {
			t.Fatalf("step %d: velocity dropped by %v, expected %v", i, prev-got, pull)
		}
		prev = got
	}

	if got := velOf(g, d).Delta.X; got != 1 {
		t.Errorf("gravity changed horizontal velocity to %v", got)
	}
}

func TestGravityOnlyAffectsTaggedEntities(t *testing.T) {
	g := newTestGame(t)
	pe := playerOf(t, g)
	g.applyGravity(testStep.Seconds())

	if v := velOf(g, pe).Delta; !v.IsZero() {
		t.Errorf("player velocity = %v, expected untouched", v)
	}
}
