package ecs

import (
	"errors"
	"slices"
	"testing"
)

type pos struct{ X, Y float64 }

type tag struct{}

func TestSpawnIssuesDistinctIDs(t *testing.T) {
	w := NewWorld()
	a := w.Spawn()
	b := w.Spawn()

	if a == 0 || b == 0 {
		t.Fatal("Spawn() must never issue the zero entity")
	}
	if a == b {
		t.Errorf("Spawn() returned %d twice", a)
	}
	if w.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", w.Count())
	}
}

func TestTableSetGet(t *testing.T) {
	w := NewWorld()
	positions := NewTable[pos](w)
	e := w.Spawn()

	positions.Set(e, pos{1, 2})
	p, ok := positions.Get(e)
	if !ok || *p != (pos{1, 2}) {
		t.Fatalf("Get() = %v, %v, expected {1 2}, true", p, ok)
	}

	p.X = 10
	if p2, _ := positions.Get(e); p2.X != 10 {
		t.Errorf("Get() pointer should alias storage, X = %v", p2.X)
	}

	positions.Set(e, pos{3, 4})
	if positions.Len() != 1 {
		t.Errorf("Set() on existing entity should update, Len() = %d", positions.Len())
	}
}

func TestTableRemovePreservesOrder(t *testing.T) {
	w := NewWorld()
	positions := NewTable[pos](w)

	var es []Entity
	for i := 0; i < 5; i++ {
		e := w.Spawn()
		positions.Set(e, pos{X: float64(i)})
		es = append(es, e)
	}

	positions.Remove(es[1])
	positions.Remove(es[3])

	expected := []Entity{es[0], es[2], es[4]}
	if got := positions.Entities(); !slices.Equal(got, expected) {
		t.Errorf("Entities() = %v, expected %v", got, expected)
	}

	var xs []float64
	positions.Each(func(_ Entity, p *pos) { xs = append(xs, p.X) })
	if !slices.Equal(xs, []float64{0, 2, 4}) {
		t.Errorf("Each() values = %v, expected [0 2 4]", xs)
	}

	if p, ok := positions.Get(es[4]); !ok || p.X != 4 {
		t.Errorf("Get() after compaction = %v, %v", p, ok)
	}
}

func TestDespawnIsDeferred(t *testing.T) {
	w := NewWorld()
	positions := NewTable[pos](w)
	e := w.Spawn()
	positions.Set(e, pos{})

	w.Despawn(e)
	w.Despawn(e)

	if !w.Alive(e) || !positions.Has(e) {
		t.Fatal("Despawn() must not remove before Flush()")
	}
	if !w.Pending(e) {
		t.Error("Pending() = false after Despawn()")
	}

	if n := w.Flush(); n != 1 {
		t.Errorf("Flush() = %d, expected 1", n)
	}
	if w.Alive(e) || positions.Has(e) {
		t.Error("entity should be gone after Flush()")
	}
	if w.Pending(e) {
		t.Error("Pending() should reset after Flush()")
	}

	w.Despawn(e) // already dead
	if n := w.Flush(); n != 0 {
		t.Errorf("Flush() of a dead entity = %d, expected 0", n)
	}
}

func TestDespawnRemovesChildren(t *testing.T) {
	w := NewWorld()
	tags := NewTable[tag](w)

	parent := w.Spawn()
	body := w.Spawn()
	eye := w.Spawn()
	other := w.Spawn()
	for _, e := range []Entity{parent, body, eye, other} {
		tags.Set(e, tag{})
	}
	w.AddChild(parent, body)
	w.AddChild(parent, eye)

	if got := w.Children(parent); !slices.Equal(got, []Entity{body, eye}) {
		t.Fatalf("Children() = %v, expected [%d %d]", got, body, eye)
	}
	if p, ok := w.Parent(eye); !ok || p != parent {
		t.Errorf("Parent(eye) = %d, %v", p, ok)
	}

	w.Despawn(parent)
	if n := w.Flush(); n != 3 {
		t.Errorf("Flush() = %d, expected 3 (parent and two children)", n)
	}
	if !w.Alive(other) || tags.Len() != 1 {
		t.Errorf("unrelated entity should survive, Len() = %d", tags.Len())
	}
}

func TestDespawnChildDetachesFromParent(t *testing.T) {
	w := NewWorld()
	parent := w.Spawn()
	child := w.Spawn()
	w.AddChild(parent, child)

	w.Despawn(child)
	w.Flush()

	if len(w.Children(parent)) != 0 {
		t.Errorf("Children() = %v, expected none", w.Children(parent))
	}
	if !w.Alive(parent) {
		t.Error("parent should survive its child")
	}
}

func TestQueueRunsOnFlush(t *testing.T) {
	w := NewWorld()
	positions := NewTable[pos](w)

	w.Queue(func(w *World) {
		e := w.Spawn()
		positions.Set(e, pos{X: 1})
		w.Queue(func(w *World) {
			positions.Set(w.Spawn(), pos{X: 2})
		})
	})

	if positions.Len() != 0 {
		t.Fatal("queued command ran before Flush()")
	}
	w.Flush()
	if positions.Len() != 2 {
		t.Errorf("Len() after Flush() = %d, expected 2 (nested command included)", positions.Len())
	}
}

func TestSingle(t *testing.T) {
	w := NewWorld()
	players := NewTable[tag](w)

	if _, _, err := Single(players); !errors.Is(err, ErrNoEntity) {
		t.Errorf("Single() on empty = %v, expected ErrNoEntity", err)
	}

	e := w.Spawn()
	players.Set(e, tag{})
	got, _, err := Single(players)
	if err != nil || got != e {
		t.Errorf("Single() = %d, %v, expected %d, nil", got, err, e)
	}

	players.Set(w.Spawn(), tag{})
	if _, _, err := Single(players); !errors.Is(err, ErrManyEntities) {
		t.Errorf("Single() on two = %v, expected ErrManyEntities", err)
	}
}

func TestClear(t *testing.T) {
	w := NewWorld()
	positions := NewTable[pos](w)
	a := w.Spawn()
	positions.Set(a, pos{})
	w.Despawn(a)
	w.Queue(func(*World) { t.Error("cleared command should not run") })

	w.Clear()
	w.Flush()

	if w.Count() != 0 || positions.Len() != 0 {
		t.Errorf("Clear() left Count() = %d, Len() = %d", w.Count(), positions.Len())
	}
	if b := w.Spawn(); b == a {
		t.Error("ids must not be reused after Clear()")
	}
}
