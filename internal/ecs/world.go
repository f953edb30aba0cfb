// Package ecs is a small entity arena with typed component tables.
//
// Entities are opaque integers. Each component type lives in its own Table,
// a sparse set whose dense arrays are index-aligned (entity i and its value
// share a slot) and kept in insertion order so iteration is deterministic.
// Structural changes made while systems run are deferred: Despawn marks an
// entity and Queue records a mutation, and both are applied by Flush at the
// boundary between simulation steps.
package ecs

import (
	"errors"
	"slices"
)

// Entity identifies an object in a World. The zero value is never issued.
type Entity uint64

// Errors returned by Single.
var (
	ErrNoEntity     = errors.New("ecs: no matching entity")
	ErrManyEntities = errors.New("ecs: more than one matching entity")
)

// remover is implemented by every table registered with a World.
type remover interface {
	removeSet(set map[Entity]struct{}) int
	clear()
}

// World owns the entity arena, its component tables, the parent/child
// hierarchy, and the deferred command queue.
type World struct {
	next     Entity
	alive    map[Entity]struct{}
	tables   []remover
	parent   map[Entity]Entity
	children map[Entity][]Entity

	pending      map[Entity]struct{}
	pendingOrder []Entity
	commands     []func(*World)
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		alive:    make(map[Entity]struct{}),
		parent:   make(map[Entity]Entity),
		children: make(map[Entity][]Entity),
		pending:  make(map[Entity]struct{}),
	}
}

// Spawn allocates a new entity. Entity ids are never reused within a World.
func (w *World) Spawn() Entity {
	w.next++
	e := w.next
	w.alive[e] = struct{}{}
	return e
}

// Alive reports whether e has been spawned and not yet removed by Flush.
func (w *World) Alive(e Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// Count returns the number of live entities.
func (w *World) Count() int {
	return len(w.alive)
}

// Despawn marks e (and, at flush time, all of its descendants) for removal.
// The entity stays readable until the next Flush. Marking twice is a no-op.
func (w *World) Despawn(e Entity) {
	if !w.Alive(e) {
		return
	}
	if _, ok := w.pending[e]; ok {
		return
	}
	w.pending[e] = struct{}{}
	w.pendingOrder = append(w.pendingOrder, e)
}

// Pending reports whether e is marked for removal at the next Flush.
func (w *World) Pending(e Entity) bool {
	_, ok := w.pending[e]
	return ok
}

// Queue records a mutation to run at the next Flush.
func (w *World) Queue(fn func(*World)) {
	w.commands = append(w.commands, fn)
}

// Flush runs queued commands in order, then removes every entity marked
// by Despawn together with its descendants. Commands queued by commands
// run in the same Flush. It returns the number of entities removed.
func (w *World) Flush() int {
	for len(w.commands) > 0 {
		cmds := w.commands
		w.commands = nil
		for _, fn := range cmds {
			fn(w)
		}
	}

	if len(w.pendingOrder) == 0 {
		return 0
	}

	doomed := make(map[Entity]struct{}, len(w.pendingOrder))
	var collect func(Entity)
	collect = func(e Entity) {
		if _, seen := doomed[e]; seen {
			return
		}
		doomed[e] = struct{}{}
		for _, c := range w.children[e] {
			collect(c)
		}
	}
	for _, e := range w.pendingOrder {
		collect(e)
	}

	for _, t := range w.tables {
		t.removeSet(doomed)
	}
	for e := range doomed {
		if p, ok := w.parent[e]; ok {
			if _, parentDoomed := doomed[p]; !parentDoomed {
				w.children[p] = slices.DeleteFunc(w.children[p], func(c Entity) bool { return c == e })
			}
		}
		delete(w.parent, e)
		delete(w.children, e)
		delete(w.alive, e)
	}

	w.pending = make(map[Entity]struct{})
	w.pendingOrder = w.pendingOrder[:0]
	return len(doomed)
}

// Clear removes every entity and drops pending commands. Tables stay registered.
func (w *World) Clear() {
	for _, t := range w.tables {
		t.clear()
	}
	w.alive = make(map[Entity]struct{})
	w.parent = make(map[Entity]Entity)
	w.children = make(map[Entity][]Entity)
	w.pending = make(map[Entity]struct{})
	w.pendingOrder = nil
	w.commands = nil
}

// AddChild attaches child to parent. A child has at most one parent;
// attaching it again moves it.
func (w *World) AddChild(parent, child Entity) {
	if old, ok := w.parent[child]; ok {
		w.children[old] = slices.DeleteFunc(w.children[old], func(c Entity) bool { return c == child })
	}
	w.parent[child] = parent
	w.children[parent] = append(w.children[parent], child)
}

// Children returns the direct children of e in attachment order.
// The returned slice must not be modified.
func (w *World) Children(e Entity) []Entity {
	return w.children[e]
}

// Parent returns the parent of e, if any.
func (w *World) Parent(e Entity) (Entity, bool) {
	p, ok := w.parent[e]
	return p, ok
}

func (w *World) register(t remover) {
	w.tables = append(w.tables, t)
}
