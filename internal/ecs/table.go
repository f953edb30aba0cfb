package ecs

// Table stores one component type for a set of entities.
// Entities and values live in index-aligned dense slices kept in insertion
// order; a map gives O(1) lookup from entity to slot.
//
// Pointers returned by Get and passed to Each stay valid until the next
// structural change of this table (Set of a new entity, Remove, Flush).
type Table[T any] struct {
	index    map[Entity]int
	entities []Entity
	data     []T
}

// NewTable creates a table and registers it with w so that Flush and
// Clear remove despawned entities from it.
func NewTable[T any](w *World) *Table[T] {
	t := &Table[T]{
		index:    make(map[Entity]int),
		entities: make([]Entity, 0, 64),
		data:     make([]T, 0, 64),
	}
	w.register(t)
	return t
}

// Set inserts or updates the component for e.
func (t *Table[T]) Set(e Entity, v T) {
	if i, ok := t.index[e]; ok {
		t.data[i] = v
		return
	}
	t.index[e] = len(t.entities)
	t.entities = append(t.entities, e)
	t.data = append(t.data, v)
}

// Get returns a pointer to the component of e.
func (t *Table[T]) Get(e Entity) (*T, bool) {
	i, ok := t.index[e]
	if !ok {
		return nil, false
	}
	return &t.data[i], true
}

// Has reports whether e has this component.
func (t *Table[T]) Has(e Entity) bool {
	_, ok := t.index[e]
	return ok
}

// Remove deletes the component of e immediately, preserving the order of
// the remaining entries. Systems should prefer World.Despawn.
func (t *Table[T]) Remove(e Entity) {
	if _, ok := t.index[e]; !ok {
		return
	}
	t.removeSet(map[Entity]struct{}{e: {}})
}

// Len returns the number of entities with this component.
func (t *Table[T]) Len() int {
	return len(t.entities)
}

// Entities returns a copy of the entity list in iteration order.
func (t *Table[T]) Entities() []Entity {
	out := make([]Entity, len(t.entities))
	copy(out, t.entities)
	return out
}

// Each calls fn for every entry in insertion order. fn may mutate the value
// and other tables, but must not add or remove entries of this table.
func (t *Table[T]) Each(fn func(Entity, *T)) {
	for i := range t.entities {
		fn(t.entities[i], &t.data[i])
	}
}

// removeSet compacts the dense slices in a single pass.
func (t *Table[T]) removeSet(set map[Entity]struct{}) int {
	if len(t.entities) == 0 || len(set) == 0 {
		return 0
	}

	var zero T
	w := 0
	for r, e := range t.entities {
		if _, drop := set[e]; drop {
			delete(t.index, e)
			continue
		}
		if w != r {
			t.entities[w] = e
			t.data[w] = t.data[r]
			t.index[e] = w
		}
		w++
	}
	removed := len(t.entities) - w
	for i := w; i < len(t.data); i++ {
		t.data[i] = zero
	}
	t.entities = t.entities[:w]
	t.data = t.data[:w]
	return removed
}

func (t *Table[T]) clear() {
	clear(t.index)
	t.entities = t.entities[:0]
	t.data = t.data[:0]
}

// Single returns the only entity in t. It fails with ErrNoEntity or
// ErrManyEntities when the table does not hold exactly one entry.
func Single[T any](t *Table[T]) (Entity, *T, error) {
	switch len(t.entities) {
	case 0:
		return 0, nil, ErrNoEntity
	case 1:
		return t.entities[0], &t.data[0], nil
	default:
		return 0, nil, ErrManyEntities
	}
}
