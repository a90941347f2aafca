package engine

// Arena holds live entities in a dense slice compacted in place
// Order is not preserved across Retain; capacity is reused between ticks and sessions
type Arena struct {
	slots []Entity
}

// NewArena creates an arena with the given initial capacity
func NewArena(capacity int) *Arena {
	return &Arena{slots: make([]Entity, 0, capacity)}
}

// Add appends an entity
func (a *Arena) Add(e Entity) {
	a.slots = append(a.slots, e)
}

// Len returns the number of live entities
func (a *Arena) Len() int {
	return len(a.slots)
}

// Clear drops all entities, keeping capacity
func (a *Arena) Clear() {
	a.slots = a.slots[:0]
}

// Retain visits every entity exactly once and keeps those for which keep returns true
// keep may mutate the entity through the pointer; mutations are kept for retained entities
func (a *Arena) Retain(keep func(e *Entity) bool) {
	n := 0
	for i := range a.slots {
		if keep(&a.slots[i]) {
			if n != i {
				a.slots[n] = a.slots[i]
			}
			n++
		}
	}
	// Zero the tail for reuse
	clear(a.slots[n:])
	a.slots = a.slots[:n]
}

// Each visits every live entity read-only
func (a *Arena) Each(fn func(e *Entity)) {
	for i := range a.slots {
		fn(&a.slots[i])
	}
}
