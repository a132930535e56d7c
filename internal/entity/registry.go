package entity

import "github.com/vovakirdan/tui-arena/internal/core"

// Registry owns every live entity. Iteration order is spawn order, which
// keeps simulations with the same seed reproducible.
type Registry struct {
	nextID   ID
	entities []*Entity
	index    map[ID]int
	counts   [4]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		nextID: 1,
		index:  make(map[ID]int),
	}
}

// Spawn creates an entity of the given kind at pos and returns its ID.
func (r *Registry) Spawn(kind Kind, pos core.Vec2) ID {
	id := r.nextID
	r.nextID++

	r.index[id] = len(r.entities)
	r.entities = append(r.entities, &Entity{ID: id, Kind: kind, Pos: pos})
	r.counts[kind]++
	return id
}

// Despawn removes the entity. It returns false if the entity was already
// gone, so repeated despawns of the same ID are harmless.
func (r *Registry) Despawn(id ID) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}

	r.counts[r.entities[i].Kind]--
	delete(r.index, id)

	// Shift to preserve spawn order.
	copy(r.entities[i:], r.entities[i+1:])
	r.entities[len(r.entities)-1] = nil
	r.entities = r.entities[:len(r.entities)-1]
	for j := i; j < len(r.entities); j++ {
		r.index[r.entities[j].ID] = j
	}
	return true
}

// DespawnTransient removes every non-player entity and returns how many
// were removed.
func (r *Registry) DespawnTransient() int {
	kept := r.entities[:0]
	removed := 0
	for _, e := range r.entities {
		if e.Kind.Transient() {
			delete(r.index, e.ID)
			r.counts[e.Kind]--
			removed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(r.entities); i++ {
		r.entities[i] = nil
	}
	r.entities = kept
	for i, e := range r.entities {
		r.index[e.ID] = i
	}
	return removed
}

// Get returns the live entity with the given ID.
func (r *Registry) Get(id ID) (*Entity, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return r.entities[i], true
}

// Alive reports whether the entity still exists.
func (r *Registry) Alive(id ID) bool {
	_, ok := r.index[id]
	return ok
}

// All returns every live entity in spawn order. The slice is owned by the
// registry and is only valid until the next mutation.
func (r *Registry) All() []*Entity {
	return r.entities
}

// OfKind returns a snapshot slice of the live entities of one kind. It is
// safe to despawn while ranging over the result.
func (r *Registry) OfKind(kind Kind) []*Entity {
	out := make([]*Entity, 0, r.counts[kind])
	for _, e := range r.entities {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many live entities of the kind exist.
func (r *Registry) Count(kind Kind) int {
	return r.counts[kind]
}

// Len returns the total number of live entities.
func (r *Registry) Len() int {
	return len(r.entities)
}
