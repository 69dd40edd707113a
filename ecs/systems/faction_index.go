package systems

import (
	"github.com/bowker/gravitywar/ecs"
	"github.com/bowker/gravitywar/ecs/components"
)

// FactionIndex maintains a persistent mapping from faction id to the
// set of member entity ids.
type FactionIndex struct {
	buckets map[uint32]map[int]struct{}
}

// NewFactionIndex creates an empty index.
func NewFactionIndex() *FactionIndex {
	return &FactionIndex{buckets: make(map[uint32]map[int]struct{})}
}

// Insert adds an entity id to a faction bucket. Inserting an id that
// is already present is a no-op.
func (ix *FactionIndex) Insert(faction uint32, id int) {
	if ix == nil || id <= 0 {
		return
	}
	b := ix.buckets[faction]
	if b == nil {
		b = make(map[int]struct{})
		ix.buckets[faction] = b
	}
	b[id] = struct{}{}
}

// Remove deletes an entity id from every bucket. The faction the id
// belonged to is not assumed known at removal time, so all buckets are
// scanned. Removing an absent id is a no-op.
func (ix *FactionIndex) Remove(id int) {
	if ix == nil {
		return
	}
	for faction, b := range ix.buckets {
		delete(b, id)
		if len(b) == 0 {
			delete(ix.buckets, faction)
		}
	}
}

// Contains reports whether an id is in the given faction bucket.
func (ix *FactionIndex) Contains(faction uint32, id int) bool {
	if ix == nil {
		return false
	}
	_, ok := ix.buckets[faction][id]
	return ok
}

// Members returns the entity ids in a faction bucket.
func (ix *FactionIndex) Members(faction uint32) []int {
	if ix == nil {
		return nil
	}
	b := ix.buckets[faction]
	out := make([]int, 0, len(b))
	for id := range b {
		out = append(out, id)
	}
	return out
}

// Factions returns the faction ids with non-empty buckets.
func (ix *FactionIndex) Factions() []uint32 {
	if ix == nil {
		return nil
	}
	out := make([]uint32, 0, len(ix.buckets))
	for f := range ix.buckets {
		out = append(out, f)
	}
	return out
}

// Len returns the total number of indexed entities.
func (ix *FactionIndex) Len() int {
	if ix == nil {
		return 0
	}
	n := 0
	for _, b := range ix.buckets {
		n += len(b)
	}
	return n
}

// FactionIndexSystem reconciles the index with the world each tick:
// entities newly bearing a faction are inserted, entities that dropped
// theirs are removed from every bucket.
type FactionIndexSystem struct {
	Index *FactionIndex
}

// NewFactionIndexSystem creates a FactionIndexSystem.
func NewFactionIndexSystem(index *FactionIndex) *FactionIndexSystem {
	return &FactionIndexSystem{Index: index}
}

// Update brings the index in sync with the world's faction components.
func (s *FactionIndexSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Index == nil {
		return
	}
	factions := w.Factions()

	for _, id := range factions.Entities() {
		f, ok := factions.Get(id).(*components.Faction)
		if !ok || f == nil {
			continue
		}
		if !s.Index.Contains(f.ID, id) {
			// A faction changed in place leaves a membership in the
			// old bucket; purge before reinserting.
			s.Index.Remove(id)
			s.Index.Insert(f.ID, id)
		}
	}

	var dropped []int
	for _, faction := range s.Index.Factions() {
		for _, id := range s.Index.Members(faction) {
			if !factions.Has(id) {
				dropped = append(dropped, id)
			}
		}
	}
	for _, id := range dropped {
		s.Index.Remove(id)
	}
}

// GroupByFaction partitions all faction-bearing entities by faction in
// one pass, without persistent state. The stateless counterpart to
// FactionIndex.
func GroupByFaction(w *ecs.World) map[uint32][]int {
	if w == nil {
		return nil
	}
	factions := w.Factions()
	groups := make(map[uint32][]int)
	for _, id := range factions.Entities() {
		f, ok := factions.Get(id).(*components.Faction)
		if !ok || f == nil {
			continue
		}
		groups[f.ID] = append(groups[f.ID], id)
	}
	return groups
}
