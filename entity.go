package reks

// Entity identifies an entity by its position in the World's registry.
// Entities are never removed, so an Entity stays valid for the World's
// lifetime.
type Entity uint32

// componentSlot records where one component of an entity lives.
type componentSlot struct {
	id   ComponentID // column of the component
	slot int         // index inside the column
}

// entityRecord is the ordered list of components an entity owns, plus a mask
// of their IDs for fast superset tests. It holds at most one slot per
// component type.
type entityRecord struct {
	slots []componentSlot
	mask  bitmask256
}

// slotOf returns the slot of component id, or -1 if the entity lacks it.
func (r *entityRecord) slotOf(id ComponentID) int {
	if !r.mask.containsBit(id) {
		return -1
	}
	for _, s := range r.slots {
		if s.id == id {
			return s.slot
		}
	}
	return -1
}

// put records component id at slot. A second component of the same type
// replaces the recorded slot; the older value stays orphaned in its column.
// It reports whether an earlier slot was replaced.
func (r *entityRecord) put(id ComponentID, slot int) bool {
	if r.mask.containsBit(id) {
		for i := range r.slots {
			if r.slots[i].id == id {
				r.slots[i].slot = slot
				return true
			}
		}
	}
	r.mask.set(id)
	r.slots = append(r.slots, componentSlot{id: id, slot: slot})
	return false
}

// entityRegistry is the append-only list of entity records, in creation order.
type entityRegistry struct {
	records []entityRecord
}

func (r *entityRegistry) push(rec entityRecord) Entity {
	r.records = append(r.records, rec)
	return Entity(len(r.records) - 1)
}
