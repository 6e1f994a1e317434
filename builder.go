package reks

import (
	"reflect"

	"go.uber.org/zap"
)

// EntityBuilder stages the components of one new entity. Each With call
// stores its value in the World immediately; Build appends the entity record.
// A builder dropped without Build leaves its values orphaned in their
// columns, which is harmless.
//
// Example:
//
//	world.CreateEntity().
//	    With(Pos{}).
//	    With(Vel{X: 1}).
//	    Build()
type EntityBuilder struct {
	world  *World
	record entityRecord
	built  bool
}

// CreateEntity starts a new entity.
func (w *World) CreateEntity() *EntityBuilder {
	w.mustBeUnlocked("create entity")
	return &EntityBuilder{world: w}
}

// With stores component under its dynamic type and records its slot. Adding
// a second component of the same type replaces the recorded slot.
func (b *EntityBuilder) With(component any) *EntityBuilder {
	if component == nil {
		panic("ecs: cannot add nil component")
	}
	b.mustBeOpen()
	b.world.mustBeUnlocked("add component")
	id, slot := b.world.insertValue(reflect.ValueOf(component))
	b.record.putLogged(b.world, id, slot)
	return b
}

// WithComponent is the typed form of With. T is the storage type, which also
// allows storing values under an interface type.
func WithComponent[T any](b *EntityBuilder, component T) *EntityBuilder {
	b.mustBeOpen()
	b.world.mustBeUnlocked("add component")
	id, slot := insertComponent(b.world, component)
	b.record.putLogged(b.world, id, slot)
	return b
}

// Build appends the staged entity to the World and returns it. The builder
// cannot be used afterwards.
func (b *EntityBuilder) Build() Entity {
	b.mustBeOpen()
	w := b.world
	w.mustBeUnlocked("build entity")
	b.built = true
	e := w.entities.push(b.record)
	Publish(w.events, EntityBuilt{Entity: e, Components: len(b.record.slots)})
	return e
}

func (b *EntityBuilder) mustBeOpen() {
	if b.built {
		panic("ecs: entity builder used after Build")
	}
}

func (r *entityRecord) putLogged(w *World, id ComponentID, slot int) {
	if r.put(id, slot) {
		w.logger.Debug("component replaced on staged entity",
			zap.Stringer("component", w.components.columns[id].typ),
			zap.Int("slot", slot))
	}
}
