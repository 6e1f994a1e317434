// Package reks is a small entity-component store. Components of any type are
// kept in one append-only column per type; entities are ordered lists of
// (component type, slot) pairs. Queries hand the caller direct pointers into
// the columns for every entity owning the requested types, with a runtime
// borrow tracker standing in for the aliasing checks the compiler cannot do
// across the type-erased storage.
package reks

import (
	"fmt"

	"go.uber.org/zap"
)

// World owns every component column, the entity registry and the borrow
// tracker. It grows monotonically: there is no entity or component removal.
// A World is not safe for concurrent use.
type World struct {
	logger          *zap.Logger
	resources       *Resources
	events          *EventBus
	components      componentTable
	entities        entityRegistry
	borrows         borrowTracker
	initialCapacity int
	queryDepth      int // number of queries currently running
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for debug traces and rejected queries.
func WithLogger(l *zap.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithInitialCapacity pre-sizes the entity registry and every new column.
func WithInitialCapacity(n int) Option {
	return func(w *World) {
		if n > 0 {
			w.initialCapacity = n
		}
	}
}

// NewWorld creates an empty World.
func NewWorld(opts ...Option) *World {
	w := &World{
		logger:     zap.NewNop(),
		resources:  &Resources{},
		events:     &EventBus{},
		components: newComponentTable(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.initialCapacity > 0 {
		w.entities.records = make([]entityRecord, 0, w.initialCapacity)
	}
	return w
}

// Len returns the number of built entities.
func (w *World) Len() int {
	return len(w.entities.records)
}

// ComponentTypes returns the number of distinct component types stored.
func (w *World) ComponentTypes() int {
	return len(w.components.columns)
}

// Resources returns the world's resource store, used for singletons such as a
// frame delta time.
func (w *World) Resources() *Resources {
	return w.resources
}

// Events returns the world's event bus. The World publishes EntityBuilt and
// QueryExecuted on it.
func (w *World) Events() *EventBus {
	return w.events
}

// Logger returns the world's logger.
func (w *World) Logger() *zap.Logger {
	return w.logger
}

// mustBeUnlocked panics if a query is running. Structural mutation would move
// column storage under the pointers the query has handed out.
func (w *World) mustBeUnlocked(op string) {
	if w.queryDepth > 0 {
		panic(fmt.Errorf("ecs: %s: %w", op, ErrWorldLocked))
	}
}
