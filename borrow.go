package reks

import (
	"fmt"
	"math"
	"reflect"
)

// access is the mode a query requests for a component type.
type access uint8

const (
	accessRead access = iota + 1
	accessWrite
)

func (a access) String() string {
	switch a {
	case accessRead:
		return "read"
	case accessWrite:
		return "write"
	default:
		return "none"
	}
}

const borrowWrite int32 = -1

// borrowTracker records, per component type, whether the type is free (0),
// shared by n readers (n > 0) or exclusively written (-1). Queries acquire
// every requested mode once before visiting any entity, so the same grant
// covers all references handed out during the query.
type borrowTracker struct {
	states []int32 // indexed by ComponentID
}

// register adds a free entry for a newly created column.
func (t *borrowTracker) register(id ComponentID) {
	for int(id) >= len(t.states) {
		t.states = append(t.states, 0)
	}
	t.states[id] = 0
}

// reset returns every component type to free.
func (t *borrowTracker) reset() {
	clear(t.states)
}

// acquire grants mode on id or explains why it cannot. Saturating the shared
// counter is a programming error and panics.
func (t *borrowTracker) acquire(id ComponentID, typ reflect.Type, mode access) error {
	if int(id) >= len(t.states) {
		return fmt.Errorf("component %s: %w", typ, ErrUnknownComponent)
	}
	state := t.states[id]
	switch mode {
	case accessRead:
		if state == borrowWrite {
			return fmt.Errorf("read %s while it is mutably borrowed: %w", typ, ErrBorrowConflict)
		}
		if state == math.MaxInt32 {
			panic(fmt.Errorf("ecs: component %s: %w", typ, ErrCounterOverflow))
		}
		t.states[id] = state + 1
	case accessWrite:
		if state != 0 {
			return fmt.Errorf("write %s while it is already borrowed: %w", typ, ErrBorrowConflict)
		}
		t.states[id] = borrowWrite
	default:
		panic(fmt.Sprintf("ecs: invalid access mode %d", uint8(mode)))
	}
	return nil
}

// release gives back a grant obtained from acquire.
func (t *borrowTracker) release(id ComponentID, mode access) {
	switch mode {
	case accessRead:
		if t.states[id] > 0 {
			t.states[id]--
		}
	case accessWrite:
		if t.states[id] == borrowWrite {
			t.states[id] = 0
		}
	}
}

// state returns the raw entry of id, for diagnostics.
func (t *borrowTracker) state(id ComponentID) int32 {
	if int(id) >= len(t.states) {
		return 0
	}
	return t.states[id]
}
