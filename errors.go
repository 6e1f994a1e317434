package reks

import "errors"

var (
	// ErrUnknownComponent is returned when a query or lookup names a component
	// type that was never inserted into the World.
	ErrUnknownComponent = errors.New("unknown component")

	// ErrUnknownEntity is returned when an Entity does not name a built entity.
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrBorrowConflict is returned when a query asks for an access mode the
	// borrow tracker cannot grant, e.g. a Mut and a Ref on the same type.
	ErrBorrowConflict = errors.New("borrow conflict")

	// ErrCounterOverflow signals that the shared-borrow counter of a component
	// type is saturated. It is raised as a panic.
	ErrCounterOverflow = errors.New("borrow counter overflow")

	// ErrWorldLocked signals a structural mutation while a query is running.
	// It is raised as a panic.
	ErrWorldLocked = errors.New("world locked by running query")

	// ErrTypeMismatch signals that a column was accessed as the wrong element
	// type. It is raised as a panic.
	ErrTypeMismatch = errors.New("component type mismatch")
)
