package reks

import (
	"fmt"
	"io"
	"reflect"
)

// Component returns a copy of the component of type T owned by e. It fails
// while a running query holds T mutably.
func Component[T any](w *World, e Entity) (T, error) {
	var zero T
	typ := reflect.TypeFor[T]()
	if int(e) >= len(w.entities.records) {
		return zero, fmt.Errorf("entity %d: %w", e, ErrUnknownEntity)
	}
	c, err := w.components.array(typ)
	if err != nil {
		return zero, err
	}
	slot := w.entities.records[e].slotOf(c.id)
	if slot < 0 {
		return zero, fmt.Errorf("entity %d has no %s: %w", e, typ, ErrUnknownComponent)
	}
	if w.borrows.state(c.id) == borrowWrite {
		return zero, fmt.Errorf("read %s while it is mutably borrowed: %w", typ, ErrBorrowConflict)
	}
	return *(*T)(c.at(slot)), nil
}

// Components returns a copy of every stored value of type T in slot order,
// including values of unbuilt entities and replaced duplicates. It returns
// nil if T was never stored.
func Components[T any](w *World) []T {
	c, ok := w.components.lookup(reflect.TypeFor[T]())
	if !ok {
		return nil
	}
	out := make([]T, c.len)
	for i := range out {
		out[i] = *(*T)(c.at(i))
	}
	return out
}

// ComponentCount returns the number of stored values of type T.
func ComponentCount[T any](w *World) int {
	c, ok := w.components.lookup(reflect.TypeFor[T]())
	if !ok {
		return 0
	}
	return c.len
}

// PrintComponents writes every stored value of type T to out on one line,
// formatted with %+v. It is a debugging aid and not part of any query.
func PrintComponents[T any](w *World, out io.Writer) error {
	c, err := w.components.array(reflect.TypeFor[T]())
	if err != nil {
		return err
	}
	for i := 0; i < c.len; i++ {
		if _, err := fmt.Fprintf(out, "%+v ", c.value(i).Interface()); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(out)
	return err
}
