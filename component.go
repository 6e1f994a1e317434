package reks

import (
	"fmt"
	"reflect"
	"unsafe"

	"go.uber.org/zap"
)

// ComponentID is the World-local identity of a component type. IDs are dense
// and assigned in order of the first insertion of each type.
type ComponentID uint8

// MaxComponentTypes defines the maximum number of unique component types that
// can live in one World.
const MaxComponentTypes = 256

const defaultColumnCapacity = 8

// column is the append-only storage array of one component type. The element
// type is erased at the table level and recovered by the typed accessors.
// Slots handed out by reserve stay valid for the lifetime of the column.
type column struct {
	typ     reflect.Type
	backing reflect.Value // []typ, len == cap
	data    unsafe.Pointer
	size    uintptr
	len     int
	id      ComponentID
}

func newColumn(id ComponentID, typ reflect.Type, capacity int) *column {
	if capacity <= 0 {
		capacity = defaultColumnCapacity
	}
	backing := reflect.MakeSlice(reflect.SliceOf(typ), capacity, capacity)
	return &column{
		typ:     typ,
		backing: backing,
		data:    backing.UnsafePointer(),
		size:    typ.Size(),
		id:      id,
	}
}

// reserve appends a zero element and returns its slot.
func (c *column) reserve() int {
	if c.len == c.backing.Len() {
		c.grow(c.len + 1)
	}
	slot := c.len
	c.len++
	return slot
}

// grow reallocates the backing array, at least doubling it.
func (c *column) grow(minCap int) {
	newCap := max(2*c.backing.Len(), minCap)
	backing := reflect.MakeSlice(reflect.SliceOf(c.typ), newCap, newCap)
	reflect.Copy(backing, c.backing.Slice(0, c.len))
	c.backing = backing
	c.data = backing.UnsafePointer()
}

// at returns a pointer to the element in slot. The caller guarantees
// slot < c.len; no bounds check is done here.
func (c *column) at(slot int) unsafe.Pointer {
	return unsafe.Add(c.data, uintptr(slot)*c.size)
}

// value returns the element in slot as a reflect.Value.
func (c *column) value(slot int) reflect.Value {
	return c.backing.Index(slot)
}

// mustBe panics if the column does not hold elements of type t.
func (c *column) mustBe(t reflect.Type) {
	if c.typ != t {
		panic(fmt.Errorf("ecs: column %s accessed as %s: %w", c.typ, t, ErrTypeMismatch))
	}
}

// componentTable maps component types to their storage columns.
type componentTable struct {
	typeToID map[reflect.Type]ComponentID
	columns  []*column // indexed by ComponentID
}

func newComponentTable() componentTable {
	return componentTable{
		typeToID: make(map[reflect.Type]ComponentID, 16),
		columns:  make([]*column, 0, 16),
	}
}

// lookup returns the column for t, if any value of t was ever inserted.
func (t *componentTable) lookup(typ reflect.Type) (*column, bool) {
	id, ok := t.typeToID[typ]
	if !ok {
		return nil, false
	}
	return t.columns[id], true
}

// array is the checked form of lookup.
func (t *componentTable) array(typ reflect.Type) (*column, error) {
	c, ok := t.lookup(typ)
	if !ok {
		return nil, fmt.Errorf("component %s: %w", typ, ErrUnknownComponent)
	}
	return c, nil
}

// add creates the column for typ. It panics if the table is full.
func (t *componentTable) add(typ reflect.Type, capacity int) *column {
	if len(t.columns) >= MaxComponentTypes {
		panic(fmt.Sprintf("ecs: cannot register component %s: maximum number of component types (%d) reached", typ, MaxComponentTypes))
	}
	id := ComponentID(len(t.columns))
	c := newColumn(id, typ, capacity)
	t.typeToID[typ] = id
	t.columns = append(t.columns, c)
	return c
}

// columnFor returns the column for typ, creating it and registering the type
// with the borrow tracker on first use.
func (w *World) columnFor(typ reflect.Type) *column {
	if c, ok := w.components.lookup(typ); ok {
		return c
	}
	c := w.components.add(typ, w.initialCapacity)
	w.borrows.register(c.id)
	w.logger.Debug("component registered",
		zap.Stringer("component", typ),
		zap.Uint8("id", uint8(c.id)))
	return c
}

// insertValue appends v to the column of its dynamic type and returns the
// column ID and the slot of the new element.
func (w *World) insertValue(v reflect.Value) (ComponentID, int) {
	c := w.columnFor(v.Type())
	slot := c.reserve()
	c.value(slot).Set(v)
	return c.id, slot
}

// insertComponent is the typed form of insertValue.
func insertComponent[T any](w *World, v T) (ComponentID, int) {
	c := w.columnFor(reflect.TypeFor[T]())
	slot := c.reserve()
	*(*T)(c.at(slot)) = v
	return c.id, slot
}
