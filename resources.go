package reks

import (
	"fmt"
	"reflect"
)

// Resources holds World-wide singletons, at most one per type, such as the
// delta time of the current step. Resources are stored by pointer and keyed
// by the pointed-to type. Freed IDs are reused.
type Resources struct {
	items   []any
	types   map[reflect.Type]int
	freeIDs []int
}

// Add stores res, which must be a non-nil pointer, and returns its ID. It
// panics if a resource of the same type is already present.
func (r *Resources) Add(res any) int {
	if res == nil {
		panic("ecs: cannot add nil resource")
	}
	t := reflect.TypeOf(res)
	if t.Kind() != reflect.Pointer || reflect.ValueOf(res).IsNil() {
		panic(fmt.Sprintf("ecs: resource must be a non-nil pointer, got %s", t))
	}
	return r.add(t.Elem(), res)
}

func (r *Resources) add(t reflect.Type, res any) int {
	if r.types == nil {
		r.types = make(map[reflect.Type]int)
	}
	if _, ok := r.types[t]; ok {
		panic(fmt.Sprintf("ecs: resource %s already exists", t))
	}
	var id int
	if n := len(r.freeIDs); n > 0 {
		id = r.freeIDs[n-1]
		r.freeIDs = r.freeIDs[:n-1]
		r.items[id] = res
	} else {
		r.items = append(r.items, res)
		id = len(r.items) - 1
	}
	r.types[t] = id
	return id
}

// Has reports whether id names a stored resource.
func (r *Resources) Has(id int) bool {
	return id >= 0 && id < len(r.items) && r.items[id] != nil
}

// Get returns the resource with the given ID, or nil.
func (r *Resources) Get(id int) any {
	if !r.Has(id) {
		return nil
	}
	return r.items[id]
}

// Remove drops the resource with the given ID, if any.
func (r *Resources) Remove(id int) {
	if !r.Has(id) {
		return
	}
	delete(r.types, reflect.TypeOf(r.items[id]).Elem())
	r.items[id] = nil
	r.freeIDs = append(r.freeIDs, id)
}

// Clear removes every resource.
func (r *Resources) Clear() {
	clear(r.items)
	r.items = r.items[:0]
	clear(r.types)
	r.freeIDs = r.freeIDs[:0]
}

// AddResource stores res under type T and returns its ID.
func AddResource[T any](r *Resources, res *T) int {
	if res == nil {
		panic("ecs: cannot add nil resource")
	}
	return r.add(reflect.TypeFor[T](), res)
}

// GetResource returns the resource of type T and its ID, or nil and -1.
func GetResource[T any](r *Resources) (*T, int) {
	if id, ok := r.types[reflect.TypeFor[T]()]; ok {
		return r.items[id].(*T), id
	}
	return nil, -1
}

// RemoveResource drops the resource of type T, if any.
func RemoveResource[T any](r *Resources) {
	if id, ok := r.types[reflect.TypeFor[T]()]; ok {
		r.Remove(id)
	}
}
