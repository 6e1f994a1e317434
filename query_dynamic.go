package reks

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"
)

// Access is one entry of a dynamic query: a component type and a mode.
type Access struct {
	req requirement
}

// Read requests shared access to T in ExecuteDynamic.
func Read[T any]() Access {
	return Access{req: requirement{typ: reflect.TypeFor[T](), mode: accessRead}}
}

// Write requests exclusive access to T in ExecuteDynamic.
func Write[T any]() Access {
	return Access{req: requirement{typ: reflect.TypeFor[T](), mode: accessWrite}}
}

// String implements fmt.Stringer.
func (a Access) String() string {
	return a.req.String()
}

// Row is the view of one matched entity in ExecuteDynamic. It is valid only
// during the callback it was passed to.
type Row struct {
	q     *query
	slots []int
}

// Len returns the number of requirements of the query.
func (r Row) Len() int {
	return len(r.slots)
}

// At returns a pointer to the component at requirement position i. It panics
// if position i was not requested as T. Writing through the pointer is only
// allowed when position i was requested with Write.
func At[T any](r Row, i int) *T {
	c := r.q.columns[i]
	c.mustBe(reflect.TypeFor[T]())
	return (*T)(r.pointer(i))
}

func (r Row) pointer(i int) unsafe.Pointer {
	return r.q.columns[i].at(r.slots[i])
}

// ExecuteDynamic runs a query with any number of requirements, for arities the
// fixed Execute functions do not cover. Component access goes through At.
//
//	err := reks.ExecuteDynamic(world, []reks.Access{reks.Write[Pos](), reks.Read[Vel]()},
//	    func(row reks.Row) {
//	        reks.At[Pos](row, 0).X += reks.At[Vel](row, 1).X
//	    })
func ExecuteDynamic(w *World, accesses []Access, fn func(Row)) error {
	if len(accesses) == 0 {
		return errors.New("ecs: dynamic query without requirements")
	}
	reqs := make([]requirement, len(accesses))
	for i, a := range accesses {
		if a.req.typ == nil {
			return fmt.Errorf("ecs: dynamic query requirement %d is empty", i)
		}
		reqs[i] = a.req
	}
	q, err := w.begin(reqs...)
	if err != nil {
		return err
	}
	defer q.end()
	q.each(func(slots []int) {
		fn(Row{q: q, slots: slots})
	})
	return nil
}
