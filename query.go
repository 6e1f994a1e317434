package reks

import (
	"reflect"

	"go.uber.org/zap"
)

// requirement is one position of a query: a component type and the access
// mode requested for it.
type requirement struct {
	typ  reflect.Type
	mode access
}

func (r requirement) String() string {
	return r.mode.String() + " " + r.typ.String()
}

// Requirement is implemented by the markers Ref and Mut. R is the marker type
// itself; its zero value describes the requirement and fetch binds it to a
// slot of the column chosen for the query.
type Requirement[R any] interface {
	requirement() requirement
	fetch(c *column, slot int) R
}

// Ref requests shared access to a component of type T. The pointer returned
// by Get must not be written through; the borrow tracker lets other Refs of
// T coexist with it but no Mut.
type Ref[T any] struct {
	ptr *T
}

func (Ref[T]) requirement() requirement {
	return requirement{typ: reflect.TypeFor[T](), mode: accessRead}
}

func (Ref[T]) fetch(c *column, slot int) Ref[T] {
	return Ref[T]{ptr: (*T)(c.at(slot))}
}

// Get returns a pointer to the component. It is valid only during the
// callback it was passed to.
func (r Ref[T]) Get() *T {
	return r.ptr
}

// Value returns a copy of the component.
func (r Ref[T]) Value() T {
	return *r.ptr
}

// Mut requests exclusive access to a component of type T. No other Ref or
// Mut of T may be part of the same query.
type Mut[T any] struct {
	ptr *T
}

func (Mut[T]) requirement() requirement {
	return requirement{typ: reflect.TypeFor[T](), mode: accessWrite}
}

func (Mut[T]) fetch(c *column, slot int) Mut[T] {
	return Mut[T]{ptr: (*T)(c.at(slot))}
}

// Get returns a pointer to the component, writes go straight to storage.
// It is valid only during the callback it was passed to.
func (m Mut[T]) Get() *T {
	return m.ptr
}

// Set overwrites the component.
func (m Mut[T]) Set(v T) {
	*m.ptr = v
}

// query is the state of one running Execute call.
type query struct {
	world   *World
	reqs    []requirement
	ids     []ComponentID
	columns []*column
	slots   []int // per-entity scratch, one per requirement
	mask    bitmask256
	matched int
}

// begin resolves the requirements and acquires every borrow before any
// entity is visited. A failure rejects the whole query.
func (w *World) begin(reqs ...requirement) (*query, error) {
	if w.queryDepth == 0 {
		w.borrows.reset()
	}
	q := &query{
		world:   w,
		reqs:    reqs,
		ids:     make([]ComponentID, len(reqs)),
		columns: make([]*column, len(reqs)),
		slots:   make([]int, len(reqs)),
	}
	for i, r := range reqs {
		c, err := w.components.array(r.typ)
		if err != nil {
			q.rollback(i)
			return nil, w.rejected(reqs, err)
		}
		if err := w.borrows.acquire(c.id, r.typ, r.mode); err != nil {
			q.rollback(i)
			return nil, w.rejected(reqs, err)
		}
		q.ids[i] = c.id
		q.columns[i] = c
		q.mask.set(c.id)
	}
	w.queryDepth++
	return q, nil
}

// rollback releases the first n grants of a query that failed to start.
func (q *query) rollback(n int) {
	for i := 0; i < n; i++ {
		q.world.borrows.release(q.ids[i], q.reqs[i].mode)
	}
}

func (w *World) rejected(reqs []requirement, err error) error {
	w.logger.Warn("query rejected",
		zap.Stringers("requirements", reqs),
		zap.Error(err))
	return err
}

// each calls visit once per entity owning every required type, in registry
// order, with the entity's slot for each requirement. Slots come from the
// column's own reserve, so they are always in range.
func (q *query) each(visit func(slots []int)) {
	for i := range q.world.entities.records {
		rec := &q.world.entities.records[i]
		if !rec.mask.contains(q.mask) {
			continue
		}
		for j, id := range q.ids {
			q.slots[j] = rec.slotOf(id)
		}
		q.matched++
		visit(q.slots)
	}
}

// end releases the query's borrows and reports it.
func (q *query) end() {
	w := q.world
	q.rollback(len(q.reqs))
	w.queryDepth--
	w.logger.Debug("query executed",
		zap.Stringers("requirements", q.reqs),
		zap.Int("matched", q.matched))
	Publish(w.events, QueryExecuted{Requirements: len(q.reqs), Matched: q.matched})
}

// Execute calls fn once for every entity that owns the component requested by
// A, in creation order. A is Ref[T] or Mut[T]; its type is inferred from fn:
//
//	err := reks.Execute(world, func(p reks.Mut[Pos]) {
//	    p.Get().X++
//	})
//
// It returns an error wrapping ErrUnknownComponent if the type was never
// stored, before fn is ever called.
func Execute[A Requirement[A]](w *World, fn func(A)) error {
	var a A
	q, err := w.begin(a.requirement())
	if err != nil {
		return err
	}
	defer q.end()
	c0 := q.columns[0]
	q.each(func(slots []int) {
		fn(a.fetch(c0, slots[0]))
	})
	return nil
}
