package reks

// Execute2 calls fn once for every entity that owns the components requested
// by A and B, in creation order. The same component type may appear twice
// only as two Refs.
//
//	err := reks.Execute2(world, func(p reks.Mut[Pos], v reks.Ref[Vel]) {
//	    p.Get().X += v.Get().X * dt
//	})
func Execute2[A Requirement[A], B Requirement[B]](w *World, fn func(A, B)) error {
	var (
		a A
		b B
	)
	q, err := w.begin(a.requirement(), b.requirement())
	if err != nil {
		return err
	}
	defer q.end()
	c0, c1 := q.columns[0], q.columns[1]
	q.each(func(slots []int) {
		fn(a.fetch(c0, slots[0]), b.fetch(c1, slots[1]))
	})
	return nil
}

// Execute3 calls fn once for every entity that owns the components requested
// by A, B and C, in creation order.
func Execute3[A Requirement[A], B Requirement[B], C Requirement[C]](w *World, fn func(A, B, C)) error {
	var (
		a A
		b B
		c C
	)
	q, err := w.begin(a.requirement(), b.requirement(), c.requirement())
	if err != nil {
		return err
	}
	defer q.end()
	c0, c1, c2 := q.columns[0], q.columns[1], q.columns[2]
	q.each(func(slots []int) {
		fn(a.fetch(c0, slots[0]), b.fetch(c1, slots[1]), c.fetch(c2, slots[2]))
	})
	return nil
}

// Execute4 calls fn once for every entity that owns the components requested
// by A, B, C and D, in creation order. Use ExecuteDynamic for more.
func Execute4[A Requirement[A], B Requirement[B], C Requirement[C], D Requirement[D]](w *World, fn func(A, B, C, D)) error {
	var (
		a A
		b B
		c C
		d D
	)
	q, err := w.begin(a.requirement(), b.requirement(), c.requirement(), d.requirement())
	if err != nil {
		return err
	}
	defer q.end()
	c0, c1, c2, c3 := q.columns[0], q.columns[1], q.columns[2], q.columns[3]
	q.each(func(slots []int) {
		fn(a.fetch(c0, slots[0]), b.fetch(c1, slots[1]), c.fetch(c2, slots[2]), d.fetch(c3, slots[3]))
	})
	return nil
}
