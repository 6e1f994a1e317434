package reks

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBorrowTracker(t *testing.T) {
	typ := reflect.TypeFor[Position]()
	newTracker := func() *borrowTracker {
		tr := &borrowTracker{}
		tr.register(0)
		tr.register(1)
		return tr
	}

	t.Run("shared reads", func(t *testing.T) {
		tr := newTracker()
		require.NoError(t, tr.acquire(0, typ, accessRead))
		require.NoError(t, tr.acquire(0, typ, accessRead))
		require.Equal(t, int32(2), tr.state(0))
		require.ErrorIs(t, tr.acquire(0, typ, accessWrite), ErrBorrowConflict)
	})

	t.Run("exclusive write", func(t *testing.T) {
		tr := newTracker()
		require.NoError(t, tr.acquire(0, typ, accessWrite))
		require.Equal(t, borrowWrite, tr.state(0))
		require.ErrorIs(t, tr.acquire(0, typ, accessRead), ErrBorrowConflict)
		require.ErrorIs(t, tr.acquire(0, typ, accessWrite), ErrBorrowConflict)
		require.NoError(t, tr.acquire(1, typ, accessWrite), "other types are independent")
	})

	t.Run("unknown component", func(t *testing.T) {
		tr := newTracker()
		require.ErrorIs(t, tr.acquire(7, typ, accessRead), ErrUnknownComponent)
	})

	t.Run("release and reset", func(t *testing.T) {
		tr := newTracker()
		require.NoError(t, tr.acquire(0, typ, accessRead))
		require.NoError(t, tr.acquire(1, typ, accessWrite))
		tr.release(0, accessRead)
		require.Zero(t, tr.state(0))
		require.NoError(t, tr.acquire(0, typ, accessWrite))

		tr.reset()
		require.Zero(t, tr.state(0))
		require.Zero(t, tr.state(1))
		require.NoError(t, tr.acquire(1, typ, accessRead))
	})

	t.Run("counter overflow panics", func(t *testing.T) {
		tr := newTracker()
		tr.states[0] = math.MaxInt32
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected panic")
			err, ok := r.(error)
			require.True(t, ok)
			require.ErrorIs(t, err, ErrCounterOverflow)
		}()
		_ = tr.acquire(0, typ, accessRead)
	})
}

func TestQueryResetsStaleBorrows(t *testing.T) {
	w := setupWorld(t)
	c, ok := w.components.lookup(reflect.TypeFor[Position]())
	require.True(t, ok)

	// A borrow left over from outside any query is cleared by the next one.
	w.borrows.states[c.id] = borrowWrite
	require.NoError(t, Execute(w, func(Ref[Position]) {}))
	require.Zero(t, w.borrows.state(c.id))
}
