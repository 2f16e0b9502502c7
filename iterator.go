package trajmap

import (
	"github.com/hupe1980/trajmap/id"
	"github.com/hupe1980/trajmap/internal/bitmap"
)

// Iterator walks the entries of a MapByID ordered by trajectory and then by
// index. It keeps one cursor over trajectory IDs and one over the indices of
// the current trajectory; the inner cursor advances first and empty
// trajectories are skipped.
//
//	for it := m.Begin(); !it.Done(); it.Next() {
//	    fmt.Println(it.ID(), it.Data())
//	}
//
// An Iterator must not be used after its MapByID has been mutated.
type Iterator[I id.ID[I], T any] struct {
	m     *MapByID[I, T]
	outer *bitmap.Cursor
	inner *bitmap.Cursor
	traj  *trajectory[T]
}

// Done reports whether the iterator is exhausted.
func (it *Iterator[I, T]) Done() bool {
	return !it.outer.Valid()
}

// ID returns the identifier of the current entry.
func (it *Iterator[I, T]) ID() I {
	it.mustBeValid("iterator id")
	return id.Make[I](int(it.outer.Value()), int(it.inner.Value()))
}

// Data returns the data of the current entry.
func (it *Iterator[I, T]) Data() T {
	it.mustBeValid("iterator data")
	return *it.traj.data[it.inner.Value()]
}

// Next advances to the following entry.
func (it *Iterator[I, T]) Next() {
	it.mustBeValid("iterator next")
	it.inner.Next()
	it.settle()
}

// Equal reports whether both iterators are exhausted, or both point at the
// same trajectory and index.
func (it *Iterator[I, T]) Equal(other *Iterator[I, T]) bool {
	if it.Done() || other.Done() {
		return it.Done() == other.Done()
	}
	return it.outer.Value() == other.outer.Value() &&
		it.inner.Value() == other.inner.Value()
}

// enter opens the inner cursor on the trajectory under the outer cursor.
func (it *Iterator[I, T]) enter() {
	it.traj = it.m.trajectories[it.outer.Value()]
	it.inner = it.traj.indices.Cursor()
}

// settle moves past exhausted trajectories until the inner cursor points at
// an entry or the outer cursor runs out.
func (it *Iterator[I, T]) settle() {
	for it.outer.Valid() {
		if it.inner == nil {
			it.enter()
		}
		if it.inner.Valid() {
			return
		}
		it.outer.Next()
		it.inner = nil
	}
	it.traj = nil
}

func (it *Iterator[I, T]) mustBeValid(op string) {
	if it.Done() {
		it.m.opts.fail(op, "", ErrIteratorExhausted)
	}
}
