package trajmap

import (
	"fmt"
	"iter"
	"math"

	"github.com/hupe1980/trajmap/id"
	"github.com/hupe1980/trajmap/internal/bitmap"
)

// trajectory holds the entries of one trajectory.
type trajectory[T any] struct {
	gate    appendGate
	indices *bitmap.Set
	data    map[uint32]*T
}

func newTrajectory[T any]() *trajectory[T] {
	return &trajectory[T]{
		indices: bitmap.New(),
		data:    make(map[uint32]*T),
	}
}

func (t *trajectory[T]) put(index uint32, data T) {
	t.indices.Add(index)
	t.data[index] = &data
}

func (t *trajectory[T]) remove(index uint32) {
	t.indices.Remove(index)
	delete(t.data, index)
}

// MapByID is an ordered map from composite identifiers to data, grouped by
// trajectory.
//
// Each trajectory starts Appendable: Append assigns the index following the
// current maximum. An Insert, or a Trim of the entry with the highest index,
// locks the trajectory for good and only Insert may add to it afterwards.
//
// Trajectory entries are created on first use and never removed, even when
// trimmed down to nothing. Iteration skips empty trajectories.
//
// MapByID is not safe for concurrent use. Mutating it invalidates every
// Iterator obtained from it.
type MapByID[I id.ID[I], T any] struct {
	trajectoryIDs *bitmap.Set
	trajectories  map[uint32]*trajectory[T]
	size          int
	opts          options
}

// NewMapByID creates an empty MapByID.
func NewMapByID[I id.ID[I], T any](optFns ...Option) *MapByID[I, T] {
	return &MapByID[I, T]{
		trajectoryIDs: bitmap.New(),
		trajectories:  make(map[uint32]*trajectory[T]),
		opts:          newOptions(optFns),
	}
}

// Append adds data at the next index of trajectoryID, creating the trajectory
// as needed, and returns the new identifier.
//
// The next index is one past the current maximum, or 0 for an empty
// trajectory. Appending to a Locked trajectory is a contract violation.
func (m *MapByID[I, T]) Append(trajectoryID int, data T) I {
	const op = "append"

	tk := m.opts.trajectoryKey(op, trajectoryID)
	traj := m.getOrCreate(op, tk)
	if !traj.gate.canAppend() {
		m.opts.fail(op, trajectorySubject(trajectoryID), ErrAppendLocked)
	}

	var index uint32
	if last, ok := traj.indices.Max(); ok {
		if last == math.MaxUint32 {
			m.opts.fail(op, trajectorySubject(trajectoryID), ErrIDOverflow)
		}
		index = last + 1
	}

	traj.put(index, data)
	m.size++
	m.opts.metrics.RecordAppend(trajectoryID)

	return id.Make[I](trajectoryID, int(index))
}

// Insert adds data at i, which must not exist already.
//
// The trajectory of i is Locked afterwards, whatever the index: an externally
// chosen index may leave gaps that Append cannot account for.
func (m *MapByID[I, T]) Insert(i I, data T) {
	const op = "insert"

	tk, ik := m.opts.keys(op, i)
	if traj, ok := m.trajectories[tk]; ok && traj.indices.Contains(ik) {
		m.opts.fail(op, i.String(), ErrDuplicateID)
	}

	traj := m.getOrCreate(op, tk)
	m.lock(i.Trajectory(), traj, LockedByInsert)

	traj.put(ik, data)
	m.size++
	m.opts.metrics.RecordInsert(i.Trajectory())
}

// Trim removes the data for i, which must exist.
//
// Removing the entry with the highest index of its trajectory locks the
// trajectory: appending again would reuse an identifier that was already
// handed out.
func (m *MapByID[I, T]) Trim(i I) {
	const op = "trim"

	traj, ik := m.mustFind(op, i)
	if last, _ := traj.indices.Max(); last == ik {
		m.lock(i.Trajectory(), traj, LockedByTrim)
	}

	traj.remove(ik)
	m.size--
	m.opts.metrics.RecordTrim(i.Trajectory())
}

// At returns the data for i, which must exist.
func (m *MapByID[I, T]) At(i I) T {
	traj, ik := m.mustFind("at", i)
	return *traj.data[ik]
}

// Ptr returns a pointer to the data for i, which must exist. The pointer
// stays valid until i is trimmed.
func (m *MapByID[I, T]) Ptr(i I) *T {
	traj, ik := m.mustFind("ptr", i)
	return traj.data[ik]
}

// Lookup returns the data for i and whether it exists.
// Malformed identifiers are reported as absent.
func (m *MapByID[I, T]) Lookup(i I) (T, bool) {
	traj, ik, ok := m.find(i)
	if !ok {
		var zero T
		return zero, false
	}
	return *traj.data[ik], true
}

// Contains reports whether data exists for i.
func (m *MapByID[I, T]) Contains(i I) bool {
	_, _, ok := m.find(i)
	return ok
}

// Empty reports whether no trajectory holds any entry.
func (m *MapByID[I, T]) Empty() bool {
	return m.Begin().Done()
}

// Len returns the number of entries over all trajectories.
func (m *MapByID[I, T]) Len() int {
	return m.size
}

// SizeOfTrajectoryOrZero returns the number of entries in trajectoryID, or 0
// if the trajectory is unknown.
func (m *MapByID[I, T]) SizeOfTrajectoryOrZero(trajectoryID int) int {
	tk, ok := toKey(trajectoryID)
	if !ok {
		return 0
	}
	traj, ok := m.trajectories[tk]
	if !ok {
		return 0
	}
	return traj.indices.Len()
}

// State returns the append state of trajectoryID. Unknown trajectories are
// Appendable.
func (m *MapByID[I, T]) State(trajectoryID int) AppendState {
	tk := m.opts.trajectoryKey("state", trajectoryID)
	if traj, ok := m.trajectories[tk]; ok {
		return traj.gate.state
	}
	return Appendable
}

// CanAppend reports whether Append is permitted on trajectoryID.
func (m *MapByID[I, T]) CanAppend(trajectoryID int) bool {
	return m.State(trajectoryID) == Appendable
}

// LockReason returns why trajectoryID was locked, or NotLocked.
func (m *MapByID[I, T]) LockReason(trajectoryID int) LockReason {
	tk := m.opts.trajectoryKey("lock_reason", trajectoryID)
	if traj, ok := m.trajectories[tk]; ok {
		return traj.gate.reason
	}
	return NotLocked
}

// TrajectoryIDs returns every trajectory ever referenced, in ascending order,
// including trajectories that have been trimmed empty.
func (m *MapByID[I, T]) TrajectoryIDs() iter.Seq[int] {
	return func(yield func(int) bool) {
		for tk := range m.trajectoryIDs.Values() {
			if !yield(int(tk)) {
				return
			}
		}
	}
}

// Trajectory returns the entries of trajectoryID in ascending index order.
// Unknown trajectories yield nothing.
func (m *MapByID[I, T]) Trajectory(trajectoryID int) iter.Seq2[I, T] {
	return func(yield func(I, T) bool) {
		tk, ok := toKey(trajectoryID)
		if !ok {
			return
		}
		traj, ok := m.trajectories[tk]
		if !ok {
			return
		}
		for ik := range traj.indices.Values() {
			if !yield(id.Make[I](trajectoryID, int(ik)), *traj.data[ik]) {
				return
			}
		}
	}
}

// All returns every entry ordered by trajectory and then by index.
func (m *MapByID[I, T]) All() iter.Seq2[I, T] {
	return func(yield func(I, T) bool) {
		for it := m.Begin(); !it.Done(); it.Next() {
			if !yield(it.ID(), it.Data()) {
				return
			}
		}
	}
}

// Begin returns an iterator positioned at the first entry.
func (m *MapByID[I, T]) Begin() *Iterator[I, T] {
	it := &Iterator[I, T]{m: m, outer: m.trajectoryIDs.Cursor()}
	it.settle()
	return it
}

// LowerBound returns an iterator positioned at the first entry of
// trajectoryID whose index is at least minIndex. If there is none, the
// iterator is positioned at the first entry of the next non-empty
// trajectory, or is exhausted.
func (m *MapByID[I, T]) LowerBound(trajectoryID, minIndex int) *Iterator[I, T] {
	const op = "lower_bound"

	tk, ik := m.opts.keys(op, id.Make[I](trajectoryID, minIndex))

	it := &Iterator[I, T]{m: m, outer: m.trajectoryIDs.Cursor()}
	it.outer.Seek(tk)
	if it.outer.Valid() && it.outer.Value() == tk {
		it.enter()
		it.inner.Seek(ik)
	}
	it.settle()
	return it
}

func (m *MapByID[I, T]) getOrCreate(op string, tk uint32) *trajectory[T] {
	traj, ok := m.trajectories[tk]
	if !ok {
		traj = newTrajectory[T]()
		m.trajectories[tk] = traj
		m.trajectoryIDs.Add(tk)
		m.opts.logger.LogTrajectoryCreated(op, int(tk))
	}
	return traj
}

func (m *MapByID[I, T]) lock(trajectoryID int, traj *trajectory[T], reason LockReason) {
	if traj.gate.lock(reason) {
		m.opts.logger.LogLocked(trajectoryID, reason)
		m.opts.metrics.RecordLock(trajectoryID, reason)
	}
}

func (m *MapByID[I, T]) find(i I) (*trajectory[T], uint32, bool) {
	tk, ok := toKey(i.Trajectory())
	if !ok {
		return nil, 0, false
	}
	ik, ok := toKey(i.Index())
	if !ok {
		return nil, 0, false
	}
	traj, ok := m.trajectories[tk]
	if !ok || !traj.indices.Contains(ik) {
		return nil, 0, false
	}
	return traj, ik, true
}

func (m *MapByID[I, T]) mustFind(op string, i I) (*trajectory[T], uint32) {
	m.opts.keys(op, i)
	traj, ik, ok := m.find(i)
	if !ok {
		m.opts.fail(op, i.String(), ErrNotFound)
	}
	return traj, ik
}

// identifier is the non-generic view of id.ID used for validation.
type identifier interface {
	fmt.Stringer
	Trajectory() int
	Index() int
}

func toKey(v int) (uint32, bool) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, false
	}
	return uint32(v), true
}

// trajectoryKey validates a trajectory ID and converts it to a set key.
func (o *options) trajectoryKey(op string, trajectoryID int) uint32 {
	switch {
	case trajectoryID < 0:
		o.fail(op, trajectorySubject(trajectoryID), ErrNegativeTrajectory)
	case uint64(trajectoryID) > math.MaxUint32:
		o.fail(op, trajectorySubject(trajectoryID), ErrIDOverflow)
	}
	return uint32(trajectoryID)
}

// keys validates both halves of an identifier.
func (o *options) keys(op string, i identifier) (uint32, uint32) {
	tk := o.trajectoryKey(op, i.Trajectory())
	switch index := i.Index(); {
	case index < 0:
		o.fail(op, i.String(), ErrNegativeIndex)
	case uint64(index) > math.MaxUint32:
		o.fail(op, i.String(), ErrIDOverflow)
	}
	return tk, uint32(i.Index())
}
