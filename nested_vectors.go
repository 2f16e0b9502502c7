package trajmap

import (
	"iter"

	"github.com/hupe1980/trajmap/id"
)

// NestedVectors is a dense, append-only store of per-trajectory sequences.
//
// Identifiers are always assigned by the container and are permanent: there
// is no deletion and no explicit insertion. Appending to a trajectory creates
// every lower-numbered trajectory that does not exist yet as an empty one.
//
// Deprecated: use MapByID, which also supports Insert and Trim.
type NestedVectors[I id.ID[I], T any] struct {
	data [][]T
	opts options
}

// NewNestedVectors creates an empty NestedVectors.
func NewNestedVectors[I id.ID[I], T any](optFns ...Option) *NestedVectors[I, T] {
	return &NestedVectors[I, T]{
		opts: newOptions(optFns),
	}
}

// Append adds value to the end of trajectoryID and returns its identifier.
func (n *NestedVectors[I, T]) Append(trajectoryID int, value T) I {
	const op = "append"

	if trajectoryID < 0 {
		n.opts.fail(op, trajectorySubject(trajectoryID), ErrNegativeTrajectory)
	}
	for len(n.data) <= trajectoryID {
		n.opts.logger.LogTrajectoryCreated(op, len(n.data))
		n.data = append(n.data, nil)
	}

	index := len(n.data[trajectoryID])
	n.data[trajectoryID] = append(n.data[trajectoryID], value)
	n.opts.metrics.RecordAppend(trajectoryID)

	return id.Make[I](trajectoryID, index)
}

// At returns the value stored at i.
func (n *NestedVectors[I, T]) At(i I) T {
	return *n.ptr("at", i)
}

// Ptr returns a pointer to the value stored at i. The pointer is invalidated
// by the next Append to the same trajectory.
func (n *NestedVectors[I, T]) Ptr(i I) *T {
	return n.ptr("ptr", i)
}

// TrajectoryCount returns the number of trajectories, including empty ones.
func (n *NestedVectors[I, T]) TrajectoryCount() int {
	return len(n.data)
}

// IndexCount returns the number of values in trajectoryID.
func (n *NestedVectors[I, T]) IndexCount(trajectoryID int) int {
	return len(n.trajectory("index_count", trajectoryID))
}

// Trajectory returns the values of trajectoryID. The slice aliases the
// container and must not be modified.
func (n *NestedVectors[I, T]) Trajectory(trajectoryID int) []T {
	values := n.trajectory("trajectory_view", trajectoryID)
	return values[:len(values):len(values)]
}

// All returns every value ordered by trajectory and then by index.
func (n *NestedVectors[I, T]) All() iter.Seq2[I, T] {
	return func(yield func(I, T) bool) {
		for trajectoryID, values := range n.data {
			for index, value := range values {
				if !yield(id.Make[I](trajectoryID, index), value) {
					return
				}
			}
		}
	}
}

func (n *NestedVectors[I, T]) trajectory(op string, trajectoryID int) []T {
	if trajectoryID < 0 || trajectoryID >= len(n.data) {
		n.opts.fail(op, trajectorySubject(trajectoryID), ErrOutOfRange)
	}
	return n.data[trajectoryID]
}

func (n *NestedVectors[I, T]) ptr(op string, i I) *T {
	values := n.trajectory(op, i.Trajectory())
	index := i.Index()
	if index < 0 || index >= len(values) {
		n.opts.fail(op, i.String(), ErrOutOfRange)
	}
	return &values[index]
}
