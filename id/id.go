package id

import (
	"cmp"
	"fmt"
)

// ID is the constraint satisfied by every composite identifier.
//
// With builds a new identifier of the same type; containers use it to mint
// identifiers without knowing the name of the index field.
type ID[I any] interface {
	comparable
	fmt.Stringer
	Trajectory() int
	Index() int
	With(trajectoryID, index int) I
}

// Make returns the identifier of type I for (trajectoryID, index).
func Make[I ID[I]](trajectoryID, index int) I {
	var zero I
	return zero.With(trajectoryID, index)
}

// Compare orders identifiers by trajectory and then by index.
// It returns -1, 0 or +1.
func Compare[I ID[I]](a, b I) int {
	if c := cmp.Compare(a.Trajectory(), b.Trajectory()); c != 0 {
		return c
	}
	return cmp.Compare(a.Index(), b.Index())
}

// Less reports whether a sorts before b.
func Less[I ID[I]](a, b I) bool {
	return Compare(a, b) < 0
}

func format(trajectoryID, index int) string {
	return fmt.Sprintf("(%d, %d)", trajectoryID, index)
}

// NodeID uniquely identifies a trajectory node using a combination of a
// unique trajectory ID and a zero-based index of the node inside that
// trajectory.
type NodeID struct {
	TrajectoryID int
	NodeIndex    int
}

// Trajectory returns the trajectory ID.
func (n NodeID) Trajectory() int { return n.TrajectoryID }

// Index returns the node index.
func (n NodeID) Index() int { return n.NodeIndex }

// With returns the NodeID (trajectoryID, index).
func (NodeID) With(trajectoryID, index int) NodeID {
	return NodeID{TrajectoryID: trajectoryID, NodeIndex: index}
}

// Less reports whether n sorts before other.
func (n NodeID) Less(other NodeID) bool { return Less(n, other) }

// String returns "(trajectory, index)".
func (n NodeID) String() string { return format(n.TrajectoryID, n.NodeIndex) }

// SubmapID uniquely identifies a submap using a combination of a unique
// trajectory ID and a zero-based index of the submap inside that trajectory.
type SubmapID struct {
	TrajectoryID int
	SubmapIndex  int
}

// Trajectory returns the trajectory ID.
func (s SubmapID) Trajectory() int { return s.TrajectoryID }

// Index returns the submap index.
func (s SubmapID) Index() int { return s.SubmapIndex }

// With returns the SubmapID (trajectoryID, index).
func (SubmapID) With(trajectoryID, index int) SubmapID {
	return SubmapID{TrajectoryID: trajectoryID, SubmapIndex: index}
}

// Less reports whether s sorts before other.
func (s SubmapID) Less(other SubmapID) bool { return Less(s, other) }

// String returns "(trajectory, index)".
func (s SubmapID) String() string { return format(s.TrajectoryID, s.SubmapIndex) }
