// Package trajmap provides identifier-indexed containers for per-trajectory
// records such as trajectory nodes or submaps in a SLAM pipeline.
//
// Records are keyed by a composite identifier (see package id) made of a
// trajectory ID and a zero-based index inside that trajectory.
//
// # Containers
//
//   - MapByID: ordered, sparse map with Append, Insert, Trim and in-order
//     iteration. This is the container to use.
//   - NestedVectors: dense, append-only vector of vectors. Legacy.
//
// # Quick Start
//
//	nodes := trajmap.NewMapByID[id.NodeID, Pose]()
//	first := nodes.Append(0, pose)       // (0, 0)
//	nodes.Append(0, next)                // (0, 1)
//	for nodeID, p := range nodes.All() { // ordered by trajectory, then index
//	    fmt.Println(nodeID, p)
//	}
//
// # Append Gating
//
// Every trajectory of a MapByID is Appendable until one of these happens:
//
//   - an Insert into the trajectory, at any index
//   - a Trim of the entry with the highest index of the trajectory
//
// The trajectory is Locked from then on and only Insert may add entries.
// Consumers rely on consecutive indices being adjacent in time; resuming
// Append after a gap or after the last entry was removed could break that or
// reuse an identifier that was already handed out. Use CanAppend, State and
// LockReason to inspect a trajectory.
//
// # Contract Violations
//
// Invalid calls are caller bugs, not runtime conditions. They panic with a
// *ContractViolation that wraps a sentinel such as ErrAppendLocked or
// ErrNotFound:
//
//   - negative trajectory IDs or indices
//   - Append to a Locked trajectory
//   - Insert at an existing identifier
//   - Trim, At or Ptr of a missing identifier
//
// Lookup and Contains are the non-panicking way to probe for an identifier.
//
// # Concurrency
//
// Containers are not synchronized. Guard them externally when shared, and do
// not mutate a MapByID while an Iterator or All/Trajectory sequence over it is
// in use.
//
// # Observability
//
// WithLogger enables structured logging (log/slog) of trajectory creation,
// lock transitions and contract violations. WithMetricsCollector receives a
// callback after each mutation.
package trajmap
