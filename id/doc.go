// Package id defines the composite identifiers used to key per-trajectory
// records.
//
// # Identity Types
//
//   - NodeID: (trajectory, node index) of a trajectory node
//   - SubmapID: (trajectory, submap index) of a submap
//
// Both types are small comparable values ordered lexicographically by
// trajectory and then by index. They render as "(trajectory, index)".
//
// Containers are generic over any type that satisfies ID:
//
//	m := trajmap.NewMapByID[id.NodeID, Pose]()
//	nodeID := m.Append(0, pose) // id.NodeID{TrajectoryID: 0, NodeIndex: 0}
package id
