// Package bitmap provides an ordered uint32 set backed by a Roaring bitmap.
//
// Set is used for both levels of the sparse trajectory container: the set of
// known trajectory IDs and, per trajectory, the set of occupied indices.
// Roaring keeps members sorted, so ascending iteration and the maximum member
// come for free.
//
// Cursor is a forward-only position inside a Set. It is invalidated by any
// mutation of the Set it was created from.
package bitmap
