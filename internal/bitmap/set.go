package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is an ordered set of uint32 values.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{
		rb: roaring.New(),
	}
}

// Add adds x to the set.
func (s *Set) Add(x uint32) {
	s.rb.Add(x)
}

// CheckedAdd adds x and reports whether it was absent before.
func (s *Set) CheckedAdd(x uint32) bool {
	return s.rb.CheckedAdd(x)
}

// Remove removes x from the set.
func (s *Set) Remove(x uint32) {
	s.rb.Remove(x)
}

// Contains checks if x is in the set.
func (s *Set) Contains(x uint32) bool {
	return s.rb.Contains(x)
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Len returns the number of members.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// Max returns the largest member. ok is false for an empty set.
func (s *Set) Max() (v uint32, ok bool) {
	if s.rb.IsEmpty() {
		return 0, false
	}
	return s.rb.Maximum(), true
}

// Values returns an iterator over the members in ascending order.
func (s *Set) Values() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Cursor returns a cursor positioned at the smallest member.
func (s *Set) Cursor() *Cursor {
	c := &Cursor{it: s.rb.Iterator()}
	c.Next()
	return c
}

// Cursor walks the members of a Set in ascending order.
type Cursor struct {
	it    roaring.IntPeekable
	cur   uint32
	valid bool
}

// Valid reports whether the cursor points at a member.
func (c *Cursor) Valid() bool {
	return c.valid
}

// Value returns the member under the cursor. Only meaningful when Valid.
func (c *Cursor) Value() uint32 {
	return c.cur
}

// Next moves to the next member, or invalidates the cursor at the end.
func (c *Cursor) Next() {
	if !c.it.HasNext() {
		c.valid = false
		return
	}
	c.cur = c.it.Next()
	c.valid = true
}

// Seek moves forward to the first member >= min. A cursor already at or past
// min does not move.
func (c *Cursor) Seek(min uint32) {
	if !c.valid || c.cur >= min {
		return
	}
	c.it.AdvanceIfNeeded(min)
	c.Next()
}
