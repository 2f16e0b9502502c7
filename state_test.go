package trajmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendGate(t *testing.T) {
	var g appendGate
	assert.True(t, g.canAppend())
	assert.Equal(t, Appendable, g.state)
	assert.Equal(t, NotLocked, g.reason)

	assert.True(t, g.lock(LockedByInsert))
	assert.False(t, g.canAppend())

	assert.False(t, g.lock(LockedByTrim), "second lock is a no-op")
	assert.Equal(t, Locked, g.state)
	assert.Equal(t, LockedByInsert, g.reason)
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "appendable", Appendable.String())
	assert.Equal(t, "locked", Locked.String())
	assert.Equal(t, "unknown", AppendState(9).String())

	assert.Equal(t, "not_locked", NotLocked.String())
	assert.Equal(t, "insert", LockedByInsert.String())
	assert.Equal(t, "trim", LockedByTrim.String())
	assert.Equal(t, "unknown", LockReason(9).String())
}
