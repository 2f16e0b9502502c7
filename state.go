package trajmap

// AppendState tells whether a trajectory still derives its next index from
// the current maximum.
type AppendState uint8

const (
	// Appendable trajectories hold a contiguous run 0..n-1 built by Append.
	Appendable AppendState = iota
	// Locked trajectories only accept Insert. Locked is terminal.
	Locked
)

// String returns the name of the state.
func (s AppendState) String() string {
	switch s {
	case Appendable:
		return "appendable"
	case Locked:
		return "locked"
	default:
		return "unknown"
	}
}

// LockReason records which operation moved a trajectory to Locked.
type LockReason uint8

const (
	// NotLocked is reported for Appendable trajectories.
	NotLocked LockReason = iota
	// LockedByInsert means an explicit Insert chose an index.
	LockedByInsert
	// LockedByTrim means the entry with the highest index was trimmed.
	LockedByTrim
)

// String returns the name of the reason.
func (r LockReason) String() string {
	switch r {
	case NotLocked:
		return "not_locked"
	case LockedByInsert:
		return "insert"
	case LockedByTrim:
		return "trim"
	default:
		return "unknown"
	}
}

// appendGate is the per-trajectory Appendable -> Locked state machine.
type appendGate struct {
	state  AppendState
	reason LockReason
}

func (g *appendGate) canAppend() bool {
	return g.state == Appendable
}

// lock moves the gate to Locked and reports whether the state changed.
// The first reason wins.
func (g *appendGate) lock(reason LockReason) bool {
	if g.state == Locked {
		return false
	}
	g.state = Locked
	g.reason = reason
	return true
}
