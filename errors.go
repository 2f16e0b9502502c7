package trajmap

import (
	"errors"
	"fmt"
)

// Every precondition failure panics with a *ContractViolation wrapping one of
// these sentinels. They describe caller bugs and are never returned.
var (
	// ErrNegativeTrajectory is used when a trajectory ID is below zero.
	ErrNegativeTrajectory = errors.New("trajectory id must be non-negative")

	// ErrNegativeIndex is used when an index is below zero.
	ErrNegativeIndex = errors.New("index must be non-negative")

	// ErrIDOverflow is used when a trajectory ID or index does not fit in 32 bits.
	ErrIDOverflow = errors.New("id does not fit in 32 bits")

	// ErrAppendLocked is used when appending to a Locked trajectory.
	ErrAppendLocked = errors.New("trajectory does not permit append")

	// ErrDuplicateID is used when inserting at an occupied id.
	ErrDuplicateID = errors.New("id already exists")

	// ErrNotFound is used when trimming or reading an absent id.
	ErrNotFound = errors.New("id does not exist")

	// ErrOutOfRange is used when a dense container is read past its end.
	ErrOutOfRange = errors.New("id out of range")

	// ErrIteratorExhausted is used when reading or advancing a finished iterator.
	ErrIteratorExhausted = errors.New("iterator is exhausted")
)

// ContractViolation is the panic value raised when a caller breaks a
// container precondition.
//
// The sentinel can be matched with errors.Is after recovering.
type ContractViolation struct {
	Op      string // operation that was called, e.g. "append"
	Subject string // offending id or trajectory, may be empty
	Err     error
}

func (e *ContractViolation) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("trajmap: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("trajmap: %s %s: %v", e.Op, e.Subject, e.Err)
}

func (e *ContractViolation) Unwrap() error { return e.Err }

func trajectorySubject(trajectoryID int) string {
	return fmt.Sprintf("trajectory %d", trajectoryID)
}
