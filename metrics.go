package trajmap

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting container metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// A collector may be shared by several containers, so implementations must be
// safe for concurrent use.
type MetricsCollector interface {
	// RecordAppend is called after each successful append.
	RecordAppend(trajectoryID int)

	// RecordInsert is called after each successful explicit insert.
	RecordInsert(trajectoryID int)

	// RecordTrim is called after each successful trim.
	RecordTrim(trajectoryID int)

	// RecordLock is called when a trajectory moves from Appendable to Locked.
	RecordLock(trajectoryID int, reason LockReason)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAppend(int)           {}
func (NoopMetricsCollector) RecordInsert(int)           {}
func (NoopMetricsCollector) RecordTrim(int)             {}
func (NoopMetricsCollector) RecordLock(int, LockReason) {}

// BasicMetricsCollector provides simple in-memory counters.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	AppendCount    atomic.Int64
	InsertCount    atomic.Int64
	TrimCount      atomic.Int64
	LockedByInsert atomic.Int64
	LockedByTrim   atomic.Int64
}

// RecordAppend implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAppend(int) {
	b.AppendCount.Add(1)
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(int) {
	b.InsertCount.Add(1)
}

// RecordTrim implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTrim(int) {
	b.TrimCount.Add(1)
}

// RecordLock implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLock(_ int, reason LockReason) {
	switch reason {
	case LockedByInsert:
		b.LockedByInsert.Add(1)
	case LockedByTrim:
		b.LockedByTrim.Add(1)
	}
}

// MetricsStats is a point-in-time copy of BasicMetricsCollector.
type MetricsStats struct {
	AppendCount    int64
	InsertCount    int64
	TrimCount      int64
	LockedByInsert int64
	LockedByTrim   int64
}

// GetStats returns a snapshot of the counters.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	return MetricsStats{
		AppendCount:    b.AppendCount.Load(),
		InsertCount:    b.InsertCount.Load(),
		TrimCount:      b.TrimCount.Load(),
		LockedByInsert: b.LockedByInsert.Load(),
		LockedByTrim:   b.LockedByTrim.Load(),
	}
}
