package natset

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting Builder metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAdd is called for each item offered to a Builder.
	// err is nil if the item was accepted.
	RecordAdd(err error)

	// RecordBuild is called when a Builder is finalized.
	// items is the number of accepted items, members the resulting set size
	// (items-members duplicates collapsed), duration the time since the
	// Builder was created.
	RecordBuild(items, members int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(error)                     {}
func (NoopMetricsCollector) RecordBuild(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use by multiple Builders.
type BasicMetricsCollector struct {
	AddCount        atomic.Int64
	AddErrors       atomic.Int64
	BuildCount      atomic.Int64
	BuildItems      atomic.Int64
	BuildMembers    atomic.Int64
	BuildTotalNanos atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(err error) {
	b.AddCount.Add(1)
	if err != nil {
		b.AddErrors.Add(1)
	}
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(items, members int, duration time.Duration) {
	b.BuildCount.Add(1)
	b.BuildItems.Add(int64(items))
	b.BuildMembers.Add(int64(members))
	b.BuildTotalNanos.Add(duration.Nanoseconds())
}

// MetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type MetricsStats struct {
	AddCount      int64
	AddErrors     int64
	BuildCount    int64
	BuildItems    int64
	BuildMembers  int64
	Duplicates    int64
	BuildAvgNanos int64
}

// GetStats returns a snapshot of the current metrics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	s := MetricsStats{
		AddCount:     b.AddCount.Load(),
		AddErrors:    b.AddErrors.Load(),
		BuildCount:   b.BuildCount.Load(),
		BuildItems:   b.BuildItems.Load(),
		BuildMembers: b.BuildMembers.Load(),
	}
	s.Duplicates = s.BuildItems - s.BuildMembers
	if s.BuildCount > 0 {
		s.BuildAvgNanos = b.BuildTotalNanos.Load() / s.BuildCount
	}
	return s
}
