package fermigo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordUpdate is called after each incremental update attempt.
	// duration is the total time taken, err is nil if successful.
	RecordUpdate(duration time.Duration, err error)

	// RecordRefresh is called after each full Slater refresh.
	RecordRefresh(duration time.Duration, err error)

	// RecordMeasure is called after each local estimator evaluation.
	// substates is the number of reachable final substates accumulated.
	RecordMeasure(substates int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordUpdate(time.Duration, error)       {}
func (NoopMetricsCollector) RecordRefresh(time.Duration, error)      {}
func (NoopMetricsCollector) RecordMeasure(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	UpdateCount       atomic.Int64
	UpdateErrors      atomic.Int64
	UpdateTotalNanos  atomic.Int64
	RefreshCount      atomic.Int64
	RefreshErrors     atomic.Int64
	MeasureCount      atomic.Int64
	MeasureErrors     atomic.Int64
	MeasureSubstates  atomic.Int64
	MeasureTotalNanos atomic.Int64
}

// RecordUpdate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUpdate(duration time.Duration, err error) {
	b.UpdateCount.Add(1)
	b.UpdateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.UpdateErrors.Add(1)
	}
}

// RecordRefresh implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRefresh(duration time.Duration, err error) {
	b.RefreshCount.Add(1)
	if err != nil {
		b.RefreshErrors.Add(1)
	}
}

// RecordMeasure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMeasure(substates int, duration time.Duration, err error) {
	b.MeasureCount.Add(1)
	b.MeasureSubstates.Add(int64(substates))
	b.MeasureTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.MeasureErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		UpdateCount:      b.UpdateCount.Load(),
		UpdateErrors:     b.UpdateErrors.Load(),
		UpdateAvgNanos:   avgNanos(&b.UpdateTotalNanos, &b.UpdateCount),
		RefreshCount:     b.RefreshCount.Load(),
		RefreshErrors:    b.RefreshErrors.Load(),
		MeasureCount:     b.MeasureCount.Load(),
		MeasureErrors:    b.MeasureErrors.Load(),
		MeasureSubstates: b.MeasureSubstates.Load(),
		MeasureAvgNanos:  avgNanos(&b.MeasureTotalNanos, &b.MeasureCount),
	}
}

func avgNanos(total, count *atomic.Int64) int64 {
	c := count.Load()
	if c == 0 {
		return 0
	}
	return total.Load() / c
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	UpdateCount      int64
	UpdateErrors     int64
	UpdateAvgNanos   int64
	RefreshCount     int64
	RefreshErrors    int64
	MeasureCount     int64
	MeasureErrors    int64
	MeasureSubstates int64
	MeasureAvgNanos  int64
}
