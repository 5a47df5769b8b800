package ripsgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    runCounter   prometheus.Counter
//	    runHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordRun(points, maxDim, numEdges int, duration time.Duration, err error) {
//	    p.runCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordRun is called after each barcode computation.
	// points is the number of input points, maxDim the requested dimension
	// bound, numEdges the number of edges below the threshold, duration the
	// total time taken. err is nil if successful.
	RecordRun(points, maxDim, numEdges int, duration time.Duration, err error)

	// RecordBatch is called after each batch computation.
	// count is the number of matrices attempted, failed is the number that
	// failed, duration is the total time taken.
	RecordBatch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount      atomic.Int64
	RunErrors     atomic.Int64
	RunTotalNanos atomic.Int64
	RunEdges      atomic.Int64
	BatchCount    atomic.Int64
	BatchItems    atomic.Int64
	BatchFailed   atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(points, maxDim, numEdges int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	b.RunEdges.Add(int64(numEdges))
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, failed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:    b.RunCount.Load(),
		RunErrors:   b.RunErrors.Load(),
		RunAvgNanos: b.getAvgRunNanos(),
		RunEdges:    b.RunEdges.Load(),
		BatchCount:  b.BatchCount.Load(),
		BatchItems:  b.BatchItems.Load(),
		BatchFailed: b.BatchFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRunNanos() int64 {
	count := b.RunCount.Load()
	if count == 0 {
		return 0
	}
	return b.RunTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount    int64
	RunErrors   int64
	RunAvgNanos int64
	RunEdges    int64
	BatchCount  int64
	BatchItems  int64
	BatchFailed int64
}
