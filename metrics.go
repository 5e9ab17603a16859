package h3batch

import (
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    rows    *prometheus.CounterVec
//	    latency *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordCall(op string, rows, absent int, d time.Duration, err error) {
//	    p.rows.WithLabelValues(op).Add(float64(rows))
//	    p.latency.WithLabelValues(op).Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordCall is called after each batch operation.
	// rows is the input length, absent the number of null output rows,
	// err is nil unless the call failed structurally.
	RecordCall(op string, rows, absent int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCall(string, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CallCount  atomic.Int64
	CallErrors atomic.Int64
	Rows       atomic.Int64
	AbsentRows atomic.Int64
	TotalNanos atomic.Int64

	mu    sync.Mutex
	perOp map[string]int64
}

// RecordCall implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCall(op string, rows, absent int, duration time.Duration, err error) {
	b.CallCount.Add(1)
	b.Rows.Add(int64(rows))
	b.AbsentRows.Add(int64(absent))
	b.TotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CallErrors.Add(1)
	}

	b.mu.Lock()
	if b.perOp == nil {
		b.perOp = make(map[string]int64)
	}
	b.perOp[op]++
	b.mu.Unlock()
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	b.mu.Lock()
	perOp := make(map[string]int64, len(b.perOp))
	for op, n := range b.perOp {
		perOp[op] = n
	}
	b.mu.Unlock()

	return BasicMetricsStats{
		CallCount:  b.CallCount.Load(),
		CallErrors: b.CallErrors.Load(),
		Rows:       b.Rows.Load(),
		AbsentRows: b.AbsentRows.Load(),
		AvgNanos:   b.getAvgNanos(),
		PerOp:      perOp,
	}
}

func (b *BasicMetricsCollector) getAvgNanos() int64 {
	count := b.CallCount.Load()
	if count == 0 {
		return 0
	}
	return b.TotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CallCount  int64
	CallErrors int64
	Rows       int64
	AbsentRows int64
	AvgNanos   int64
	PerOp      map[string]int64
}
