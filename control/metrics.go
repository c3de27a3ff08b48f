// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime counters for system-level monitoring. Counters are lock-free;
// the registry map is guarded only for registration and snapshotting.

package control

import (
	"sync"
	"sync/atomic"
	"time"
)

// Counter is a monotonically increasing metric.
type Counter struct {
	v atomic.Int64
}

// Inc adds one.
func (c *Counter) Inc() { c.v.Add(1) }

// Add adds n.
func (c *Counter) Add(n int64) { c.v.Add(n) }

// Value returns the current count.
func (c *Counter) Value() int64 { return c.v.Load() }

// MetricsRegistry holds named counters with dynamic registration.
type MetricsRegistry struct {
	mu       sync.RWMutex
	counters map[string]*Counter
	updated  time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		counters: make(map[string]*Counter),
	}
}

// Counter returns the counter registered under key, creating it on first use.
func (mr *MetricsRegistry) Counter(key string) *Counter {
	mr.mu.RLock()
	c, ok := mr.counters[key]
	mr.mu.RUnlock()
	if ok {
		return c
	}
	mr.mu.Lock()
	defer mr.mu.Unlock()
	if c, ok = mr.counters[key]; ok {
		return c
	}
	c = &Counter{}
	mr.counters[key] = c
	mr.updated = time.Now()
	return c
}

// Snapshot returns the latest counter values.
func (mr *MetricsRegistry) Snapshot() map[string]int64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]int64, len(mr.counters))
	for k, c := range mr.counters {
		out[k] = c.Value()
	}
	return out
}
