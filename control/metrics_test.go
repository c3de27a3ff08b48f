// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// metrics_test.go — Counter registry tests.
package control

import (
	"sync"
	"testing"
)

func TestMetricsRegistry_CounterIdentity(t *testing.T) {
	mr := NewMetricsRegistry()
	a := mr.Counter("ops")
	b := mr.Counter("ops")
	if a != b {
		t.Fatal("same key must return the same counter")
	}
	a.Inc()
	b.Add(2)
	if got := mr.Snapshot()["ops"]; got != 3 {
		t.Errorf("snapshot ops = %d, want 3", got)
	}
}

func TestMetricsRegistry_ConcurrentCounters(t *testing.T) {
	mr := NewMetricsRegistry()
	const goroutines, increments = 8, 1000
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := mr.Counter("shared")
			for i := 0; i < increments; i++ {
				c.Inc()
			}
		}()
	}
	wg.Wait()
	if got := mr.Counter("shared").Value(); got != goroutines*increments {
		t.Errorf("shared = %d, want %d", got, goroutines*increments)
	}
}
