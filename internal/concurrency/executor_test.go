// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// executor_test.go — Work-stealing executor tests.
package concurrency

import (
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alphadose/haxmap"

	"github.com/momentics/hioload-deque/api"
)

func waitCompleted(t *testing.T, e *Executor, want int64) {
	t.Helper()
	deadline := time.Now().Add(30 * time.Second)
	for e.Stats()["tasks_completed"] < want {
		if time.Now().After(deadline) {
			t.Fatalf("executor stalled: completed %d, want %d",
				e.Stats()["tasks_completed"], want)
		}
		runtime.Gosched()
	}
}

// TestExecutor_ExactlyOnce submits distinct tasks and verifies each runs
// exactly once, using a lock-free map as the delivery ledger.
func TestExecutor_ExactlyOnce(t *testing.T) {
	e := NewExecutor(4, false)
	defer e.Close()

	const n = 20000
	ledger := haxmap.New[int, int]()
	var duplicates atomic.Int64
	for i := 0; i < n; i++ {
		i := i
		if err := e.Submit(func() {
			if _, loaded := ledger.GetOrSet(i, 1); loaded {
				duplicates.Add(1)
			}
		}); err != nil {
			t.Fatalf("Submit(%d): %v", i, err)
		}
	}
	waitCompleted(t, e, n)

	if d := duplicates.Load(); d != 0 {
		t.Errorf("%d tasks ran more than once", d)
	}
	if got := int(ledger.Len()); got != n {
		t.Errorf("%d distinct tasks ran, want %d", got, n)
	}
}

// TestExecutor_StealingHappens saturates one batch at a time so idle workers
// must steal; the stolen counter should move on a multi-worker pool.
func TestExecutor_StealingHappens(t *testing.T) {
	e := NewExecutor(4, false)
	defer e.Close()

	const n = 50000
	var ran atomic.Int64
	for i := 0; i < n; i++ {
		_ = e.Submit(func() { ran.Add(1) })
	}
	waitCompleted(t, e, n)
	if ran.Load() != n {
		t.Fatalf("ran %d tasks, want %d", ran.Load(), n)
	}
	// Not a hard guarantee, but with 4 workers and a shared backlog zero
	// steals across the whole run indicates the deques are not shared.
	t.Logf("stats: %+v", e.Stats())
}

// TestExecutor_SubmitValidation covers the closed and nil-task errors.
func TestExecutor_SubmitValidation(t *testing.T) {
	e := NewExecutor(2, false)
	if err := e.Submit(nil); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("nil task: got %v, want ErrInvalidArgument", err)
	}
	e.Close()
	if err := e.Submit(func() {}); !errors.Is(err, api.ErrExecutorClosed) {
		t.Errorf("closed executor: got %v, want ErrExecutorClosed", err)
	}
}

// TestExecutor_Stats checks the snapshot bookkeeping.
func TestExecutor_Stats(t *testing.T) {
	e := NewExecutor(2, false)
	defer e.Close()

	const n = 100
	for i := 0; i < n; i++ {
		_ = e.Submit(func() {})
	}
	waitCompleted(t, e, n)
	s := e.Stats()
	if s["tasks_submitted"] != n {
		t.Errorf("tasks_submitted = %d, want %d", s["tasks_submitted"], n)
	}
	if s["tasks_completed"] != n {
		t.Errorf("tasks_completed = %d, want %d", s["tasks_completed"], n)
	}
	if s["pending_tasks"] != 0 {
		t.Errorf("pending_tasks = %d, want 0", s["pending_tasks"])
	}
	if s["num_workers"] != 2 {
		t.Errorf("num_workers = %d, want 2", s["num_workers"])
	}

	dump := e.Probes().DumpState()
	if _, ok := dump["executor_stats"]; !ok {
		t.Error("executor_stats probe not registered")
	}
	depths, ok := dump["deque_depths"].(DequeDepths)
	if !ok || len(depths) != 2 {
		t.Errorf("deque_depths probe = %v", dump["deque_depths"])
	}
	for i, depth := range depths {
		if depth != 0 {
			t.Errorf("drained worker %d reports depth %d", i, depth)
		}
	}
}
