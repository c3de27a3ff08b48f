// File: internal/concurrency/executor.go
// Package concurrency implements a work-stealing task executor.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Executor dispatches tasks across worker goroutines. Each worker owns a
// WSDeque (it is the sole pusher/popper); idle workers steal from siblings.
// Tasks arriving from outside the pool land in a global overflow queue that
// workers drain into their own deques, keeping the owner-only contract of
// the deques intact.

package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-deque/affinity"
	"github.com/momentics/hioload-deque/api"
	"github.com/momentics/hioload-deque/control"
)

// TaskFunc is a unit of work to execute.
type TaskFunc func()

// refillBatch bounds how many overflow tasks a worker moves into its own
// deque per refill, so one worker cannot hoard the backlog.
const refillBatch = 16

// DequeDepths is the deque_depths probe result: one point-in-time length per
// worker deque, indexed by worker id.
type DequeDepths []int

// Executor manages a pool of work-stealing worker goroutines.
type Executor struct {
	deques  []*WSDeque[TaskFunc]
	workers []*worker

	overflowMu sync.Mutex
	overflow   *queue.Queue // externally synchronized FIFO

	closeCh chan struct{}
	closed  atomic.Bool
	wg      sync.WaitGroup
	pinCPU  bool

	metrics   *control.MetricsRegistry
	probes    *control.DebugProbes
	submitted *control.Counter
	completed *control.Counter
	stolen    *control.Counter
}

// NewExecutor creates an Executor with the given number of workers.
// If numWorkers <= 0, defaults to runtime.NumCPU(). With pinCPU set, each
// worker locks its OS thread and pins it to a CPU core.
func NewExecutor(numWorkers int, pinCPU bool) *Executor {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	reg := control.NewMetricsRegistry()
	e := &Executor{
		deques:    make([]*WSDeque[TaskFunc], numWorkers),
		workers:   make([]*worker, numWorkers),
		overflow:  queue.New(),
		closeCh:   make(chan struct{}),
		pinCPU:    pinCPU,
		metrics:   reg,
		probes:    control.NewDebugProbes(),
		submitted: reg.Counter("tasks_submitted"),
		completed: reg.Counter("tasks_completed"),
		stolen:    reg.Counter("tasks_stolen"),
	}
	for i := 0; i < numWorkers; i++ {
		e.deques[i] = NewWSDeque[TaskFunc](1024)
	}
	e.probes.RegisterProbe("executor_stats", func() any { return e.Stats() })
	e.probes.RegisterProbe("deque_depths", func() any {
		depths := make(DequeDepths, len(e.deques))
		for i, d := range e.deques {
			depths[i] = d.Len()
		}
		return depths
	})
	for i := 0; i < numWorkers; i++ {
		w := &worker{id: i, executor: e, deque: e.deques[i]}
		e.workers[i] = w
		e.wg.Add(1)
		go w.run()
	}
	return e
}

// Submit enqueues a task for execution, returning api.ErrExecutorClosed if
// the executor is closed. Safe from any goroutine.
func (e *Executor) Submit(task func()) error {
	if task == nil {
		return api.ErrInvalidArgument
	}
	if e.closed.Load() {
		return api.ErrExecutorClosed
	}
	e.overflowMu.Lock()
	e.overflow.Add(TaskFunc(task))
	e.overflowMu.Unlock()
	e.submitted.Inc()
	return nil
}

// NumWorkers returns the number of worker goroutines.
func (e *Executor) NumWorkers() int { return len(e.workers) }

// Stats returns basic executor metrics.
func (e *Executor) Stats() map[string]int64 {
	out := e.metrics.Snapshot()
	out["pending_tasks"] = out["tasks_submitted"] - out["tasks_completed"]
	out["num_workers"] = int64(e.NumWorkers())
	return out
}

// Metrics exposes the underlying registry.
func (e *Executor) Metrics() *control.MetricsRegistry { return e.metrics }

// Probes exposes the debug probe registry.
func (e *Executor) Probes() *control.DebugProbes { return e.probes }

// Close stops all workers after their current task and waits for them to
// exit. Tasks still queued are dropped.
func (e *Executor) Close() {
	if e.closed.CompareAndSwap(false, true) {
		close(e.closeCh)
	}
	e.wg.Wait()
}

// popOverflow removes up to max tasks from the global queue.
func (e *Executor) popOverflow(max int) []TaskFunc {
	e.overflowMu.Lock()
	defer e.overflowMu.Unlock()
	n := e.overflow.Length()
	if n == 0 {
		return nil
	}
	if n > max {
		n = max
	}
	batch := make([]TaskFunc, 0, n)
	for i := 0; i < n; i++ {
		batch = append(batch, e.overflow.Remove().(TaskFunc))
	}
	return batch
}

// worker represents a single executor goroutine. It is the owner of its
// deque: nobody else pushes or pops on it, siblings only steal.
type worker struct {
	id       int
	executor *Executor
	deque    *WSDeque[TaskFunc]
}

func (w *worker) run() {
	defer w.executor.wg.Done()
	if w.executor.pinCPU {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		// Best effort: unsupported platforms run unpinned.
		_ = affinity.SetAffinity(w.id % runtime.NumCPU())
	}
	idle := 0
	for {
		select {
		case <-w.executor.closeCh:
			return
		default:
		}
		// Own deque first: LIFO keeps the working set hot.
		if task, ok := w.deque.Pop(); ok {
			w.exec(task)
			idle = 0
			continue
		}
		// Refill from the global overflow queue.
		if batch := w.executor.popOverflow(refillBatch); len(batch) > 0 {
			for _, task := range batch {
				w.deque.Push(task)
			}
			idle = 0
			continue
		}
		// Steal from siblings, oldest task first.
		if task, ok := w.stealOne(); ok {
			w.executor.stolen.Inc()
			w.exec(task)
			idle = 0
			continue
		}
		idle++
		if idle < 64 {
			runtime.Gosched()
		} else {
			// Backoff to reduce CPU spinning.
			time.Sleep(time.Millisecond)
		}
	}
}

func (w *worker) stealOne() (TaskFunc, bool) {
	n := len(w.executor.deques)
	for i := 1; i < n; i++ {
		victim := w.executor.deques[(w.id+i)%n]
		if task, ok := victim.Steal(); ok {
			return task, true
		}
	}
	return nil, false
}

func (w *worker) exec(task TaskFunc) {
	task()
	w.executor.completed.Inc()
}

// Ensure compile-time compliance.
var _ api.Executor = (*Executor)(nil)
