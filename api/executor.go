// Package api
// Author: momentics
// License: Apache-2.0
//
// Executor contract for parallel task dispatch over work-stealing deques.

package api

// Executor abstracts parallel task execution.
type Executor interface {
	// Submit schedules task for execution.
	Submit(task func()) error

	// NumWorkers returns current number of active worker routines.
	NumWorkers() int

	// Stats returns a snapshot of executor counters.
	Stats() map[string]int64

	// Close stops all workers after their current task. Tasks still queued
	// are dropped.
	Close()
}
