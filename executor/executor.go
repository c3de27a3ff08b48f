// File: executor/executor.go
// Package executor exposes the work-stealing task executor.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package executor

import (
	"github.com/momentics/hioload-deque/api"
	"github.com/momentics/hioload-deque/internal/concurrency"
)

// New returns an Executor with numWorkers workers, each owning a
// work-stealing deque. With pinCPU set, worker threads are pinned to CPU
// cores where the platform supports it.
func New(numWorkers int, pinCPU bool) api.Executor {
	return concurrency.NewExecutor(numWorkers, pinCPU)
}
