// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug probes for internal inspection. Consumers register named
// probes (queue depths, worker states) and dump them all at once when
// diagnosing a stall. Probes run on the dumping goroutine, so they must be
// safe to call concurrently with the code they observe.

package control

import "sync"

// ProbeFunc produces a point-in-time view of one piece of internal state.
type ProbeFunc func() any

// DebugProbes is a registry of named probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]ProbeFunc
}

// NewDebugProbes creates an empty probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]ProbeFunc),
	}
}

// RegisterProbe inserts or replaces a named debug hook.
func (dp *DebugProbes) RegisterProbe(name string, fn ProbeFunc) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// Names returns the registered probe names.
func (dp *DebugProbes) Names() []string {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	names := make([]string, 0, len(dp.probes))
	for k := range dp.probes {
		names = append(names, k)
	}
	return names
}

// DumpState evaluates every probe and returns the combined view.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}
