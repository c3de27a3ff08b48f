// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for hioload-deque.
//
// Provides concurrent-safe observability primitives:
//   - Lock-free named counters with snapshot export
//   - Probe registration for on-demand state dumps
//
// The deque itself carries no instrumentation; consumers such as the
// executor feed this layer.
package control
