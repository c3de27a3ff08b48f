// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free concurrency primitives for hioload-deque: the circular buffer,
// the Chase-Lev work-stealing deque built on it, and a work-stealing task
// executor that drives one deque per worker.
//
// Nothing in this package blocks. Contention is resolved by compare-and-swap
// retry; some contender always makes progress.
package concurrency
