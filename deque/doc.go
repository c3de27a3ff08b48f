// Package deque
// Author: momentics <momentics@gmail.com>
//
// Public surface of hioload-deque: a lock-free, growable work-stealing
// deque. Deque[T] is the owner handle (single goroutine, LIFO push/pop at
// the bottom); Stealer[T] is the shareable handle (any number of goroutines,
// FIFO steal from the top). Throughput-oriented: neither end gets fairness
// or bounded tail latency.
// See the api package for the contracts and wsdeque.go in
// internal/concurrency for the index protocol.
package deque
