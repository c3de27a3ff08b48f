// File: internal/concurrency/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity circular buffer addressed by logical index. Pure storage:
// every ordering guarantee is imposed by the deque protocol in wsdeque.go.

package concurrency

// ring maps monotonic logical indices onto a power-of-two slot array.
type ring[T any] struct {
	mask  int64
	slots []T
}

// newRing allocates a ring; capacity must be a power of two.
func newRing[T any](capacity int64) *ring[T] {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		panic("ring capacity must be a power of two")
	}
	return &ring[T]{
		mask:  capacity - 1,
		slots: make([]T, capacity),
	}
}

func (r *ring[T]) cap() int64 { return int64(len(r.slots)) }

// get returns the element at logical index i.
func (r *ring[T]) get(i int64) T { return r.slots[i&r.mask] }

// put stores v at logical index i.
func (r *ring[T]) put(i int64, v T) { r.slots[i&r.mask] = v }

// grow allocates a ring of double capacity and copies the live range
// [top, bottom) into it so that logical indices keep resolving to the same
// elements after the swap. The receiver is left untouched: a stealer that
// captured it may still read from it.
func (r *ring[T]) grow(top, bottom int64) *ring[T] {
	next := newRing[T](r.cap() * 2)
	BlitCircularly(r.slots, int(top&r.mask), next.slots, int(top&next.mask), int(bottom-top))
	return next
}

// BlitCircularly copies n elements from src starting at srcPos into dst
// starting at dstPos, wrapping both positions modulo the respective slice
// lengths. Runs segment-wise, so a blit costs at most four copy calls.
func BlitCircularly[T any](src []T, srcPos int, dst []T, dstPos int, n int) {
	if n < 0 || n > len(src) || n > len(dst) {
		panic("blit length out of range")
	}
	if srcPos < 0 || dstPos < 0 {
		panic("blit position out of range")
	}
	for n > 0 {
		s := srcPos % len(src)
		d := dstPos % len(dst)
		run := n
		if rem := len(src) - s; rem < run {
			run = rem
		}
		if rem := len(dst) - d; rem < run {
			run = rem
		}
		copy(dst[d:d+run], src[s:s+run])
		srcPos += run
		dstPos += run
		n -= run
	}
}
