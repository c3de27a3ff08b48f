// File: internal/concurrency/wsdeque.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Chase-Lev work-stealing deque. One owner goroutine pushes and pops at the
// bottom in LIFO order; any number of stealers claim from the top in FIFO
// order via CAS. The buffer grows on demand; indices are monotonic logical
// counters, so physical wrap never aliases a logical position.

package concurrency

import "sync/atomic"

// DefaultDequeCapacity is the slot count a fresh deque starts with.
const DefaultDequeCapacity = 8

// WSDeque is a growable lock-free work-stealing deque.
//
// The live range is [top, bottom). Only the owner writes bottom and replaces
// the buffer; top advances only through a successful CAS, one position per
// winner. Go's sync/atomic is sequentially consistent, which covers every
// acquire/release edge the protocol needs: in particular the element write
// in Push happens-before the bottom publication, so a stealer that observes
// the new bottom also observes the element.
type WSDeque[T any] struct {
	_      [64]byte // padding keeps top, bottom and buf on separate cache lines
	top    atomic.Int64
	_      [64]byte
	bottom atomic.Int64
	_      [64]byte
	buf    atomic.Pointer[ring[T]]
}

// NewWSDeque allocates a deque whose initial capacity is the smallest power
// of two >= capacity. Non-positive capacity selects the default.
func NewWSDeque[T any](capacity int) *WSDeque[T] {
	if capacity <= 0 {
		capacity = DefaultDequeCapacity
	}
	size := int64(1)
	for size < int64(capacity) {
		size <<= 1
	}
	d := &WSDeque[T]{}
	d.buf.Store(newRing[T](size))
	return d
}

// Push appends v at the bottom. Owner only. Never fails: a full buffer is
// replaced by a grown copy before the write, so stealers either keep reading
// the old buffer (still valid, never mutated again) or observe the fully
// populated new one.
func (d *WSDeque[T]) Push(v T) {
	b := d.bottom.Load()
	t := d.top.Load()
	a := d.buf.Load()
	if b-t >= a.cap() {
		a = a.grow(t, b)
		d.buf.Store(a)
	}
	a.put(b, v)
	d.bottom.Store(b + 1)
}

// Pop removes the most recently pushed element. Owner only.
//
// The decrement of bottom is speculative: it is published first, then the
// range is re-checked against top. When the speculation claimed the last
// element, the owner arbitrates against stealers with the same CAS they use.
// On every path bottom ends up >= top before returning.
func (d *WSDeque[T]) Pop() (v T, ok bool) {
	b := d.bottom.Load() - 1
	a := d.buf.Load()
	d.bottom.Store(b)
	t := d.top.Load()

	if t > b {
		// Nothing was there; undo the speculative claim.
		d.bottom.Store(b + 1)
		return v, false
	}

	out := a.get(b)
	if t == b {
		// Last element: a stealer may be racing for the same slot.
		won := d.top.CompareAndSwap(t, t+1)
		d.bottom.Store(b + 1)
		if !won {
			var zero T
			return zero, false
		}
		return out, true
	}
	return out, true
}

// Steal claims the oldest element. Safe to call from any goroutine.
//
// The slot is read before the CAS: reading a slot inside an observed
// [top, bottom) is always safe, and the CAS decides whether the read value
// may be acted on. A failed CAS means another stealer or a final Pop claimed
// the position; the whole operation restarts from fresh index reads rather
// than reuse anything stale.
func (d *WSDeque[T]) Steal() (v T, ok bool) {
	for {
		t := d.top.Load()
		b := d.bottom.Load()
		if t >= b {
			return v, false
		}
		a := d.buf.Load()
		out := a.get(t)
		if d.top.CompareAndSwap(t, t+1) {
			return out, true
		}
	}
}

// Len reports a point-in-time element count. Stale as soon as it returns;
// useful for sizing decisions, not for emptiness arbitration.
func (d *WSDeque[T]) Len() int {
	b := d.bottom.Load()
	t := d.top.Load()
	if b < t {
		return 0
	}
	return int(b - t)
}

// Cap returns the current buffer capacity.
func (d *WSDeque[T]) Cap() int {
	return int(d.buf.Load().cap())
}
