// File: deque/deque.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Owner handle over the internal Chase-Lev deque, with the three
// empty-reporting styles: error, nil pointer, comma-ok.

package deque

import (
	"github.com/momentics/hioload-deque/api"
	"github.com/momentics/hioload-deque/internal/concurrency"
)

// Deque[T] is the owner handle. All methods carry the owner contract:
// exactly one goroutine may use a given Deque. Stealer handles obtained from
// it are free of that restriction.
type Deque[T any] struct {
	d *concurrency.WSDeque[T]
}

// New creates an empty deque with a small default capacity.
func New[T any]() *Deque[T] {
	return &Deque[T]{d: concurrency.NewWSDeque[T](concurrency.DefaultDequeCapacity)}
}

// NewWithCapacity creates an empty deque sized for at least capacity
// elements (rounded up to a power of two). Zero selects the default
// capacity; negative capacity is an invalid argument.
func NewWithCapacity[T any](capacity int) (*Deque[T], error) {
	if capacity < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "deque capacity must be non-negative").
			WithContext("capacity", capacity)
	}
	return &Deque[T]{d: concurrency.NewWSDeque[T](capacity)}, nil
}

// OfSlice creates a deque pre-populated with items, equivalent to pushing
// them in order on a fresh deque. Construction-time only: the deque must not
// be visible to any other goroutine yet. The first item is stolen first and
// popped last.
func OfSlice[T any](items []T) *Deque[T] {
	q := &Deque[T]{d: concurrency.NewWSDeque[T](len(items))}
	for _, v := range items {
		q.Push(v)
	}
	return q
}

// Push appends v at the bottom. Never fails; grows instead of overflowing.
func (q *Deque[T]) Push(v T) { q.d.Push(v) }

// Pop removes the most recently pushed element, api.ErrEmpty if none.
func (q *Deque[T]) Pop() (T, error) {
	v, ok := q.d.Pop()
	if !ok {
		var zero T
		return zero, api.ErrEmpty
	}
	return v, nil
}

// PopOrNil removes the most recently pushed element, nil if none.
func (q *Deque[T]) PopOrNil() *T {
	if v, ok := q.d.Pop(); ok {
		return &v
	}
	return nil
}

// TryPop removes the most recently pushed element, ok==false if none.
func (q *Deque[T]) TryPop() (T, bool) { return q.d.Pop() }

// Stealer returns a shareable steal-only handle over the same deque.
func (q *Deque[T]) Stealer() api.Stealer[T] { return &Stealer[T]{d: q.d} }

// Len returns a point-in-time element count.
func (q *Deque[T]) Len() int { return q.d.Len() }

// Cap returns the current buffer capacity.
func (q *Deque[T]) Cap() int { return q.d.Cap() }

// Ensure compile-time compliance.
var _ api.Owner[any] = (*Deque[any])(nil)
