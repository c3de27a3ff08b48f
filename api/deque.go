// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Owner-side and stealer-side contracts for the work-stealing deque.
// The split is deliberate: an Owner handle must stay on a single goroutine,
// while a Stealer handle may be copied to any number of goroutines.

package api

// Owner is the single-goroutine end of a work-stealing deque. Exactly one
// goroutine may call its methods; it pushes and pops at the bottom in LIFO
// order.
type Owner[T any] interface {
	// Push appends v at the bottom. Never fails; a full buffer grows first.
	Push(v T)

	// Pop removes the most recently pushed element, ErrEmpty if none.
	Pop() (T, error)

	// PopOrNil removes the most recently pushed element, nil if none.
	PopOrNil() *T

	// TryPop removes the most recently pushed element, ok==false if none.
	TryPop() (T, bool)

	// Stealer returns a shareable handle over the same deque.
	Stealer() Stealer[T]

	// Len returns a point-in-time element count.
	Len() int

	// Cap returns current buffer capacity.
	Cap() int
}

// Stealer is the shareable end of a work-stealing deque. Any number of
// goroutines may call its methods concurrently, with each other and with the
// owner; it removes from the top in FIFO order.
type Stealer[T any] interface {
	// Steal claims the oldest element, ErrEmpty if none.
	Steal() (T, error)

	// StealOrNil claims the oldest element, nil if none.
	StealOrNil() *T

	// TrySteal claims the oldest element, ok==false if none.
	TrySteal() (T, bool)
}
