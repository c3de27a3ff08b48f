// File: deque/stealer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package deque

import (
	"github.com/momentics/hioload-deque/api"
	"github.com/momentics/hioload-deque/internal/concurrency"
)

// Stealer[T] is the shareable handle: any number of goroutines may steal
// through it concurrently, with each other and with the owner. It exposes
// only the steal family, so handing one out can never hand out owner rights.
type Stealer[T any] struct {
	d *concurrency.WSDeque[T]
}

// Steal claims the oldest element, api.ErrEmpty if none.
func (s *Stealer[T]) Steal() (T, error) {
	v, ok := s.d.Steal()
	if !ok {
		var zero T
		return zero, api.ErrEmpty
	}
	return v, nil
}

// StealOrNil claims the oldest element, nil if none.
func (s *Stealer[T]) StealOrNil() *T {
	if v, ok := s.d.Steal(); ok {
		return &v
	}
	return nil
}

// TrySteal claims the oldest element, ok==false if none.
func (s *Stealer[T]) TrySteal() (T, bool) { return s.d.Steal() }

// Ensure compile-time compliance.
var _ api.Stealer[any] = (*Stealer[any])(nil)
