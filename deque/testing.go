// File: deque/testing.go
// Author: momentics
// License: Apache-2.0
//
// White-box verification hooks. Not part of the concurrency contract.

package deque

import "github.com/momentics/hioload-deque/internal/concurrency"

// BlitCircularly copies n elements from src starting at srcPos into dst
// starting at dstPos, wrapping both positions modulo the slice lengths.
// This is the copy primitive the growth path uses, exported so test suites
// can exercise the wrap-around cases in isolation from the atomics.
func BlitCircularly[T any](src []T, srcPos int, dst []T, dstPos int, n int) {
	concurrency.BlitCircularly(src, srcPos, dst, dstPos, n)
}
