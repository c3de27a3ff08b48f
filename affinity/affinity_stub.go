//go:build !linux && !windows
// +build !linux,!windows

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback for platforms without a thread-affinity syscall. Callers such as
// the executor treat the error as "run unpinned".

package affinity

import (
	"fmt"

	"github.com/momentics/hioload-deque/api"
)

// setAffinityPlatform reports that pinning is unavailable on this platform.
func setAffinityPlatform(cpuID int) error {
	return fmt.Errorf("affinity: pinning cpu %d: %w", cpuID, api.ErrNotSupported)
}
