// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// live in separate files (affinity_linux.go, affinity_windows.go, etc.)
// guarded by build tags. Callers that want the pin to stick must hold
// runtime.LockOSThread for the lifetime of the pinned work.

package affinity

// SetAffinity pins the current OS thread to a given logical CPU/core on
// supported platforms. On unsupported platforms returns an error.
func SetAffinity(cpuID int) error {
	return setAffinityPlatform(cpuID)
}
