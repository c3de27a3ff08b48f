// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// debug_test.go — Probe registry tests.
package control

import (
	"sort"
	"testing"
)

func TestDebugProbes(t *testing.T) {
	dp := NewDebugProbes()
	depth := 3
	dp.RegisterProbe("depth", func() any { return depth })
	dp.RegisterProbe("state", func() any { return "idle" })

	names := dp.Names()
	sort.Strings(names)
	if len(names) != 2 || names[0] != "depth" || names[1] != "state" {
		t.Fatalf("Names = %v", names)
	}

	dump := dp.DumpState()
	if dump["depth"] != 3 || dump["state"] != "idle" {
		t.Errorf("DumpState = %v", dump)
	}

	// Probes are live views, not snapshots taken at registration.
	depth = 7
	if dump = dp.DumpState(); dump["depth"] != 7 {
		t.Errorf("probe not re-evaluated: depth = %v", dump["depth"])
	}

	// Re-registration replaces.
	dp.RegisterProbe("state", func() any { return "busy" })
	if dump = dp.DumpState(); dump["state"] != "busy" {
		t.Errorf("replaced probe not used: state = %v", dump["state"])
	}
}
