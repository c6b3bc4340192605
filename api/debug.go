// Package api
// Author: momentics
//
// Live introspection of ring accounting for production workloads.

package api

// Debug exposes runtime introspection of registered rings.
type Debug interface {
	// DumpState emits a snapshot of all probes for diagnostics.
	DumpState() map[string]any

	// RegisterProbe dynamically registers a new debug probe.
	RegisterProbe(name string, fn func() any)

	// WatchRing registers the standard accounting probes for a ring.
	WatchRing(name string, src StatsSource)
}
