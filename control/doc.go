// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, runtime metrics and debug introspection for hioload-ring.
//
// Provides:
//   - Config loading from YAML or maps, with validation and ring construction
//   - Store, a reloadable config holder with change listeners
//   - Collector, a Prometheus collector over registered rings and streams
//   - DebugProbes, a named probe registry implementing api.Debug
//
// This package is cross-platform and build-tag-partitioned as needed.
package control
