// File: stream/counters.go
// Author: momentics <momentics@gmail.com>

package stream

import "go.uber.org/atomic"

// Counters is a snapshot of stream traffic.
type Counters struct {
	Written     int64
	Read        int64
	ShortWrites int64
	Backlog     int64
}

// CounterSource exposes traffic counters for observability.
type CounterSource interface {
	Counters() Counters
}

type counters struct {
	written     atomic.Int64
	read        atomic.Int64
	shortWrites atomic.Int64
}
