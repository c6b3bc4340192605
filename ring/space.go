// File: ring/space.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Space accounting. All queries are pure and may be called from either side.

package ring

import "github.com/momentics/hioload-ring/api"

// FreeSpace returns how many bytes can be written before the ring is full.
func (r *RingBuffer) FreeSpace() int {
	h, t := r.cursors()
	return r.freeSpace(h, t)
}

// FullSpace returns how many bytes are buffered.
func (r *RingBuffer) FullSpace() int {
	h, t := r.cursors()
	return r.fullSpace(h, t)
}

// FreeLinearSpace returns the longest free run starting at head that does
// not cross the end of storage: the most a single write window can grant.
//
// A fresh ring (head == tail == 0) reports Cap()-2, one less than
// FreeSpace. That slot is kept back on purpose.
func (r *RingBuffer) FreeLinearSpace() int {
	h, t := r.cursors()
	return r.freeLinearSpace(h, t)
}

// FullLinearSpace returns the longest buffered run starting at tail that
// does not cross the end of storage.
func (r *RingBuffer) FullLinearSpace() int {
	h, t := r.cursors()
	return r.fullLinearSpace(h, t)
}

// Stats returns a consistent snapshot computed from one load of each cursor.
func (r *RingBuffer) Stats() api.RingStats {
	h, t := r.cursors()
	return api.RingStats{
		Capacity:        r.capacity,
		Head:            h,
		Tail:            t,
		FreeSpace:       r.freeSpace(h, t),
		FullSpace:       r.fullSpace(h, t),
		FreeLinearSpace: r.freeLinearSpace(h, t),
		FullLinearSpace: r.fullLinearSpace(h, t),
		Owned:           r.ownership == Owned,
	}
}

func (r *RingBuffer) freeSpace(h, t int) int {
	return r.wrap.Wrap(t + r.capacity - h - 1)
}

func (r *RingBuffer) fullSpace(h, t int) int {
	return r.capacity - 1 - r.freeSpace(h, t)
}

func (r *RingBuffer) freeLinearSpace(h, t int) int {
	switch {
	case h == 0 && t == 0:
		return max(r.capacity-2, 0)
	case h >= t && t == 0:
		// Running to the end would land head on tail and read as empty.
		return r.capacity - h - 1
	case h >= t:
		return r.capacity - h
	default:
		return t - h - 1
	}
}

func (r *RingBuffer) fullLinearSpace(h, t int) int {
	if h >= t {
		return h - t
	}
	return r.capacity - t
}
