// File: pool/allocator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Heap-backed storage allocator and shared allocation accounting.

package pool

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/momentics/hioload-ring/api"
)

// allocCounters tracks allocations for any Allocator in this package.
type allocCounters struct {
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	bytesInUse atomic.Int64
}

func (c *allocCounters) recordAlloc(n int) {
	c.totalAlloc.Inc()
	c.bytesInUse.Add(int64(n))
}

func (c *allocCounters) recordFree(n int) {
	c.totalFree.Inc()
	c.bytesInUse.Sub(int64(n))
}

func (c *allocCounters) snapshot() api.AllocatorStats {
	a := c.totalAlloc.Load()
	f := c.totalFree.Load()
	return api.AllocatorStats{
		TotalAlloc: a,
		TotalFree:  f,
		InUse:      a - f,
		BytesInUse: c.bytesInUse.Load(),
	}
}

// HeapAllocator hands out Go heap slices. Free only updates accounting;
// the garbage collector reclaims the memory.
type HeapAllocator struct {
	counters allocCounters
}

// NewHeapAllocator returns a heap allocator with zeroed stats.
func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{}
}

func (h *HeapAllocator) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "allocation size must be positive").
			WithContext("size", size)
	}
	h.counters.recordAlloc(size)
	return make([]byte, size), nil
}

func (h *HeapAllocator) Free(buf []byte) error {
	h.counters.recordFree(len(buf))
	return nil
}

// Stats exposes allocation accounting.
func (h *HeapAllocator) Stats() api.AllocatorStats {
	return h.counters.snapshot()
}

var (
	defaultOnce  sync.Once
	defaultAlloc *HeapAllocator
)

// DefaultAllocator returns the process-wide heap allocator used by rings
// that are not given one explicitly.
func DefaultAllocator() *HeapAllocator {
	defaultOnce.Do(func() {
		defaultAlloc = NewHeapAllocator()
	})
	return defaultAlloc
}

var _ api.Allocator = (*HeapAllocator)(nil)
