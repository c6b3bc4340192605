//go:build !(linux || darwin || freebsd || netbsd || openbsd)

// File: pool/mmap_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback for platforms without mmap: storage comes from the Go heap.

package pool

import (
	"go.uber.org/zap"

	"github.com/momentics/hioload-ring/api"
)

// MmapSupported reports whether MmapAllocator maps memory on this platform.
const MmapSupported = false

// MmapAllocator degrades to heap allocation on this platform.
type MmapAllocator struct {
	heap HeapAllocator
}

// NewMmapAllocator creates the heap-backed stand-in.
func NewMmapAllocator(hugePages bool, log *zap.Logger) *MmapAllocator {
	if log != nil {
		log.Debug("mmap unavailable on this platform, using heap storage",
			zap.Bool("huge_pages", hugePages))
	}
	return &MmapAllocator{}
}

func (m *MmapAllocator) Alloc(size int) ([]byte, error) { return m.heap.Alloc(size) }

func (m *MmapAllocator) Free(buf []byte) error { return m.heap.Free(buf) }

// Stats exposes allocation accounting.
func (m *MmapAllocator) Stats() api.AllocatorStats { return m.heap.Stats() }

var _ api.Allocator = (*MmapAllocator)(nil)
