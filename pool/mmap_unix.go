//go:build linux || darwin || freebsd || netbsd || openbsd

// File: pool/mmap_unix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Anonymous private mappings as ring storage. Regions live outside the Go
// heap, so device and syscall paths can keep them pinned for the ring's life.

package pool

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-ring/api"
)

// MmapSupported reports whether MmapAllocator maps memory on this platform.
const MmapSupported = true

// MmapAllocator maps storage with mmap(2) and unmaps it on Free.
type MmapAllocator struct {
	hugePages bool
	log       *zap.Logger
	counters  allocCounters
}

// NewMmapAllocator creates an mmap allocator. With hugePages set, each
// region is first requested with MAP_HUGETLB and falls back to normal pages.
func NewMmapAllocator(hugePages bool, log *zap.Logger) *MmapAllocator {
	if log == nil {
		log = zap.NewNop()
	}
	return &MmapAllocator{hugePages: hugePages, log: log}
}

func (m *MmapAllocator) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "allocation size must be positive").
			WithContext("size", size)
	}
	const prot = unix.PROT_READ | unix.PROT_WRITE
	const flags = unix.MAP_ANON | unix.MAP_PRIVATE

	if m.hugePages && hugePageFlag != 0 {
		length := roundUp(size, hugePageSize)
		data, err := unix.Mmap(-1, 0, length, prot, flags|hugePageFlag)
		if err == nil {
			m.counters.recordAlloc(size)
			return data[:size], nil
		}
		m.log.Warn("hugepage mapping failed, falling back to regular pages",
			zap.Int("size", size), zap.Error(err))
	}

	data, err := unix.Mmap(-1, 0, size, prot, flags)
	if err != nil {
		return nil, errors.Wrapf(err, "mmap %d bytes", size)
	}
	m.counters.recordAlloc(size)
	return data, nil
}

func (m *MmapAllocator) Free(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	// Munmap needs the full mapping, which Alloc may have cut down to size.
	full := buf[:cap(buf)]
	if err := unix.Munmap(full); err != nil {
		return errors.Wrap(err, "munmap ring storage")
	}
	m.counters.recordFree(len(buf))
	return nil
}

// Stats exposes allocation accounting.
func (m *MmapAllocator) Stats() api.AllocatorStats {
	return m.counters.snapshot()
}

func roundUp(n, to int) int {
	return ((n + to - 1) / to) * to
}

var _ api.Allocator = (*MmapAllocator)(nil)
