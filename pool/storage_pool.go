// File: pool/storage_pool.go
// Package pool
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// StoragePool recycles ring storage of a single size class. Rings that are
// torn down and rebuilt at the same capacity reuse regions instead of
// going back to the backing allocator.

package pool

import (
	"github.com/pkg/errors"

	"github.com/momentics/hioload-ring/api"
)

const defaultPoolDepth = 64

// StoragePool is a bounded free list in front of another Allocator.
// Requests for other sizes pass straight through to the backing allocator.
type StoragePool struct {
	size     int
	backing  api.Allocator
	free     chan []byte
	counters allocCounters
	reused   allocCounters
}

// NewStoragePool creates a pool of regions of exactly size bytes holding at
// most depth idle regions. A nil backing allocator means DefaultAllocator.
func NewStoragePool(size, depth int, backing api.Allocator) *StoragePool {
	if depth <= 0 {
		depth = defaultPoolDepth
	}
	if backing == nil {
		backing = DefaultAllocator()
	}
	return &StoragePool{
		size:    size,
		backing: backing,
		free:    make(chan []byte, depth),
	}
}

// Size returns the pooled size class.
func (p *StoragePool) Size() int { return p.size }

func (p *StoragePool) Alloc(size int) ([]byte, error) {
	if size != p.size {
		return p.backing.Alloc(size)
	}
	select {
	case buf := <-p.free:
		p.reused.recordAlloc(size)
		p.counters.recordAlloc(size)
		return buf, nil
	default:
	}
	buf, err := p.backing.Alloc(size)
	if err != nil {
		return nil, errors.Wrap(err, "storage pool")
	}
	p.counters.recordAlloc(size)
	return buf, nil
}

func (p *StoragePool) Free(buf []byte) error {
	if len(buf) != p.size {
		return p.backing.Free(buf)
	}
	p.counters.recordFree(len(buf))
	select {
	case p.free <- buf:
		return nil
	default:
		return p.backing.Free(buf)
	}
}

// Idle returns the number of regions waiting for reuse.
func (p *StoragePool) Idle() int { return len(p.free) }

// Drain releases all idle regions to the backing allocator.
func (p *StoragePool) Drain() error {
	var firstErr error
	for {
		select {
		case buf := <-p.free:
			if err := p.backing.Free(buf); err != nil && firstErr == nil {
				firstErr = err
			}
		default:
			return firstErr
		}
	}
}

// Stats reports accounting for pooled-size regions.
func (p *StoragePool) Stats() api.AllocatorStats {
	return p.counters.snapshot()
}

// Reused returns how many pooled-size allocations skipped the backing allocator.
func (p *StoragePool) Reused() int64 {
	return p.reused.totalAlloc.Load()
}

var _ api.Allocator = (*StoragePool)(nil)
