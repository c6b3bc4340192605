// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer construction, teardown and cursor state.

package ring

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/ringmath"
	"github.com/momentics/hioload-ring/pool"
)

// Ownership tells teardown whether storage goes back to an allocator.
type Ownership int

const (
	// Borrowed storage belongs to the caller and is never released.
	Borrowed Ownership = iota
	// Owned storage came from an allocator and is released on Close.
	Owned
)

func (o Ownership) String() string {
	switch o {
	case Borrowed:
		return "borrowed"
	case Owned:
		return "owned"
	default:
		return "unknown"
	}
}

// RingBuffer is a single-producer/single-consumer circular byte buffer.
type RingBuffer struct {
	storage   []byte // exactly capacity bytes
	region    []byte // slice handed out by alloc, kept for Free
	alloc     api.Allocator
	wrap      ringmath.Wrapper
	capacity  int
	ownership Ownership
	closed    bool
	log       *zap.Logger

	head atomic.Int64
	_    [64]byte // Padding for hot/cold separation
	tail atomic.Int64
	_    [64]byte // Padding to separate tail from other data
}

// New builds a ring of requestedCapacity bytes. Unless WithStorage supplies
// caller memory, storage is allocated from the configured allocator and
// owned by the ring.
func New(requestedCapacity int, opts ...Option) (*RingBuffer, error) {
	o := applyOptions(opts...)

	if requestedCapacity <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "ring capacity must be positive").
			WithContext("capacity", requestedCapacity)
	}

	capacity := requestedCapacity
	if o.powerOfTwo {
		capacity = ringmath.RoundDownPow2(requestedCapacity)
	}

	r := &RingBuffer{
		wrap:     ringmath.NewWrapper(capacity),
		capacity: capacity,
		log:      o.log,
	}

	if o.storage != nil {
		if len(o.storage) < requestedCapacity {
			return nil, api.NewError(api.ErrCodeInvalidArgument, "storage shorter than requested capacity").
				WithContext("capacity", requestedCapacity).
				WithContext("storage", len(o.storage))
		}
		r.storage = o.storage[:capacity:capacity]
		r.ownership = Borrowed
	} else {
		alloc := o.alloc
		if alloc == nil {
			alloc = pool.DefaultAllocator()
		}
		region, err := alloc.Alloc(capacity)
		if err != nil {
			return nil, errors.Wrap(
				api.NewError(api.ErrCodeResourceExhausted, "allocator failed").
					WithCause(err).
					WithContext("capacity", capacity),
				"allocate ring storage")
		}
		if len(region) < capacity {
			_ = alloc.Free(region)
			return nil, api.NewError(api.ErrCodeResourceExhausted, "allocator returned short region").
				WithContext("capacity", capacity).
				WithContext("region", len(region))
		}
		r.region = region
		r.storage = region[:capacity:capacity]
		r.alloc = alloc
		r.ownership = Owned
	}

	r.log.Debug("ring created",
		zap.Int("requested", requestedCapacity),
		zap.Int("capacity", capacity),
		zap.Bool("masked", r.wrap.Masked()),
		zap.Stringer("storage", r.ownership))
	return r, nil
}

// Close releases owned storage. Borrowed storage is left untouched.
// The ring must not be used afterwards; a second Close reports
// api.ErrRingClosed instead of releasing twice.
func (r *RingBuffer) Close() error {
	if r.closed {
		return api.NewError(api.ErrCodeClosed, "ring already closed")
	}
	r.closed = true

	var err error
	if r.ownership == Owned {
		if ferr := r.alloc.Free(r.region); ferr != nil {
			err = errors.Wrap(ferr, "release ring storage")
		}
		r.region = nil
		r.alloc = nil
	}
	r.storage = nil
	r.log.Debug("ring closed", zap.Int("capacity", r.capacity), zap.Error(err))
	return err
}

// Cap returns the effective capacity. At most Cap()-1 bytes are buffered.
func (r *RingBuffer) Cap() int { return r.capacity }

// Ownership reports who owns the storage.
func (r *RingBuffer) Ownership() Ownership { return r.ownership }

// Owned is shorthand for Ownership() == Owned.
func (r *RingBuffer) Owned() bool { return r.ownership == Owned }

// Masked reports whether cursors wrap with a bit-mask rather than modulo.
func (r *RingBuffer) Masked() bool { return r.wrap.Masked() }

// Reset empties the ring by moving both cursors to zero. Not safe while
// either side is active.
func (r *RingBuffer) Reset() {
	r.head.Store(0)
	r.tail.Store(0)
}

func (r *RingBuffer) cursors() (head, tail int) {
	return int(r.head.Load()), int(r.tail.Load())
}

var _ api.ByteRing = (*RingBuffer)(nil)
