// File: ring/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"go.uber.org/zap"

	"github.com/momentics/hioload-ring/api"
)

type options struct {
	storage    []byte
	powerOfTwo bool
	alloc      api.Allocator
	log        *zap.Logger
}

// Option customizes ring construction.
type Option func(*options)

// WithStorage makes the ring borrow buf instead of allocating. buf must be
// at least the requested capacity and stay valid, and unwritten by anyone
// else, for the ring's lifetime.
func WithStorage(buf []byte) Option {
	return func(o *options) {
		o.storage = buf
	}
}

// WithPowerOfTwo rounds the capacity down to a power of two so cursors wrap
// with a mask.
func WithPowerOfTwo(enabled bool) Option {
	return func(o *options) {
		o.powerOfTwo = enabled
	}
}

// WithAllocator sets the allocator for owned storage.
func WithAllocator(a api.Allocator) Option {
	return func(o *options) {
		o.alloc = a
	}
}

// WithLogger attaches a logger for lifecycle events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func applyOptions(opts ...Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
