// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Defines the storage allocation contract used by rings that own their memory.

package api

// Allocator supplies and reclaims backing storage for byte rings.
type Allocator interface {
	// Alloc returns a region of exactly size bytes. Contents are arbitrary.
	Alloc(size int) ([]byte, error)

	// Free returns a region obtained from Alloc. It is called once per region.
	Free(buf []byte) error
}

// AllocatorStats aggregates allocation accounting.
type AllocatorStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
	BytesInUse int64
}

// AllocatorFunc adapts a pair of functions to Allocator.
type AllocatorFunc struct {
	AllocFn func(size int) ([]byte, error)
	FreeFn  func(buf []byte) error
}

func (f AllocatorFunc) Alloc(size int) ([]byte, error) { return f.AllocFn(size) }

func (f AllocatorFunc) Free(buf []byte) error {
	if f.FreeFn == nil {
		return nil
	}
	return f.FreeFn(buf)
}
