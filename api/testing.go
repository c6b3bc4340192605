// Package api
// Author: momentics
//
// Mock/testing utilities for core contracts.

package api

// MockAllocator is a test-friendly Allocator whose behaviour is set per field.
// A nil AllocFunc allocates from the Go heap; a nil FreeFunc succeeds.
type MockAllocator struct {
	AllocFunc func(size int) ([]byte, error)
	FreeFunc  func(buf []byte) error

	Allocs int
	Frees  int
}

func (m *MockAllocator) Alloc(size int) ([]byte, error) {
	m.Allocs++
	if m.AllocFunc == nil {
		return make([]byte, size), nil
	}
	return m.AllocFunc(size)
}

func (m *MockAllocator) Free(buf []byte) error {
	m.Frees++
	if m.FreeFunc == nil {
		return nil
	}
	return m.FreeFunc(buf)
}

var _ Allocator = (*MockAllocator)(nil)
