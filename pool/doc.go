// Package pool
// Author: momentics <momentics@gmail.com>
//
// Storage allocators for hioload-ring. A ring that is not handed caller
// storage asks an api.Allocator for its region and returns it on Close.
//
//   - HeapAllocator: Go heap slices (the default).
//   - MmapAllocator: anonymous private mappings, optionally hugepage backed.
//   - StoragePool: bounded free list that recycles one size class.
//
// See allocator.go, mmap_unix.go, storage_pool.go for implementation details.
package pool
