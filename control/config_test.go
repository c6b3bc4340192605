// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package control

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/pool"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	n, err := cfg.Ring.CapacityBytes()
	require.NoError(t, err)
	assert.Equal(t, 64<<10, n)
}

func TestLoadYAML(t *testing.T) {
	cfg, err := LoadYAML([]byte(`
ring:
  capacity: 1MiB
  power_of_two: false
  allocator: pooled
  pool_depth: 4
`))
	require.NoError(t, err)
	assert.Equal(t, "1MiB", cfg.Ring.Capacity)
	assert.False(t, cfg.Ring.PowerOfTwo)
	assert.Equal(t, AllocatorPooled, cfg.Ring.Allocator)
	assert.Equal(t, 4, cfg.Ring.PoolDepth)
	assert.False(t, cfg.Ring.HugePages)
}

func TestLoadYAMLKeepsDefaults(t *testing.T) {
	cfg, err := LoadYAML([]byte("ring:\n  capacity: 4096\n"))
	require.NoError(t, err)
	n, err := cfg.Ring.CapacityBytes()
	require.NoError(t, err)
	assert.Equal(t, 4096, n)
	assert.True(t, cfg.Ring.PowerOfTwo)
	assert.Equal(t, AllocatorHeap, cfg.Ring.Allocator)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.yml")
	require.NoError(t, os.WriteFile(path, []byte("ring:\n  capacity: 8KiB\n  allocator: mmap\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, AllocatorMmap, cfg.Ring.Allocator)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]any{
		"ring": map[string]any{"capacity": "2KiB", "allocator": "mmap"},
	})
	require.NoError(t, err)
	n, err := cfg.Ring.CapacityBytes()
	require.NoError(t, err)
	assert.Equal(t, 2048, n)
	assert.Equal(t, AllocatorMmap, cfg.Ring.Allocator)
}

func TestValidateAggregatesProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ring.Capacity = "lots"
	cfg.Ring.Allocator = "tape"
	cfg.Ring.PoolDepth = -1

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "3 errors occurred")
	assert.Contains(t, msg, "ring.capacity")
	assert.Contains(t, msg, "ring.allocator")
	assert.Contains(t, msg, "ring.pool_depth")
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero capacity", func(c *Config) { c.Ring.Capacity = "0" }, "out of range"},
		{"empty capacity", func(c *Config) { c.Ring.Capacity = "" }, "ring.capacity"},
		{"hugepages on heap", func(c *Config) { c.Ring.HugePages = true }, "ring.hugepages"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadYAMLInvalid(t *testing.T) {
	_, err := LoadYAML([]byte("ring:\n  allocator: tape\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ring.allocator")
}

func TestNewRingFromConfig(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantCap   int
		wantAlloc any
	}{
		{
			name:    "heap rounded",
			cfg:     Config{Ring: RingConfig{Capacity: "19", PowerOfTwo: true, Allocator: AllocatorHeap}},
			wantCap: 16, wantAlloc: &pool.HeapAllocator{},
		},
		{
			name:    "heap exact",
			cfg:     Config{Ring: RingConfig{Capacity: "19", Allocator: AllocatorHeap}},
			wantCap: 19, wantAlloc: &pool.HeapAllocator{},
		},
		{
			name:    "mmap",
			cfg:     Config{Ring: RingConfig{Capacity: "4KiB", Allocator: AllocatorMmap}},
			wantCap: 4096, wantAlloc: &pool.MmapAllocator{},
		},
		{
			name:    "pooled",
			cfg:     Config{Ring: RingConfig{Capacity: "5000", PowerOfTwo: true, Allocator: AllocatorPooled, PoolDepth: 2}},
			wantCap: 4096, wantAlloc: &pool.StoragePool{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc, err := tt.cfg.NewAllocator(nil)
			require.NoError(t, err)
			assert.IsType(t, tt.wantAlloc, alloc)

			r, err := tt.cfg.NewRing(nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCap, r.Cap())
			assert.True(t, r.Owned())
			assert.Equal(t, 5, r.WriteBuffer([]byte("hello")))
			require.NoError(t, r.Close())
		})
	}
}

func TestPooledAllocatorMatchesRingSize(t *testing.T) {
	cfg := Config{Ring: RingConfig{Capacity: "5000", PowerOfTwo: true, Allocator: AllocatorPooled, PoolDepth: 2}}
	alloc, err := cfg.NewAllocator(nil)
	require.NoError(t, err)
	sp := alloc.(*pool.StoragePool)
	assert.Equal(t, 4096, sp.Size())
}

func TestNewRingInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ring.Allocator = "tape"
	r, err := cfg.NewRing(nil)
	assert.Error(t, err)
	assert.Nil(t, r)
}
