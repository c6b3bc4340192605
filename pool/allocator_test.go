package pool_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/pool"
)

func TestHeapAllocatorAccounting(t *testing.T) {
	h := pool.NewHeapAllocator()
	a, err := h.Alloc(64)
	require.NoError(t, err)
	b, err := h.Alloc(16)
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.Len(t, b, 16)

	st := h.Stats()
	assert.Equal(t, int64(2), st.TotalAlloc)
	assert.Equal(t, int64(2), st.InUse)
	assert.Equal(t, int64(80), st.BytesInUse)

	require.NoError(t, h.Free(a))
	st = h.Stats()
	assert.Equal(t, int64(1), st.TotalFree)
	assert.Equal(t, int64(1), st.InUse)
	assert.Equal(t, int64(16), st.BytesInUse)
}

func TestHeapAllocatorRejectsNonPositive(t *testing.T) {
	_, err := pool.NewHeapAllocator().Alloc(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrInvalidArgument))
}

func TestDefaultAllocatorIsShared(t *testing.T) {
	assert.Same(t, pool.DefaultAllocator(), pool.DefaultAllocator())
}

func TestMmapAllocatorRoundTrip(t *testing.T) {
	m := pool.NewMmapAllocator(false, nil)
	buf, err := m.Alloc(4096 + 17)
	require.NoError(t, err)
	require.Len(t, buf, 4096+17)

	for i := range buf {
		buf[i] = byte(i)
	}
	assert.Equal(t, byte(16), buf[4096+16])

	assert.Equal(t, int64(1), m.Stats().InUse)
	require.NoError(t, m.Free(buf))
	assert.Equal(t, int64(0), m.Stats().InUse)
	assert.Equal(t, int64(0), m.Stats().BytesInUse)
}

func TestMmapAllocatorHugePagesFallsBack(t *testing.T) {
	// Hugepages are rarely reserved on test hosts; either path must work.
	m := pool.NewMmapAllocator(true, nil)
	buf, err := m.Alloc(1000)
	require.NoError(t, err)
	require.Len(t, buf, 1000)
	buf[999] = 0xAB
	require.NoError(t, m.Free(buf))
}

func TestStoragePoolReusesRegions(t *testing.T) {
	backing := &api.MockAllocator{}
	p := pool.NewStoragePool(32, 2, backing)
	assert.Equal(t, 32, p.Size())

	a, err := p.Alloc(32)
	require.NoError(t, err)
	require.NoError(t, p.Free(a))
	assert.Equal(t, 1, p.Idle())

	b, err := p.Alloc(32)
	require.NoError(t, err)
	assert.Same(t, &a[0], &b[0], "region should be recycled")
	assert.Equal(t, 1, backing.Allocs)
	assert.Equal(t, int64(1), p.Reused())
	assert.Equal(t, int64(1), p.Stats().InUse)
}

func TestStoragePoolOverflowGoesToBacking(t *testing.T) {
	backing := &api.MockAllocator{}
	p := pool.NewStoragePool(8, 1, backing)

	a, _ := p.Alloc(8)
	b, _ := p.Alloc(8)
	require.NoError(t, p.Free(a))
	require.NoError(t, p.Free(b))
	assert.Equal(t, 1, p.Idle())
	assert.Equal(t, 1, backing.Frees)

	require.NoError(t, p.Drain())
	assert.Equal(t, 0, p.Idle())
	assert.Equal(t, 2, backing.Frees)
}

func TestStoragePoolPassesThroughOtherSizes(t *testing.T) {
	backing := &api.MockAllocator{}
	p := pool.NewStoragePool(8, 4, backing)

	buf, err := p.Alloc(100)
	require.NoError(t, err)
	require.NoError(t, p.Free(buf))
	assert.Equal(t, 0, p.Idle())
	assert.Equal(t, 1, backing.Frees)
	assert.Zero(t, p.Stats().TotalAlloc)
}

func TestStoragePoolWrapsBackingFailure(t *testing.T) {
	boom := errors.New("out of memory")
	p := pool.NewStoragePool(8, 4, &api.MockAllocator{
		AllocFunc: func(int) ([]byte, error) { return nil, boom },
	})
	_, err := p.Alloc(8)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "storage pool")
}
