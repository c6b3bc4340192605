package api_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
)

func TestErrorMatchesSentinel(t *testing.T) {
	err := api.NewError(api.ErrCodeInvalidArgument, "capacity must be positive").
		WithContext("capacity", 0)

	assert.True(t, errors.Is(err, api.ErrInvalidArgument))
	assert.False(t, errors.Is(err, api.ErrResourceExhausted))
	assert.Contains(t, err.Error(), "capacity must be positive")
	assert.Contains(t, err.Error(), "capacity:0")
}

func TestErrorSurvivesWrapping(t *testing.T) {
	base := api.NewError(api.ErrCodeResourceExhausted, "allocation failed")
	wrapped := pkgerrors.Wrap(base, "new ring")

	assert.True(t, errors.Is(wrapped, api.ErrResourceExhausted))

	var apiErr *api.Error
	require.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, api.ErrCodeResourceExhausted, apiErr.Code)
}

func TestErrorKeepsCause(t *testing.T) {
	root := errors.New("mmap: cannot allocate memory")
	err := pkgerrors.Wrap(
		api.NewError(api.ErrCodeResourceExhausted, "allocator failed").WithCause(root),
		"allocate ring storage")

	assert.True(t, errors.Is(err, root))
	assert.True(t, errors.Is(err, api.ErrResourceExhausted))
	assert.Equal(t, "allocate ring storage: allocator failed: mmap: cannot allocate memory", err.Error())

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Same(t, root, apiErr.Unwrap())
}

func TestErrorWithoutContext(t *testing.T) {
	err := &api.Error{Code: api.ErrCodeInternal, Message: "boom"}
	assert.Equal(t, "boom", err.Error())
	assert.False(t, errors.Is(err, api.ErrInvalidArgument))
}

func TestRingStatsUtilization(t *testing.T) {
	assert.Zero(t, api.RingStats{Capacity: 1}.Utilization())
	assert.InDelta(t, 0.5, api.RingStats{Capacity: 9, FullSpace: 4}.Utilization(), 1e-9)
	assert.InDelta(t, 1.0, api.RingStats{Capacity: 16, FullSpace: 15}.Utilization(), 1e-9)
}

func TestMockAllocatorCounts(t *testing.T) {
	m := &api.MockAllocator{}
	buf, err := m.Alloc(32)
	require.NoError(t, err)
	assert.Len(t, buf, 32)
	require.NoError(t, m.Free(buf))
	assert.Equal(t, 1, m.Allocs)
	assert.Equal(t, 1, m.Frees)
}

func TestAllocatorFunc(t *testing.T) {
	var freed int
	a := api.AllocatorFunc{
		AllocFn: func(size int) ([]byte, error) { return make([]byte, size), nil },
		FreeFn:  func(buf []byte) error { freed += len(buf); return nil },
	}
	buf, err := a.Alloc(8)
	require.NoError(t, err)
	require.NoError(t, a.Free(buf))
	assert.Equal(t, 8, freed)

	assert.NoError(t, api.AllocatorFunc{}.Free(nil))
}
