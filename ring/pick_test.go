// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickBytesDoesNotConsume(t *testing.T) {
	r := mustNew(t, 8)
	setCursors(r, 6, 6)
	require.Equal(t, 5, r.WriteBuffer([]byte("hello")))
	before := r.Stats()

	first := make([]byte, 8)
	n := r.PickBytes(first)
	require.Equal(t, 5, n)
	assert.Equal(t, "hello", string(first[:n]))

	for i := 0; i < 3; i++ {
		again := make([]byte, 8)
		require.Equal(t, n, r.PickBytes(again))
		assert.Equal(t, first, again)
		assert.Equal(t, before, r.Stats())
	}

	short := make([]byte, 2)
	assert.Equal(t, 2, r.PickBytes(short))
	assert.Equal(t, "he", string(short))

	out := make([]byte, 5)
	r.ReadBuffer(out[:1])
	assert.Equal(t, 4, r.PickBytes(out))
	assert.Equal(t, "ello", string(out[:4]))
}

func TestPickBytesEmpty(t *testing.T) {
	r := mustNew(t, 8)
	assert.Zero(t, r.PickBytes(make([]byte, 4)))
	assert.Zero(t, r.PickBytes(nil))
}

func TestIndexByte(t *testing.T) {
	r := mustNew(t, 8)
	assert.Equal(t, -1, r.IndexByte('\n'))

	setCursors(r, 5, 5)
	r.WriteBuffer([]byte("ab\ncd\n"))
	assert.Equal(t, 2, r.IndexByte('\n'))
	assert.Equal(t, 3, r.IndexByte('c'), "match after the wrap")
	assert.Equal(t, -1, r.IndexByte('z'))

	line := make([]byte, r.IndexByte('\n')+1)
	r.ReadBuffer(line)
	assert.Equal(t, "ab\n", string(line))
	assert.Equal(t, 2, r.IndexByte('\n'))
}
