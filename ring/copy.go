// File: ring/copy.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Copying write/read paths. Short counts are results, not errors.

package ring

// PutByte stores b at head. It returns false, leaving the ring unchanged,
// when the ring is full.
func (r *RingBuffer) PutByte(b byte) bool {
	h, t := r.cursors()
	if r.freeSpace(h, t) == 0 {
		return false
	}
	r.storage[h] = b
	r.head.Store(int64(r.wrap.Wrap(h + 1)))
	return true
}

// WriteBuffer copies min(FreeSpace, len(src)) bytes from src, wrapping at
// the end of storage, and returns the number copied.
func (r *RingBuffer) WriteBuffer(src []byte) int {
	h, t := r.cursors()
	n := min(r.freeSpace(h, t), len(src))
	if n == 0 {
		return 0
	}
	first := copy(r.storage[h:], src[:n])
	copy(r.storage, src[first:n])
	r.head.Store(int64(r.wrap.Wrap(h + n)))
	return n
}

// GetByte removes the byte at tail. ok is false when the ring is empty.
func (r *RingBuffer) GetByte() (b byte, ok bool) {
	h, t := r.cursors()
	if r.fullSpace(h, t) == 0 {
		return 0, false
	}
	b = r.storage[t]
	r.tail.Store(int64(r.wrap.Wrap(t + 1)))
	return b, true
}

// GetByteUnchecked removes the byte at tail without checking occupancy.
// The caller must have seen FullSpace() > 0; on an empty ring the result
// is garbage and the ring is corrupted.
func (r *RingBuffer) GetByteUnchecked() byte {
	t := int(r.tail.Load())
	b := r.storage[t]
	r.tail.Store(int64(r.wrap.Wrap(t + 1)))
	return b
}

// ReadBuffer moves min(FullSpace, len(dst)) bytes into dst and returns the
// number moved.
func (r *RingBuffer) ReadBuffer(dst []byte) int {
	h, t := r.cursors()
	n := r.copyOut(dst, h, t)
	if n > 0 {
		r.tail.Store(int64(r.wrap.Wrap(t + n)))
	}
	return n
}

// copyOut copies buffered bytes starting at t into dst without touching
// the tail cursor.
func (r *RingBuffer) copyOut(dst []byte, h, t int) int {
	n := min(r.fullSpace(h, t), len(dst))
	if n == 0 {
		return 0
	}
	first := copy(dst[:n], r.storage[t:])
	copy(dst[first:n], r.storage)
	return n
}
