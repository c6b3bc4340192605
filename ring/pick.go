// File: ring/pick.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import "bytes"

// PickBytes copies up to len(dst) buffered bytes into dst without consuming
// them. Repeated calls return the same bytes until the consumer advances.
func (r *RingBuffer) PickBytes(dst []byte) int {
	h, t := r.cursors()
	return r.copyOut(dst, h, t)
}

// IndexByte returns the offset from tail of the first buffered c, or -1.
// It scans storage in place, so a delimiter can be located before any
// byte is consumed.
func (r *RingBuffer) IndexByte(c byte) int {
	h, t := r.cursors()
	n := r.fullSpace(h, t)
	if n == 0 {
		return -1
	}
	first := min(n, r.capacity-t)
	if i := bytes.IndexByte(r.storage[t:t+first], c); i >= 0 {
		return i
	}
	if i := bytes.IndexByte(r.storage[:n-first], c); i >= 0 {
		return first + i
	}
	return -1
}
