// File: ring/direct.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Zero-copy access to ring storage.
//
// AcquireWriteWindow and AcquireReadWindow move their cursor as soon as the
// window is handed out, so the caller must finish with the window before
// its next call on the ring. With a concurrent peer on the other side, use
// HeadWindow/TailWindow instead and commit with AdvanceHead/AdvanceTail
// after the bytes have actually moved.

package ring

// AcquireWriteWindow reserves min(FreeLinearSpace, n) bytes at head and
// returns them for in-place writing. head moves past the window before
// this returns. The window may be shorter than n even when FreeSpace is
// larger; call again to continue after the wrap.
func (r *RingBuffer) AcquireWriteWindow(n int) []byte {
	h, t := r.cursors()
	g := clamp(n, r.freeLinearSpace(h, t))
	w := r.storage[h : h+g : h+g]
	r.head.Store(int64(r.wrap.Wrap(h + g)))
	return w
}

// AcquireReadWindow hands out min(FullLinearSpace, n) buffered bytes at
// tail and releases them immediately. The bytes stay intact until the
// producer writes over them, so read the window before the next call.
func (r *RingBuffer) AcquireReadWindow(n int) []byte {
	h, t := r.cursors()
	g := clamp(n, r.fullLinearSpace(h, t))
	w := r.storage[t : t+g : t+g]
	r.tail.Store(int64(r.wrap.Wrap(t + g)))
	return w
}

// HeadWindow returns the free linear region at head without reserving it.
// Write into a prefix of it, then AdvanceHead by the bytes produced.
func (r *RingBuffer) HeadWindow() []byte {
	h, t := r.cursors()
	g := r.freeLinearSpace(h, t)
	return r.storage[h : h+g : h+g]
}

// TailWindow returns the buffered linear region at tail without consuming
// it. Read a prefix of it, then AdvanceTail by the bytes consumed.
func (r *RingBuffer) TailWindow() []byte {
	h, t := r.cursors()
	g := r.fullLinearSpace(h, t)
	return r.storage[t : t+g : t+g]
}

func clamp(n, limit int) int {
	if n <= 0 {
		return 0
	}
	return min(n, limit)
}
