// File: ring/cursor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

// AdvanceHead commits n bytes at head, typically after filling a window
// obtained from HeadWindow. n must not exceed FreeSpace; this is not checked.
func (r *RingBuffer) AdvanceHead(n int) {
	h := int(r.head.Load())
	r.head.Store(int64(r.wrap.Wrap(h + n)))
}

// AdvanceTail releases n bytes at tail, typically after draining a window
// obtained from TailWindow. n must not exceed FullSpace; this is not checked.
func (r *RingBuffer) AdvanceTail(n int) {
	t := int(r.tail.Load())
	r.tail.Store(int64(r.wrap.Wrap(t + n)))
}
