// File: stream/reader.go
// Author: momentics <momentics@gmail.com>

package stream

import (
	"io"

	"github.com/momentics/hioload-ring/api"
)

// Reader is the consumer-side io adapter. An empty ring is reported as
// api.ErrRingEmpty; the stream itself never ends.
type Reader struct {
	c   api.Consumer
	cnt counters
}

// NewReader wraps the consumer side of a ring.
func NewReader(c api.Consumer) *Reader {
	return &Reader{c: c}
}

func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n := r.c.ReadBuffer(p)
	if n == 0 {
		return 0, api.ErrRingEmpty
	}
	r.cnt.read.Add(int64(n))
	return n, nil
}

func (r *Reader) ReadByte() (byte, error) {
	b, ok := r.c.GetByte()
	if !ok {
		return 0, api.ErrRingEmpty
	}
	r.cnt.read.Inc()
	return b, nil
}

// Buffered returns the number of bytes ready to read.
func (r *Reader) Buffered() int { return r.c.FullSpace() }

// Peek copies up to n buffered bytes without consuming them. A negative n
// peeks nothing.
func (r *Reader) Peek(n int) []byte {
	out := make([]byte, min(max(n, 0), r.c.FullSpace()))
	return out[:r.c.PickBytes(out)]
}

// ReadUntil consumes and returns everything up to and including the first
// delim. ok is false, and nothing is consumed, if delim is not buffered yet.
func (r *Reader) ReadUntil(delim byte) (line []byte, ok bool) {
	i := r.c.IndexByte(delim)
	if i < 0 {
		return nil, false
	}
	line = make([]byte, i+1)
	n := r.c.ReadBuffer(line)
	r.cnt.read.Add(int64(n))
	return line[:n], true
}

// WriteTo drains the ring into w through the tail window, without an
// intermediate copy. It stops when the ring is empty.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for {
		tw := r.c.TailWindow()
		if len(tw) == 0 {
			return total, nil
		}
		n, err := w.Write(tw)
		if n > 0 {
			r.c.AdvanceTail(n)
			r.cnt.read.Add(int64(n))
			total += int64(n)
		}
		if err != nil {
			return total, err
		}
		if n < len(tw) {
			return total, io.ErrShortWrite
		}
	}
}

// Counters returns consumer-side traffic.
func (r *Reader) Counters() Counters {
	return Counters{Read: r.cnt.read.Load()}
}

var (
	_ io.Reader     = (*Reader)(nil)
	_ io.ByteReader = (*Reader)(nil)
	_ io.WriterTo   = (*Reader)(nil)
)
