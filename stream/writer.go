// File: stream/writer.go
// Author: momentics <momentics@gmail.com>

package stream

import (
	"io"

	"github.com/momentics/hioload-ring/api"
)

// maxConsecutiveEmptyReads bounds ReadFrom against readers that keep
// returning (0, nil).
const maxConsecutiveEmptyReads = 100

// Writer is the producer-side io adapter.
type Writer struct {
	p api.Producer
	c counters
}

// NewWriter wraps the producer side of a ring.
func NewWriter(p api.Producer) *Writer {
	return &Writer{p: p}
}

// Write copies as much of b as fits. A partial write returns
// io.ErrShortWrite with the count actually stored.
func (w *Writer) Write(b []byte) (int, error) {
	n := w.p.WriteBuffer(b)
	w.c.written.Add(int64(n))
	if n < len(b) {
		w.c.shortWrites.Inc()
		return n, io.ErrShortWrite
	}
	return n, nil
}

// WriteByte stores one byte or returns api.ErrRingFull.
func (w *Writer) WriteByte(c byte) error {
	if !w.p.PutByte(c) {
		w.c.shortWrites.Inc()
		return api.ErrRingFull
	}
	w.c.written.Inc()
	return nil
}

// Fill issues a single Read on r straight into the free linear window and
// commits what it produced. It returns api.ErrRingFull without calling r
// when there is no room.
func (w *Writer) Fill(r io.Reader) (int, error) {
	hw := w.p.HeadWindow()
	if len(hw) == 0 {
		return 0, api.ErrRingFull
	}
	n, err := r.Read(hw)
	if n > 0 {
		w.p.AdvanceHead(n)
		w.c.written.Add(int64(n))
	}
	return n, err
}

// ReadFrom fills the ring from r until r reports io.EOF, which is not
// returned, or the ring is full, which returns api.ErrRingFull.
func (w *Writer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	empty := 0
	for {
		n, err := w.Fill(r)
		total += int64(n)
		switch {
		case err == io.EOF:
			return total, nil
		case err != nil:
			return total, err
		case n == 0:
			empty++
			if empty >= maxConsecutiveEmptyReads {
				return total, io.ErrNoProgress
			}
		default:
			empty = 0
		}
	}
}

// Counters returns producer-side traffic.
func (w *Writer) Counters() Counters {
	return Counters{
		Written:     w.c.written.Load(),
		ShortWrites: w.c.shortWrites.Load(),
	}
}

var (
	_ io.Writer     = (*Writer)(nil)
	_ io.ByteWriter = (*Writer)(nil)
	_ io.ReaderFrom = (*Writer)(nil)
)
