// File: stream/feeder.go
// Author: momentics <momentics@gmail.com>
//
// Feeder parks the part of a chunk the ring cannot take yet and replays
// it, in order, as the consumer frees space.

package stream

import (
	"github.com/eapache/queue"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/momentics/hioload-ring/api"
)

// pending is a queued chunk with its unwritten offset.
type pending struct {
	data []byte
	off  int
}

// Feeder is a producer-side writer with an ordered backlog.
type Feeder struct {
	w          *Writer
	backlog    *queue.Queue
	queued     atomic.Int64
	maxBacklog int
	log        *zap.Logger
}

// NewFeeder wraps p. maxBacklog caps queued bytes; zero means unbounded.
func NewFeeder(p api.Producer, maxBacklog int, log *zap.Logger) *Feeder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Feeder{
		w:          NewWriter(p),
		backlog:    queue.New(),
		maxBacklog: maxBacklog,
		log:        log,
	}
}

// Push hands chunk to the ring. Whatever does not fit now is copied to the
// backlog. If the backlog would exceed its cap, the overflow is rejected
// with api.ErrResourceExhausted and n reports how much of chunk was taken.
func (f *Feeder) Push(chunk []byte) (n int, err error) {
	f.Flush()

	if f.backlog.Length() == 0 {
		n, _ = f.w.Write(chunk)
	}
	rest := chunk[n:]
	if len(rest) == 0 {
		return n, nil
	}

	if f.maxBacklog > 0 && int(f.queued.Load())+len(rest) > f.maxBacklog {
		f.log.Debug("backlog full, rejecting chunk",
			zap.Int("rejected", len(rest)),
			zap.Int64("queued", f.queued.Load()))
		return n, api.NewError(api.ErrCodeResourceExhausted, "feeder backlog full").
			WithContext("rejected", len(rest))
	}

	f.backlog.Add(&pending{data: append([]byte(nil), rest...)})
	f.queued.Add(int64(len(rest)))
	f.log.Debug("chunk parked in backlog",
		zap.Int("bytes", len(rest)),
		zap.Int("chunks", f.backlog.Length()))
	return len(chunk), nil
}

// Flush moves as much backlog into the ring as fits and returns the bytes
// moved.
func (f *Feeder) Flush() int {
	moved := 0
	for f.backlog.Length() > 0 {
		p := f.backlog.Peek().(*pending)
		n, _ := f.w.Write(p.data[p.off:])
		p.off += n
		moved += n
		f.queued.Sub(int64(n))
		if p.off < len(p.data) {
			break
		}
		f.backlog.Remove()
	}
	return moved
}

// Pending returns the number of queued bytes not yet in the ring.
func (f *Feeder) Pending() int { return int(f.queued.Load()) }

// Chunks returns the number of queued chunks.
func (f *Feeder) Chunks() int { return f.backlog.Length() }

// Counters returns traffic including the current backlog.
func (f *Feeder) Counters() Counters {
	c := f.w.Counters()
	c.Backlog = f.queued.Load()
	return c
}
