// Package api
// Author: momentics@gmail.com
//
// Byte ring contracts for single-producer/single-consumer streaming.
// The producer side owns the head cursor, the consumer side owns the tail.

package api

// Producer is the write side of a byte ring. Only one goroutine may drive it.
type Producer interface {
	// PutByte stores one byte; returns false if the ring is full.
	PutByte(b byte) bool
	// WriteBuffer copies as much of src as fits and returns the count.
	WriteBuffer(src []byte) int
	// AcquireWriteWindow reserves up to n contiguous bytes and advances head.
	AcquireWriteWindow(n int) []byte
	// HeadWindow exposes the contiguous free region without reserving it.
	HeadWindow() []byte
	// AdvanceHead commits n bytes written through a window.
	AdvanceHead(n int)
	// FreeSpace returns the number of writable bytes.
	FreeSpace() int
	// FreeLinearSpace returns the largest contiguous writable run at head.
	FreeLinearSpace() int
}

// Consumer is the read side of a byte ring. Only one goroutine may drive it.
type Consumer interface {
	// GetByte removes one byte; ok is false if the ring is empty.
	GetByte() (b byte, ok bool)
	// ReadBuffer moves as many buffered bytes into dst as fit.
	ReadBuffer(dst []byte) int
	// AcquireReadWindow hands out up to n contiguous bytes and advances tail.
	AcquireReadWindow(n int) []byte
	// TailWindow exposes the contiguous buffered region without consuming it.
	TailWindow() []byte
	// AdvanceTail releases n bytes consumed through a window.
	AdvanceTail(n int)
	// PickBytes copies buffered bytes into dst without consuming them.
	PickBytes(dst []byte) int
	// IndexByte returns the offset from tail of the first buffered c, or -1.
	IndexByte(c byte) int
	// FullSpace returns the number of buffered bytes.
	FullSpace() int
	// FullLinearSpace returns the largest contiguous buffered run at tail.
	FullLinearSpace() int
}

// ByteRing is the full ring contract.
type ByteRing interface {
	Producer
	Consumer
	StatsSource

	// Cap returns the effective capacity, one more than the maximum occupancy.
	Cap() int
	// Close releases owned storage. It must be called once.
	Close() error
}

// RingStats is a point-in-time view of ring accounting.
type RingStats struct {
	Capacity        int
	Head            int
	Tail            int
	FreeSpace       int
	FullSpace       int
	FreeLinearSpace int
	FullLinearSpace int
	Owned           bool
}

// Utilization returns occupied bytes relative to the usable capacity.
func (s RingStats) Utilization() float64 {
	if s.Capacity <= 1 {
		return 0
	}
	return float64(s.FullSpace) / float64(s.Capacity-1)
}

// StatsSource exposes accounting snapshots for observability.
type StatsSource interface {
	Stats() RingStats
}
