// File: ring/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package ring implements a fixed-capacity circular byte buffer with both
// copying I/O and zero-copy direct windows into its storage.
//
// The ring keeps one slot empty so that head == tail always means empty.
// A ring of capacity C therefore holds at most C-1 bytes.
//
// Direct windows never cross the physical end of storage. A caller that
// needs more than one linear run loops, re-querying after each window.
// A window aliases ring storage and stays valid only until the next
// mutating call on the same side of the ring.
//
// There is no locking. One goroutine may drive the producer side (PutByte,
// WriteBuffer, AcquireWriteWindow, HeadWindow, AdvanceHead) while another
// drives the consumer side (GetByte, GetByteUnchecked, ReadBuffer,
// AcquireReadWindow, TailWindow, AdvanceTail, PickBytes). Each cursor is
// stored only by its own side and published atomically.
package ring
