// Package stream
// Author: momentics <momentics@gmail.com>
//
// io adapters over a byte ring. Writer and Reader wrap the copying paths;
// Writer.ReadFrom and Reader.WriteTo move data through the ring's direct
// windows so a socket or file reads straight into ring storage and writes
// straight out of it. Feeder keeps whole chunks in order when the ring
// cannot take them yet.
//
// Writer and Feeder belong to the producer goroutine, Reader to the
// consumer goroutine. Counters may be read from anywhere.
package stream
