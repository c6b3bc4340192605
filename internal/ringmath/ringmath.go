// File: internal/ringmath/ringmath.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ringmath

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// RoundDownPow2 returns the largest power of two <= n. Zero maps to zero.
func RoundDownPow2(n int) int {
	if n <= 0 {
		return 0
	}
	x := uint64(n)
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	return int(x - (x >> 1))
}

// Wrapper folds a cursor position back into [0, size).
type Wrapper struct {
	size   int
	mask   int
	masked bool
}

// NewWrapper picks the masked form for power-of-two sizes.
func NewWrapper(size int) Wrapper {
	if size <= 0 {
		panic("ringmath: size must be positive")
	}
	return Wrapper{
		size:   size,
		mask:   size - 1,
		masked: IsPowerOfTwo(size),
	}
}

// Size returns the modulus.
func (w Wrapper) Size() int { return w.size }

// Masked reports whether Wrap uses the bit-mask form.
func (w Wrapper) Masked() bool { return w.masked }

// Wrap returns x mod size for non-negative x.
func (w Wrapper) Wrap(x int) int {
	if w.masked {
		return x & w.mask
	}
	return x % w.size
}

// Modulo is the reference form of Wrap, regardless of size.
func (w Wrapper) Modulo(x int) int {
	return x % w.size
}
