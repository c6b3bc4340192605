// File: internal/ringmath/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Index arithmetic shared by the byte ring: capacity rounding and cursor
// wraparound. Power-of-two capacities wrap with a mask, all others with a
// modulo; both forms agree for every power-of-two capacity.
package ringmath
