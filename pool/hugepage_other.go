//go:build darwin || freebsd || netbsd || openbsd

// File: pool/hugepage_other.go
// Author: momentics <momentics@gmail.com>

package pool

// No portable hugepage flag outside Linux.
const (
	hugePageFlag = 0
	hugePageSize = 1
)
