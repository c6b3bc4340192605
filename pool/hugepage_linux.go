//go:build linux

// File: pool/hugepage_linux.go
// Author: momentics <momentics@gmail.com>

package pool

import "golang.org/x/sys/unix"

const (
	hugePageFlag = unix.MAP_HUGETLB
	hugePageSize = 2 << 20
)
