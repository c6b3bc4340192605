//go:build linux
// +build linux

// control/platform_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific debug probe integrations.

package control

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-ring/pool"
)

// RegisterPlatformProbes sets Linux-specific debug probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.page_size", func() any {
		return unix.Getpagesize()
	})
	dp.RegisterProbe("platform.mmap", func() any {
		return pool.MmapSupported
	})
	dp.RegisterProbe("platform.hugepages", func() any {
		return nrHugePages()
	})
}

// nrHugePages returns the configured number of huge pages, or -1 if unknown.
func nrHugePages() int {
	b, err := os.ReadFile("/proc/sys/vm/nr_hugepages")
	if err != nil {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil {
		return -1
	}
	return n
}
