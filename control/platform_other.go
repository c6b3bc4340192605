//go:build !linux && !windows

// control/platform_other.go

package control

import (
	"os"
	"runtime"

	"github.com/momentics/hioload-ring/pool"
)

// RegisterPlatformProbes sets the portable debug probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.page_size", func() any {
		return os.Getpagesize()
	})
	dp.RegisterProbe("platform.mmap", func() any {
		return pool.MmapSupported
	})
}
