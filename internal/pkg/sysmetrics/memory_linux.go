//go:build linux

package sysmetrics

import (
	"fmt"
	"os"
)

const procMemInfoPath = "/proc/meminfo"

// SampleMemory reads total and used physical memory from /proc/meminfo.
// Used memory is MemTotal minus MemAvailable, the kernel's own estimate of
// memory available for new workloads.
func SampleMemory() (MemoryStat, error) {
	f, err := os.Open(procMemInfoPath)
	if err != nil {
		return MemoryStat{}, fmt.Errorf("%w: open %s: %v", ErrUnavailable, procMemInfoPath, err)
	}
	defer f.Close()
	return parseMemInfo(f)
}
