//go:build freebsd

package sysmetrics

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// SampleMemory reads total physical memory and the free page count through
// sysctl and derives used bytes from their difference.
func SampleMemory() (MemoryStat, error) {
	total, err := unix.SysctlUint64("hw.physmem")
	if err != nil {
		return MemoryStat{}, fmt.Errorf("%w: sysctl hw.physmem: %v", ErrUnavailable, err)
	}
	if total == 0 {
		return MemoryStat{}, fmt.Errorf("%w: hw.physmem reports zero bytes", ErrMalformed)
	}
	freePages, err := unix.SysctlUint32("vm.stats.vm.v_free_count")
	if err != nil {
		return MemoryStat{}, fmt.Errorf("%w: sysctl vm.stats.vm.v_free_count: %v", ErrUnavailable, err)
	}
	return physicalMemoryStat(total, uint64(freePages), uint64(unix.Getpagesize())), nil
}
