//go:build freebsd

package sysmetrics

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// SampleCPUTimes queries the kern.cp_times tick array and sums the per-core
// buckets into one machine-wide sample. SysctlRaw performs the usual
// size-then-fill sysctl sequence and returns a buffer sized by the kernel.
func SampleCPUTimes() (CPUTimes, error) {
	buf, err := unix.SysctlRaw("kern.cp_times")
	if err != nil {
		return CPUTimes{}, fmt.Errorf("%w: sysctl kern.cp_times: %v", ErrUnavailable, err)
	}
	return sumClockTicks(buf)
}
