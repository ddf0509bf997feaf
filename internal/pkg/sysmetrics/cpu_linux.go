//go:build linux

package sysmetrics

import (
	"bufio"
	"fmt"
	"os"
)

const procStatPath = "/proc/stat"

// SampleCPUTimes reads machine-wide cumulative tick counters from the first
// line of /proc/stat.
func SampleCPUTimes() (CPUTimes, error) {
	f, err := os.Open(procStatPath)
	if err != nil {
		return CPUTimes{}, fmt.Errorf("%w: open %s: %v", ErrUnavailable, procStatPath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return CPUTimes{}, fmt.Errorf("%w: %s is empty", ErrUnavailable, procStatPath)
	}
	return parseCPUStatLine(scanner.Text())
}
