// Package sysmetrics provides point-in-time system metrics collection:
// machine-wide CPU tick counters, physical memory, filesystem usage, and
// network interface addresses. Linux collectors read the /proc pseudo-files;
// FreeBSD collectors query the kernel through sysctl. The parsing and
// arithmetic helpers are platform-neutral so both code paths stay testable
// everywhere.
package sysmetrics

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// CPUTimes holds cumulative CPU tick counters since boot, summed over all
// cores. Counters only ever increase on a live system; a decrease means the
// kernel reset or wrapped them.
type CPUTimes struct {
	User   uint64
	Nice   uint64
	System uint64

	// Intr is interrupt time from the FreeBSD tick array. The Linux
	// sampler leaves it zero, which keeps the active-time formula uniform
	// across platforms.
	Intr uint64

	Idle uint64
}

func (t CPUTimes) active() uint64 { return t.User + t.Nice + t.System + t.Intr }

func (t CPUTimes) total() uint64 { return t.active() + t.Idle }

// CPUUsagePercent computes utilization between two tick samples as a value
// in [0, 100]. It never fails: a zero total delta (no kernel-visible tick
// advance) or a counter regression yields 0, and active time outrunning the
// total clamps to 100.
func CPUUsagePercent(prev, curr CPUTimes) float64 {
	if curr.total() <= prev.total() {
		return 0.0
	}
	if curr.active() <= prev.active() {
		return 0.0
	}
	totalDelta := curr.total() - prev.total()
	activeDelta := curr.active() - prev.active()
	if activeDelta >= totalDelta {
		return 100.0
	}
	return float64(activeDelta) / float64(totalDelta) * 100.0
}

// parseCPUStatLine parses the aggregate first line of /proc/stat. The kernel
// pads the "cpu" label to field width, so the literal prefix is "cpu  " with
// two spaces. At least four counters (user nice system idle) must follow;
// trailing fields (iowait, irq, softirq, steal, guest) are ignored.
func parseCPUStatLine(line string) (CPUTimes, error) {
	rest, ok := strings.CutPrefix(line, "cpu  ")
	if !ok {
		return CPUTimes{}, fmt.Errorf("%w: /proc/stat line %q", ErrMalformed, line)
	}
	fields := strings.Fields(rest)
	if len(fields) < 4 {
		return CPUTimes{}, fmt.Errorf("%w: /proc/stat cpu line has %d fields, want at least 4", ErrMalformed, len(fields))
	}
	var counters [4]uint64
	for i := range counters {
		v, err := strconv.ParseUint(fields[i], 10, 64)
		if err != nil {
			return CPUTimes{}, fmt.Errorf("%w: /proc/stat field %q: %v", ErrMalformed, fields[i], err)
		}
		counters[i] = v
	}
	return CPUTimes{
		User:   counters[0],
		Nice:   counters[1],
		System: counters[2],
		Idle:   counters[3],
	}, nil
}

const (
	// cpuStates is the number of tick buckets per core in kern.cp_times,
	// in order: user, nice, system, intr, idle.
	cpuStates = 5

	// clockTickSize is the width of one kern.cp_times counter, a native
	// C long. Both supported targets are 64-bit.
	clockTickSize = 8
)

// sumClockTicks folds a raw kern.cp_times payload into one machine-wide
// sample. The payload is one cpuStates-sized block of native-endian longs
// per core. The kernel's size-then-fill sysctl sequence is not atomic with
// respect to core hot-plug; a length that is not a whole number of blocks
// surfaces here as a malformed payload instead of being truncated.
func sumClockTicks(buf []byte) (CPUTimes, error) {
	const stride = cpuStates * clockTickSize
	if len(buf) == 0 || len(buf)%stride != 0 {
		return CPUTimes{}, fmt.Errorf("%w: kern.cp_times payload of %d bytes", ErrMalformed, len(buf))
	}
	var t CPUTimes
	for off := 0; off < len(buf); off += stride {
		t.User += binary.NativeEndian.Uint64(buf[off:])
		t.Nice += binary.NativeEndian.Uint64(buf[off+clockTickSize:])
		t.System += binary.NativeEndian.Uint64(buf[off+2*clockTickSize:])
		t.Intr += binary.NativeEndian.Uint64(buf[off+3*clockTickSize:])
		t.Idle += binary.NativeEndian.Uint64(buf[off+4*clockTickSize:])
	}
	return t, nil
}
