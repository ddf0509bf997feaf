package sysmetrics

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MemoryStat describes physical memory usage at one instant.
type MemoryStat struct {
	UsedBytes   uint64
	TotalBytes  uint64
	UsedPercent float64
}

// usedPercent is shared by the memory and disk stats. A zero total yields 0
// rather than a division fault.
func usedPercent(used, total uint64) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(used) / float64(total) * 100.0
}

// parseMemInfo extracts MemTotal and MemAvailable from a /proc/meminfo
// style key-value table, both given in kibibytes. A missing or zero
// MemTotal is a format error; a missing MemAvailable reads as zero, which
// reports all memory as used.
func parseMemInfo(r io.Reader) (MemoryStat, error) {
	var totalKB, availKB uint64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "MemTotal:"):
			totalKB = memInfoKB(line)
		case strings.HasPrefix(line, "MemAvailable:"):
			availKB = memInfoKB(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return MemoryStat{}, fmt.Errorf("%w: reading meminfo: %v", ErrUnavailable, err)
	}
	if totalKB == 0 {
		return MemoryStat{}, fmt.Errorf("%w: MemTotal missing from meminfo", ErrMalformed)
	}
	if availKB > totalKB {
		availKB = totalKB
	}
	total := totalKB * 1024
	used := (totalKB - availKB) * 1024
	return MemoryStat{
		UsedBytes:   used,
		TotalBytes:  total,
		UsedPercent: usedPercent(used, total),
	}, nil
}

// memInfoKB pulls the numeric value out of a "Key:   12345 kB" line.
// Malformed lines read as zero and are handled by the caller.
func memInfoKB(line string) uint64 {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0
	}
	v, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// physicalMemoryStat computes usage from a total-bytes figure and a free
// page count. Free memory can transiently exceed the sampled total on some
// kernel versions, so used clamps at zero.
func physicalMemoryStat(totalBytes, freePages, pageSize uint64) MemoryStat {
	free := freePages * pageSize
	var used uint64
	if totalBytes > free {
		used = totalBytes - free
	}
	return MemoryStat{
		UsedBytes:   used,
		TotalBytes:  totalBytes,
		UsedPercent: usedPercent(used, totalBytes),
	}
}
