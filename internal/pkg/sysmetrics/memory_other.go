//go:build !linux && !freebsd

package sysmetrics

// SampleMemory has no collector outside the supported platforms.
func SampleMemory() (MemoryStat, error) {
	return MemoryStat{}, ErrPlatformUnsupported
}
