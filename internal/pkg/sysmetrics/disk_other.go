//go:build !linux && !freebsd

package sysmetrics

// SampleDisk has no collector outside the supported platforms.
func SampleDisk(path string) (DiskStat, error) {
	return DiskStat{}, ErrPlatformUnsupported
}
