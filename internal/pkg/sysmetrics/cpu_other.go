//go:build !linux && !freebsd

package sysmetrics

// SampleCPUTimes has no collector outside the supported platforms.
func SampleCPUTimes() (CPUTimes, error) {
	return CPUTimes{}, ErrPlatformUnsupported
}
