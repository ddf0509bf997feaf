//go:build linux

package sysmetrics

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// SampleDisk reports capacity and usage for the filesystem mounted at path.
// Frsize is the fragment size capacities are counted in.
func SampleDisk(path string) (DiskStat, error) {
	var fs unix.Statfs_t
	if err := unix.Statfs(path, &fs); err != nil {
		return DiskStat{}, fmt.Errorf("%w: statfs %s: %v", ErrUnavailable, path, err)
	}
	return diskStatFromBlocks(fs.Blocks, fs.Bfree, uint64(fs.Frsize)), nil
}
