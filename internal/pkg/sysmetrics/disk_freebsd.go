//go:build freebsd

package sysmetrics

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// SampleDisk reports capacity and usage for the filesystem mounted at path.
// On FreeBSD the statfs Bsize field carries the fragment size capacities
// are counted in.
func SampleDisk(path string) (DiskStat, error) {
	var fs unix.Statfs_t
	if err := unix.Statfs(path, &fs); err != nil {
		return DiskStat{}, fmt.Errorf("%w: statfs %s: %v", ErrUnavailable, path, err)
	}
	return diskStatFromBlocks(fs.Blocks, fs.Bfree, fs.Bsize), nil
}
