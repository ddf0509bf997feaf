// Package report assembles and renders the one-shot system snapshot: two
// CPU tick samples spaced by the sampling interval, then memory, disk, and
// network interface queries.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/endorses/bsdmon/internal/pkg/constants"
	"github.com/endorses/bsdmon/internal/pkg/logger"
	"github.com/endorses/bsdmon/internal/pkg/sysmetrics"
)

// Options controls one snapshot collection.
type Options struct {
	// SampleInterval is the pause between the two CPU tick samples.
	// Zero or negative means constants.DefaultSampleInterval.
	SampleInterval time.Duration

	// MountPoint is the filesystem the disk section reports on.
	// Empty means constants.RootMountPoint.
	MountPoint string
}

// Report is one collected snapshot. Section errors are recorded instead of
// aborting: a report with a CPU figure is still worth printing when, say,
// the root filesystem cannot be statted.
type Report struct {
	CPUPercent float64

	Memory    sysmetrics.MemoryStat
	MemoryErr error

	MountPoint string
	Disk       sysmetrics.DiskStat
	DiskErr    error

	Interfaces    []sysmetrics.InterfaceRecord
	InterfacesErr error
}

// collectors seams the platform samplers out of the driver for tests.
type collectors struct {
	cpu        func() (sysmetrics.CPUTimes, error)
	memory     func() (sysmetrics.MemoryStat, error)
	disk       func(string) (sysmetrics.DiskStat, error)
	interfaces func() ([]sysmetrics.InterfaceRecord, error)
}

func liveCollectors() collectors {
	return collectors{
		cpu:        sysmetrics.SampleCPUTimes,
		memory:     sysmetrics.SampleMemory,
		disk:       sysmetrics.SampleDisk,
		interfaces: sysmetrics.Interfaces,
	}
}

// Collect takes the snapshot. Either CPU sample failing is fatal, since no
// usage estimate exists without both; every other section failure is
// downgraded into the report and logged, so Render can still emit a partial
// snapshot. Each collector is queried exactly once.
func Collect(ctx context.Context, opts Options) (*Report, error) {
	return collect(ctx, opts, liveCollectors())
}

func collect(ctx context.Context, opts Options, c collectors) (*Report, error) {
	interval := opts.SampleInterval
	if interval <= 0 {
		interval = constants.DefaultSampleInterval
	}
	mount := opts.MountPoint
	if mount == "" {
		mount = constants.RootMountPoint
	}

	prev, err := c.cpu()
	if err != nil {
		return nil, fmt.Errorf("initial cpu sample: %w", err)
	}
	if err := wait(ctx, interval); err != nil {
		return nil, err
	}
	curr, err := c.cpu()
	if err != nil {
		return nil, fmt.Errorf("second cpu sample: %w", err)
	}

	r := &Report{
		CPUPercent: sysmetrics.CPUUsagePercent(prev, curr),
		MountPoint: mount,
	}

	r.Memory, r.MemoryErr = c.memory()
	if r.MemoryErr != nil {
		logger.Warn("memory collection failed", "error", r.MemoryErr)
	}

	r.Disk, r.DiskErr = c.disk(mount)
	if r.DiskErr != nil {
		logger.Warn("disk collection failed", "mount", mount, "error", r.DiskErr)
	}

	r.Interfaces, r.InterfacesErr = c.interfaces()
	if r.InterfacesErr != nil {
		logger.Warn("interface enumeration failed", "error", r.InterfacesErr)
	}

	return r, nil
}

// wait blocks for the sampling interval, honoring ctx cancellation.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
