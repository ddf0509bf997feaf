package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/endorses/bsdmon/internal/pkg/sysmetrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// testCollectors returns stubs that succeed with fixed values. The CPU stub
// returns a busier sample on every call, so two calls produce 50% usage.
func testCollectors() collectors {
	samples := []sysmetrics.CPUTimes{
		{User: 100, Idle: 900},
		{User: 150, Idle: 950},
	}
	calls := 0
	return collectors{
		cpu: func() (sysmetrics.CPUTimes, error) {
			s := samples[calls%len(samples)]
			calls++
			return s, nil
		},
		memory: func() (sysmetrics.MemoryStat, error) {
			return sysmetrics.MemoryStat{
				UsedBytes:   1182208 * 1024,
				TotalBytes:  24670208 * 1024,
				UsedPercent: 4.79,
			}, nil
		},
		disk: func(mount string) (sysmetrics.DiskStat, error) {
			return sysmetrics.DiskStat{
				UsedBytes:   12 * bytesPerGB,
				TotalBytes:  48 * bytesPerGB,
				UsedPercent: 25.0,
			}, nil
		},
		interfaces: func() ([]sysmetrics.InterfaceRecord, error) {
			return []sysmetrics.InterfaceRecord{
				{Name: "eth0", Addr: "192.168.1.10", Netmask: "255.255.255.0"},
			}, nil
		},
	}
}

func testOptions() Options {
	return Options{SampleInterval: time.Millisecond}
}

func TestCollect(t *testing.T) {
	r, err := collect(context.Background(), testOptions(), testCollectors())
	require.NoError(t, err)

	assert.InDelta(t, 50.0, r.CPUPercent, 0.0001)
	assert.Equal(t, "/", r.MountPoint)
	assert.NoError(t, r.MemoryErr)
	assert.NoError(t, r.DiskErr)
	assert.NoError(t, r.InterfacesErr)
	assert.Len(t, r.Interfaces, 1)
}

func TestCollect_MountPointOption(t *testing.T) {
	var statted string
	c := testCollectors()
	c.disk = func(mount string) (sysmetrics.DiskStat, error) {
		statted = mount
		return sysmetrics.DiskStat{}, nil
	}

	opts := testOptions()
	opts.MountPoint = "/var"
	r, err := collect(context.Background(), opts, c)
	require.NoError(t, err)
	assert.Equal(t, "/var", statted)
	assert.Equal(t, "/var", r.MountPoint)
}

func TestCollect_FirstCPUSampleFatal(t *testing.T) {
	c := testCollectors()
	c.cpu = func() (sysmetrics.CPUTimes, error) {
		return sysmetrics.CPUTimes{}, errBoom
	}

	_, err := collect(context.Background(), testOptions(), c)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "initial cpu sample")
}

func TestCollect_SecondCPUSampleFatal(t *testing.T) {
	calls := 0
	c := testCollectors()
	base := c.cpu
	c.cpu = func() (sysmetrics.CPUTimes, error) {
		calls++
		if calls > 1 {
			return sysmetrics.CPUTimes{}, errBoom
		}
		return base()
	}

	_, err := collect(context.Background(), testOptions(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "second cpu sample")
}

func TestCollect_SectionFailuresDowngraded(t *testing.T) {
	c := testCollectors()
	c.memory = func() (sysmetrics.MemoryStat, error) { return sysmetrics.MemoryStat{}, errBoom }
	c.disk = func(string) (sysmetrics.DiskStat, error) { return sysmetrics.DiskStat{}, errBoom }
	c.interfaces = func() ([]sysmetrics.InterfaceRecord, error) { return nil, errBoom }

	r, err := collect(context.Background(), testOptions(), c)
	require.NoError(t, err, "section failures must not abort the snapshot")
	assert.ErrorIs(t, r.MemoryErr, errBoom)
	assert.ErrorIs(t, r.DiskErr, errBoom)
	assert.ErrorIs(t, r.InterfacesErr, errBoom)
}

func TestCollect_ContextCanceledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := Options{SampleInterval: time.Hour}
	_, err := collect(ctx, opts, testCollectors())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRender(t *testing.T) {
	r, err := collect(context.Background(), testOptions(), testCollectors())
	require.NoError(t, err)

	var buf bytes.Buffer
	r.Render(&buf)

	want := `bsdmon - System Monitor
=======================
CPU Usage: 50.00%
Memory Usage: 1.13 GB / 23.53 GB (4.79% used)
Disk Usage ("/"): 12.00 GB / 48.00 GB (25.00% used)
Network interfaces:
  eth0: 192.168.1.10 (mask: 255.255.255.0)
`
	assert.Equal(t, want, buf.String())
}

func TestRender_SectionErrors(t *testing.T) {
	r := &Report{
		CPUPercent:    3.14,
		MountPoint:    "/",
		MemoryErr:     errBoom,
		DiskErr:       errBoom,
		InterfacesErr: errBoom,
	}

	var buf bytes.Buffer
	r.Render(&buf)

	want := `bsdmon - System Monitor
=======================
CPU Usage: 3.14%
Memory Usage: Error retrieving information
Disk Usage: Error retrieving information
Network interfaces: Error retrieving information
`
	assert.Equal(t, want, buf.String())
}

func TestRender_NoInterfaces(t *testing.T) {
	r := &Report{MountPoint: "/"}

	var buf bytes.Buffer
	r.Render(&buf)

	out := buf.String()
	assert.Contains(t, out, "Network interfaces:\n")
	assert.Contains(t, out, "Memory Usage: 0.00 GB / 0.00 GB (0.00% used)")
}
