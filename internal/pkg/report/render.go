package report

import (
	"fmt"
	"io"
)

// bytesPerGB is one binary gigabyte.
const bytesPerGB = 1 << 30

func gb(b uint64) float64 { return float64(b) / bytesPerGB }

// Render writes the fixed-layout snapshot. Sections that failed to collect
// render as a one-line inline error instead of suppressing the report.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintln(w, "bsdmon - System Monitor")
	fmt.Fprintln(w, "=======================")
	fmt.Fprintf(w, "CPU Usage: %.2f%%\n", r.CPUPercent)

	if r.MemoryErr != nil {
		fmt.Fprintln(w, "Memory Usage: Error retrieving information")
	} else {
		fmt.Fprintf(w, "Memory Usage: %.2f GB / %.2f GB (%.2f%% used)\n",
			gb(r.Memory.UsedBytes), gb(r.Memory.TotalBytes), r.Memory.UsedPercent)
	}

	if r.DiskErr != nil {
		fmt.Fprintln(w, "Disk Usage: Error retrieving information")
	} else {
		fmt.Fprintf(w, "Disk Usage (%q): %.2f GB / %.2f GB (%.2f%% used)\n",
			r.MountPoint, gb(r.Disk.UsedBytes), gb(r.Disk.TotalBytes), r.Disk.UsedPercent)
	}

	if r.InterfacesErr != nil {
		fmt.Fprintln(w, "Network interfaces: Error retrieving information")
		return
	}
	fmt.Fprintln(w, "Network interfaces:")
	for _, rec := range r.Interfaces {
		fmt.Fprintf(w, "  %s: %s (mask: %s)\n", rec.Name, rec.Addr, rec.Netmask)
	}
}
