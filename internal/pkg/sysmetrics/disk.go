package sysmetrics

// DiskStat describes filesystem capacity and usage for one mount point.
type DiskStat struct {
	UsedBytes   uint64
	TotalBytes  uint64
	UsedPercent float64
}

// diskStatFromBlocks computes usage from raw filesystem-statistics block
// counts: total capacity in fragments, free fragments, and the fragment
// size in bytes.
func diskStatFromBlocks(blocks, bfree, frsize uint64) DiskStat {
	total := blocks * frsize
	free := bfree * frsize
	var used uint64
	if total > free {
		used = total - free
	}
	return DiskStat{
		UsedBytes:   used,
		TotalBytes:  total,
		UsedPercent: usedPercent(used, total),
	}
}
