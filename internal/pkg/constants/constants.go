// Package constants provides shared defaults used across bsdmon components.
package constants

import "time"

const (
	// DefaultSampleInterval spaces the two CPU tick samples the usage
	// estimate is computed from.
	DefaultSampleInterval = 1 * time.Second

	// RootMountPoint is the filesystem the disk section reports on.
	RootMountPoint = "/"

	// DefaultLogLevel is the log level used when none is configured.
	// The report itself goes to stdout; logs exist for diagnosing
	// collector failures, so only warnings and up by default.
	DefaultLogLevel = "warn"
)
