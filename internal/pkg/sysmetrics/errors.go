package sysmetrics

import "errors"

var (
	// ErrUnavailable indicates a kernel interface could not be reached or
	// returned a failure status.
	ErrUnavailable = errors.New("system counters unavailable")

	// ErrMalformed indicates kernel data did not match the expected format.
	ErrMalformed = errors.New("malformed system counter data")

	// ErrPlatformUnsupported indicates no collector exists for this platform.
	ErrPlatformUnsupported = errors.New("platform not supported")
)
