package fasting

import "errors"

// Lifecycle rejections. All are synchronous, non-fatal, and leave
// state untouched; callers check them with errors.Is.
var (
	// ErrUnknownProtocol is returned by Start for a protocol id that is
	// not in the catalog.
	ErrUnknownProtocol = errors.New("unknown fasting protocol")

	// ErrFastAlreadyActive is returned by Start while a fast is active.
	ErrFastAlreadyActive = errors.New("a fast is already active")

	// ErrNoActiveFast is returned by Pause, Resume and End when no fast
	// is active.
	ErrNoActiveFast = errors.New("no active fast")
)
