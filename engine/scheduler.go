package engine

import "time"

// Handle is a cancellable reference to a scheduled callback
// Cancel is idempotent; once it returns the callback will not run again
type Handle interface {
	Cancel()
}

// Scheduler runs callbacks on a single logical thread
// All callbacks of one scheduler execute sequentially, never concurrently
type Scheduler interface {
	TimeProvider

	// After runs fn once after d
	After(d time.Duration, fn func()) Handle

	// Every runs fn repeatedly with period d, first run after d
	Every(d time.Duration, fn func()) Handle
}

// NopHandle is a Handle with nothing to cancel
type NopHandle struct{}

func (NopHandle) Cancel() {}
