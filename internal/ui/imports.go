package ui

import "github.com/bamsammich/fecode/internal/event"

// Event is the engine event consumed by presenters.
type Event = event.Event

// Re-export event types for convenience.
const (
	ScanStarted   = event.ScanStarted
	ScanComplete  = event.ScanComplete
	FileStarted   = event.FileStarted
	FileCompleted = event.FileCompleted
	FileFailed    = event.FileFailed
	FileSkipped   = event.FileSkipped
	VerifyOK      = event.VerifyOK
	VerifyFailed  = event.VerifyFailed
)
