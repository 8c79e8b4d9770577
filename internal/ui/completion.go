package ui

import (
	"fmt"

	"github.com/bamsammich/fecode/internal/stats"
)

// CompletionSummary builds the final summary line from a snapshot.
// Format: done ✓  files 12  size 4.2 MiB  avg 380 MB/s  time 0s  errors 0
func CompletionSummary(snap stats.Snapshot) string {
	avgSpeed := 0.0
	if snap.Elapsed.Seconds() > 0 {
		avgSpeed = float64(snap.BytesProcessed) / snap.Elapsed.Seconds()
	}

	icon := "✓"
	if snap.FilesFailed > 0 {
		icon = "✗"
	}

	base := fmt.Sprintf("done %s  files %s  size %s  avg %s  time %s",
		icon,
		FormatCount(snap.FilesProcessed),
		FormatBytes(snap.BytesProcessed),
		FormatRate(avgSpeed),
		FormatDuration(snap.Elapsed),
	)

	if snap.FilesVerified > 0 || snap.FilesVerifyFailed > 0 {
		base += fmt.Sprintf("  verified %s", FormatCount(snap.FilesVerified))
	}
	if snap.FilesSkipped > 0 {
		base += fmt.Sprintf("  skipped %s", FormatCount(snap.FilesSkipped))
	}

	return base + fmt.Sprintf("  errors %d", snap.FilesFailed)
}
