package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/bamsammich/fecode/internal/stats"
)

const progressEvery = 5 // ticks between progress lines

// plainPresenter writes one line per file to w and a periodic progress
// line to errW.
type plainPresenter struct {
	w          io.Writer
	errW       io.Writer
	stats      stats.ReadTicker
	root       string
	noProgress bool
	ticks      int
}

func (p *plainPresenter) Run(events <-chan Event) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			p.handleEvent(ev)
		case <-ticker.C:
			p.stats.Tick()
			p.ticks++
			if !p.noProgress && p.ticks%progressEvery == 0 {
				p.printProgress()
			}
		}
	}
}

func (p *plainPresenter) handleEvent(ev Event) {
	src := StripRoot(p.root, ev.Path)
	dst := StripRoot(p.root, ev.DstPath)
	switch ev.Type {
	case ScanComplete:
		fmt.Fprintf(p.w, "found %s files  %s\n", FormatCount(ev.Total), FormatBytes(ev.TotalSize))
	case FileCompleted:
		fmt.Fprintf(p.w, "%s -> %s  %s\n", src, dst, FormatBytes(ev.Size))
	case FileFailed:
		errMsg := "error"
		if ev.Error != nil {
			errMsg = ev.Error.Error()
		}
		fmt.Fprintf(p.w, "%s -> %s  failed: %s\n", src, dst, errMsg)
	case FileSkipped:
		// Unsupported inputs carry no destination; the command reports those.
		if ev.DstPath != "" {
			fmt.Fprintf(p.w, "%s -> %s  (dry run)\n", src, dst)
		}
	case VerifyFailed:
		fmt.Fprintf(p.w, "MISMATCH: %s\n", dst)
	case ScanStarted, FileStarted, VerifyOK:
		// silent in plain mode
	}
}

func (p *plainPresenter) printProgress() {
	snap := p.stats.Snapshot()
	speed := p.stats.RollingSpeed(progressEvery)
	if snap.BytesTotal > 0 {
		pct := float64(snap.BytesProcessed) / float64(snap.BytesTotal)
		fmt.Fprintf(p.errW, "progress: %s %.0f%% %s/%s %s/%s files %s\n",
			ProgressBar(pct, 20),
			pct*100,
			FormatBytes(snap.BytesProcessed), FormatBytes(snap.BytesTotal),
			FormatCount(snap.FilesProcessed), FormatCount(snap.FilesTotal),
			FormatRate(speed),
		)
		return
	}
	fmt.Fprintf(p.errW, "progress: %s %s files %s\n",
		FormatBytes(snap.BytesProcessed),
		FormatCount(snap.FilesProcessed),
		FormatRate(speed),
	)
}

func (p *plainPresenter) Summary() string {
	return CompletionSummary(p.stats.Snapshot())
}

// StripRoot removes a root prefix from a path, returning a clean relative path.
func StripRoot(root, path string) string {
	if root == "" {
		return path
	}
	if !strings.HasSuffix(root, string(filepath.Separator)) {
		root += string(filepath.Separator)
	}
	if strings.HasPrefix(path, root) {
		return path[len(root):]
	}
	return path
}
