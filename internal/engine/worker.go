package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"

	"github.com/bamsammich/fecode/internal/event"
	"github.com/bamsammich/fecode/internal/platform"
	"github.com/bamsammich/fecode/internal/stats"
)

// ProcessorConfig controls the per-file transform.
type ProcessorConfig struct {
	ChunkSize int // defaults to DefaultChunkSize
	Verify    bool
	DryRun    bool
	Limiter   *rate.Limiter // nil means unlimited
	Events    chan<- event.Event
	Stats     stats.Writer
}

// Processor runs file tasks one at a time with a single reusable chunk buffer.
type Processor struct {
	cfg ProcessorConfig
	buf []byte
}

// NewProcessor creates a processor with the given config.
func NewProcessor(cfg ProcessorConfig) *Processor {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.Stats == nil {
		cfg.Stats = stats.NewCollector()
	}
	return &Processor{cfg: cfg, buf: make([]byte, cfg.ChunkSize)}
}

// Process transforms one task, reporting progress through events and stats.
func (p *Processor) Process(ctx context.Context, task FileTask) error {
	p.cfg.Stats.AddFilesScanned(1)
	emitEvent(ctx, p.cfg.Events, event.Event{
		Type:      event.FileStarted,
		Path:      task.SrcPath,
		DstPath:   task.DstPath,
		Direction: task.Direction.String(),
		Size:      task.Size,
	})

	if p.cfg.DryRun {
		slog.Info("dry run", "src", task.SrcPath, "dst", task.DstPath, "direction", task.Direction)
		p.cfg.Stats.AddFilesSkipped(1)
		emitEvent(ctx, p.cfg.Events, event.Event{
			Type:    event.FileSkipped,
			Path:    task.SrcPath,
			DstPath: task.DstPath,
			Size:    task.Size,
		})
		return nil
	}

	written, err := p.ProcessFile(ctx, task)
	if err == nil && p.cfg.Verify {
		err = p.verify(ctx, task)
	}
	if err != nil {
		p.cfg.Stats.AddFilesFailed(1)
		emitEvent(ctx, p.cfg.Events, event.Event{
			Type:    event.FileFailed,
			Path:    task.SrcPath,
			DstPath: task.DstPath,
			Size:    written,
			Error:   err,
		})
		return err
	}

	p.cfg.Stats.AddFilesProcessed(1)
	emitEvent(ctx, p.cfg.Events, event.Event{
		Type:      event.FileCompleted,
		Path:      task.SrcPath,
		DstPath:   task.DstPath,
		Direction: task.Direction.String(),
		Size:      written,
	})
	return nil
}

// ProcessFile streams the source through the task's transform into the
// destination, one chunk at a time. It returns the number of bytes written.
// A destination left behind by a failed write is not removed.
func (p *Processor) ProcessFile(ctx context.Context, task FileTask) (int64, error) {
	src, err := os.Open(task.SrcPath)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", task.SrcPath, err)
	}
	defer src.Close()

	srcInfo, err := src.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", task.SrcPath, err)
	}
	if dstInfo, err := os.Stat(task.DstPath); err == nil && os.SameFile(srcInfo, dstInfo) {
		return 0, fmt.Errorf("%s: %w", task.DstPath, ErrSameFile)
	}

	if err := os.MkdirAll(filepath.Dir(task.DstPath), 0o755); err != nil {
		return 0, fmt.Errorf("create parent dir for %s: %w", task.DstPath, err)
	}

	perm := task.Mode.Perm()
	if perm == 0 {
		perm = srcInfo.Mode().Perm()
	}
	dst, err := os.OpenFile(task.DstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", task.DstPath, err)
	}

	platform.Preallocate(dst, srcInfo.Size())

	written, err := p.transcode(ctx, src, dst, task)
	if closeErr := dst.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close %s: %w", task.DstPath, closeErr)
	}
	if err != nil {
		return written, err
	}

	p.cfg.Stats.AddBytesProcessed(written)
	slog.Debug("transformed",
		"src", task.SrcPath,
		"dst", task.DstPath,
		"direction", task.Direction,
		"bytes", written,
	)
	return written, nil
}

func (p *Processor) transcode(ctx context.Context, src io.Reader, dst io.Writer, task FileTask) (int64, error) {
	fn := task.Direction.Func()
	var total int64
	for {
		n, err := io.ReadFull(src, p.buf)
		if n > 0 {
			if werr := waitN(ctx, p.cfg.Limiter, n); werr != nil {
				return total, werr
			}
			chunk := p.buf[:n]
			fn(chunk)
			if _, werr := dst.Write(chunk); werr != nil {
				return total, fmt.Errorf("write %s: %w", task.DstPath, werr)
			}
			total += int64(n)
		}
		switch {
		case err == nil:
			continue
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return total, nil
		default:
			return total, fmt.Errorf("read %s: %w", task.SrcPath, err)
		}
	}
}

func (p *Processor) verify(ctx context.Context, task FileTask) error {
	if err := VerifyTask(task); err != nil {
		if errors.Is(err, ErrVerifyMismatch) {
			p.cfg.Stats.AddFilesVerifyFailed(1)
			emitEvent(ctx, p.cfg.Events, event.Event{
				Type:    event.VerifyFailed,
				Path:    task.SrcPath,
				DstPath: task.DstPath,
				Error:   err,
			})
		}
		return err
	}
	p.cfg.Stats.AddFilesVerified(1)
	emitEvent(ctx, p.cfg.Events, event.Event{
		Type:    event.VerifyOK,
		Path:    task.SrcPath,
		DstPath: task.DstPath,
	})
	return nil
}

// emitEvent stamps e and delivers it unless ctx ends first.
func emitEvent(ctx context.Context, ch chan<- event.Event, e event.Event) {
	if ch == nil {
		return
	}
	e.Timestamp = time.Now()
	select {
	case ch <- e:
	case <-ctx.Done():
	}
}
