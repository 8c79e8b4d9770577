package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bamsammich/fecode/internal/codec"
	"github.com/bamsammich/fecode/internal/event"
	"github.com/bamsammich/fecode/internal/stats"
)

// Config describes one invocation.
type Config struct {
	Src       string
	Dst       string // optional
	Decode    bool
	ChunkSize int
	Verify    bool
	DryRun    bool
	BWLimit   int64 // bytes/s, 0 = unlimited
	Events    chan<- event.Event
	Stats     *stats.Collector
}

// Result is the outcome of a run.
type Result struct {
	Mode  Mode
	Stats stats.Snapshot
	Err   error
}

// Skipped reports whether the run ended without touching anything because
// the input was not a recognised file.
func (r Result) Skipped() bool {
	return errors.Is(r.Err, ErrUnsupportedInput)
}

// Run resolves the invocation mode and executes it, blocking until done.
// Files are processed one after another; the first failure ends the run.
func Run(ctx context.Context, cfg Config) Result {
	collector := cfg.Stats
	if collector == nil {
		collector = stats.NewCollector()
	}

	mode, err := Resolve(cfg.Src, cfg.Dst, cfg.Decode)
	if err != nil {
		if errors.Is(err, ErrUnsupportedInput) {
			collector.AddFilesSkipped(1)
			emitEvent(ctx, cfg.Events, event.Event{Type: event.FileSkipped, Path: cfg.Src, Error: err})
		}
		return Result{Stats: collector.Snapshot(), Err: err}
	}

	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	pcfg := ProcessorConfig{
		ChunkSize: chunkSize,
		Verify:    cfg.Verify,
		DryRun:    cfg.DryRun,
		Events:    cfg.Events,
		Stats:     collector,
	}
	if cfg.BWLimit > 0 {
		pcfg.Limiter = NewBWLimiter(cfg.BWLimit, chunkSize)
	}
	proc := NewProcessor(pcfg)

	slog.Debug("resolved mode", "mode", mode.Kind, "src", mode.Src, "dst", mode.Dst)

	switch mode.Kind {
	case EncodeFile:
		err = runEncodeFile(ctx, proc, mode)
	case DecodeFile:
		err = runDecodeFile(ctx, proc, mode)
	case EncodeDir:
		err = runEncodeDir(ctx, proc, mode, cfg.Events, collector)
	case DecodeDir:
		err = runDecodeDir(ctx, proc, mode, cfg.Events, collector)
	default:
		err = fmt.Errorf("unknown mode %d", mode.Kind)
	}

	return Result{Mode: mode, Stats: collector.Snapshot(), Err: err}
}

func runEncodeFile(ctx context.Context, proc *Processor, mode Mode) error {
	return runFile(ctx, proc, mode, codec.DirEncode)
}

func runDecodeFile(ctx context.Context, proc *Processor, mode Mode) error {
	return runFile(ctx, proc, mode, codec.DirDecode)
}

func runEncodeDir(ctx context.Context, proc *Processor, mode Mode, events chan<- event.Event, collector stats.Writer) error {
	return runDir(ctx, proc, ScannerConfig{
		SrcRoot:   mode.Src,
		DstRoot:   mode.Dst,
		SrcExt:    PlainExt,
		DstExt:    EncodedExt,
		Direction: codec.DirEncode,
	}, events, collector)
}

func runDecodeDir(ctx context.Context, proc *Processor, mode Mode, events chan<- event.Event, collector stats.Writer) error {
	return runDir(ctx, proc, ScannerConfig{
		SrcRoot:   mode.Src,
		DstRoot:   mode.Dst,
		SrcExt:    EncodedExt,
		DstExt:    PlainExt,
		Direction: codec.DirDecode,
	}, events, collector)
}

func runFile(ctx context.Context, proc *Processor, mode Mode, dir codec.Direction) error {
	task, err := fileTask(mode.Src, mode.Dst, dir)
	if err != nil {
		return err
	}
	proc.cfg.Stats.SetTotals(1, task.Size)
	return proc.Process(ctx, task)
}

func runDir(ctx context.Context, proc *Processor, scfg ScannerConfig, events chan<- event.Event, collector stats.Writer) error {
	emitEvent(ctx, events, event.Event{Type: event.ScanStarted, Path: scfg.SrcRoot})

	tasks, err := NewScanner(scfg).Scan(ctx)
	if err != nil {
		return err
	}

	var totalBytes int64
	for _, t := range tasks {
		totalBytes += t.Size
	}
	collector.SetTotals(int64(len(tasks)), totalBytes)
	emitEvent(ctx, events, event.Event{
		Type:      event.ScanComplete,
		Path:      scfg.SrcRoot,
		Total:     int64(len(tasks)),
		TotalSize: totalBytes,
	})
	slog.Debug("scan complete", "root", scfg.SrcRoot, "files", len(tasks), "bytes", totalBytes)

	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := proc.Process(ctx, task); err != nil {
			return err
		}
	}
	return nil
}

func fileTask(src, dst string, dir codec.Direction) (FileTask, error) {
	info, err := statFile(src)
	if err != nil {
		return FileTask{}, err
	}
	return FileTask{
		SrcPath:   src,
		DstPath:   dst,
		Size:      info.Size(),
		Mode:      info.Mode().Perm(),
		Direction: dir,
	}, nil
}
