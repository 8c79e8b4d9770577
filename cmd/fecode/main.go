package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bamsammich/fecode/internal/config"
	"github.com/bamsammich/fecode/internal/engine"
	"github.com/bamsammich/fecode/internal/event"
	"github.com/bamsammich/fecode/internal/stats"
	"github.com/bamsammich/fecode/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

// sizeFlag is a pflag.Value accepting human-readable sizes (64K, 1M).
type sizeFlag struct {
	n   int64
	raw string
}

var _ pflag.Value = (*sizeFlag)(nil)

func (s *sizeFlag) String() string { return s.raw }
func (*sizeFlag) Type() string     { return "size" }

func (s *sizeFlag) Set(val string) error {
	n, err := config.ParseSize(val)
	if err != nil {
		return err
	}
	s.n, s.raw = n, val
	return nil
}

type options struct {
	decode     bool
	verify     bool
	dryRun     bool
	verbose    bool
	quiet      bool
	noProgress bool
	logFile    string
	chunkSize  sizeFlag
	bwLimit    sizeFlag
}

//nolint:revive // cognitive-complexity: CLI entry point wires logging, config and presenter
func run(args []string) int {
	var (
		opts        options
		showVersion bool
	)
	opts.chunkSize = sizeFlag{n: engine.DefaultChunkSize, raw: "64K"}

	rootCmd := &cobra.Command{
		Use:   "fecode [flags] <source> [destination]",
		Short: "Encode .zip files to .fe and back with a fixed byte transform",
		Long: `fecode applies a fixed, reversible byte transform to a single file or to
every matching file under a directory.

Without --decode, a single file is encoded when it ends in zip and decoded
when it ends in fe; a directory is encoded. The transform is an obfuscation,
not encryption.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				return nil
			}
			return cobra.RangeArgs(1, 2)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "fecode %s\n", version)
				return nil
			}

			src := args[0]
			var dst string
			if len(args) == 2 {
				dst = args[1]
			}

			cfg, err := config.Load()
			if err != nil {
				slog.Warn("failed to load config", "path", config.Path(), "error", err)
			}
			if err := applyConfigDefaults(cmd, cfg.Defaults, &opts); err != nil {
				return err
			}
			if err := config.CheckChunkSize(opts.chunkSize.n); err != nil {
				return fmt.Errorf("invalid --chunk-size %q: %w", opts.chunkSize.raw, err)
			}

			closeLog, err := setupLogging(opts)
			if err != nil {
				return err
			}
			defer closeLog()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return execute(ctx, cmd, src, dst, opts)
		},
	}

	rootCmd.Flags().BoolVar(&showVersion, "version", false, "print version and exit")
	rootCmd.Flags().BoolVarP(&opts.decode, "decode", "d", false, "decode instead of inferring the direction")
	rootCmd.Flags().BoolVar(&opts.verify, "verify", false, "verify each output by BLAKE3 after writing")
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "show what would be written without writing")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress all output except errors")
	rootCmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "disable periodic progress lines")
	rootCmd.Flags().StringVar(&opts.logFile, "log", "", "write structured JSON log to FILE")
	rootCmd.Flags().Var(&opts.chunkSize, "chunk-size", "read/write unit (e.g. 64K, 1M)")
	rootCmd.Flags().Var(&opts.bwLimit, "bwlimit", "read bandwidth limit per second (e.g. 10M)")

	rootCmd.AddCommand(docsCmd)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

// execute runs the engine with a presenter draining its events.
func execute(ctx context.Context, cmd *cobra.Command, src, dst string, opts options) error {
	collector := stats.NewCollector()
	events := make(chan event.Event, 256)

	presenterEvents := (<-chan event.Event)(events)
	if opts.logFile != "" {
		presenterEvents = teeToLog(events)
	}

	root := src
	if info, err := os.Stat(src); err == nil && !info.IsDir() {
		root = ""
	}
	presenter := ui.NewPresenter(ui.Config{
		Writer:     cmd.OutOrStdout(),
		ErrWriter:  cmd.ErrOrStderr(),
		Stats:      collector,
		Root:       root,
		Quiet:      opts.quiet,
		NoProgress: opts.noProgress || !ui.IsTTY(os.Stderr.Fd()),
	})

	var presenterErr error
	var presenterWg sync.WaitGroup
	presenterWg.Add(1)
	go func() {
		defer presenterWg.Done()
		presenterErr = presenter.Run(presenterEvents)
	}()

	slog.Debug("starting",
		"src", src,
		"dst", dst,
		"decode", opts.decode,
		"chunk_size", opts.chunkSize.n,
		"verify", opts.verify,
	)

	result := engine.Run(ctx, engine.Config{
		Src:       src,
		Dst:       dst,
		Decode:    opts.decode,
		ChunkSize: int(opts.chunkSize.n),
		Verify:    opts.verify,
		DryRun:    opts.dryRun,
		BWLimit:   opts.bwLimit.n,
		Events:    events,
		Stats:     collector,
	})
	close(events)
	presenterWg.Wait()
	if presenterErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "presenter: %v\n", presenterErr)
	}

	return finish(cmd, presenter, result, opts.quiet)
}

// finish reports the result and maps it to an exit status.
func finish(cmd *cobra.Command, presenter ui.Presenter, result engine.Result, quiet bool) error {
	switch {
	case result.Err == nil:
		if !quiet {
			if summary := presenter.Summary(); summary != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), summary)
			}
		}
		return nil
	case result.Skipped():
		// Reported but not fatal.
		fmt.Fprintf(cmd.ErrOrStderr(), "[error]: %v\n", result.Err)
		return nil
	case errors.Is(result.Err, engine.ErrDestinationExists):
		slog.Error("refusing to overwrite", "error", result.Err)
		return &exitError{code: 2}
	default:
		slog.Error("transform failed", "mode", result.Mode.Kind, "error", result.Err)
		if result.Stats.FilesProcessed > 0 {
			return &exitError{code: 1} // partial failure
		}
		return &exitError{code: 2}
	}
}

// setupLogging installs the default slog logger: text on stderr, plus a
// JSON file when --log is set. The returned func closes the log file.
func setupLogging(opts options) (func(), error) {
	logLevel := slog.LevelInfo
	switch {
	case opts.verbose:
		logLevel = slog.LevelDebug
	case opts.quiet:
		logLevel = slog.LevelWarn
	}
	textHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})

	if opts.logFile == "" {
		slog.SetDefault(slog.New(textHandler))
		return func() {}, nil
	}

	lf, err := os.Create(opts.logFile)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	jsonHandler := slog.NewJSONHandler(lf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(ui.NewMultiHandler(textHandler, jsonHandler)).
		With("run", uuid.NewString())
	slog.SetDefault(logger)
	return func() { _ = lf.Close() }, nil
}

// teeToLog writes a structured record for every event before forwarding it.
func teeToLog(events <-chan event.Event) <-chan event.Event {
	teed := make(chan event.Event, 256)
	go func() {
		defer close(teed)
		for ev := range events {
			attrs := []slog.Attr{
				slog.String("type", ev.Type.String()),
				slog.String("path", ev.Path),
				slog.Int64("size", ev.Size),
			}
			if ev.DstPath != "" {
				attrs = append(attrs, slog.String("dst", ev.DstPath))
			}
			if ev.Direction != "" {
				attrs = append(attrs, slog.String("direction", ev.Direction))
			}
			if ev.Error != nil {
				attrs = append(attrs, slog.String("error", ev.Error.Error()))
			}
			slog.LogAttrs(context.Background(), slog.LevelDebug, "fecode.event", attrs...)
			teed <- ev
		}
	}()
	return teed
}

// applyConfigDefaults applies config file defaults for flags not explicitly
// set on the CLI.
func applyConfigDefaults(cmd *cobra.Command, defaults config.DefaultsConfig, opts *options) error {
	if !cmd.Flags().Changed("verify") && defaults.Verify != nil {
		opts.verify = *defaults.Verify
	}
	if !cmd.Flags().Changed("no-progress") && defaults.NoProgress != nil {
		opts.noProgress = *defaults.NoProgress
	}
	if !cmd.Flags().Changed("chunk-size") && defaults.ChunkSize != nil {
		if err := opts.chunkSize.Set(*defaults.ChunkSize); err != nil {
			return fmt.Errorf("config chunk_size: %w", err)
		}
	}
	if !cmd.Flags().Changed("bwlimit") && defaults.BWLimit != nil {
		if err := opts.bwLimit.Set(*defaults.BWLimit); err != nil {
			return fmt.Errorf("config bwlimit: %w", err)
		}
	}
	return nil
}

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}
