package engine

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bamsammich/fecode/internal/codec"
)

// ScannerConfig controls a batch-mode walk.
type ScannerConfig struct {
	SrcRoot   string
	DstRoot   string // defaults to SrcRoot
	SrcExt    string
	DstExt    string
	Direction codec.Direction
}

// Scanner enumerates the files a batch run will transform.
type Scanner struct {
	cfg ScannerConfig
}

// NewScanner creates a scanner with the given config.
func NewScanner(cfg ScannerConfig) *Scanner {
	if cfg.DstRoot == "" {
		cfg.DstRoot = cfg.SrcRoot
	}
	return &Scanner{cfg: cfg}
}

// Scan walks SrcRoot in lexical order and returns one task per regular file
// whose name matches SrcExt. Each destination keeps the file's directory
// relative to SrcRoot under DstRoot. The whole tree is listed before any
// task runs, so outputs written next to their sources are never picked up.
// Symlinks are not followed.
func (s *Scanner) Scan(ctx context.Context) ([]FileTask, error) {
	var tasks []FileTask
	err := filepath.WalkDir(s.cfg.SrcRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", path, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() || !matchesExt(d.Name(), s.cfg.SrcExt) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		rel, err := filepath.Rel(s.cfg.SrcRoot, path)
		if err != nil {
			return fmt.Errorf("rel path for %s: %w", path, err)
		}

		tasks = append(tasks, FileTask{
			SrcPath:   path,
			DstPath:   filepath.Join(s.cfg.DstRoot, DestName(rel, s.cfg.DstExt)),
			Size:      info.Size(),
			Mode:      info.Mode().Perm(),
			Direction: s.cfg.Direction,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}
