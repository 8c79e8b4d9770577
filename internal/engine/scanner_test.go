package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamsammich/fecode/internal/codec"
)

func TestScanner_MatchesExtensionRecursively(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.zip"), []byte("A"))
	writeFile(t, filepath.Join(src, "sub", "b.zip"), []byte("BB"))
	writeFile(t, filepath.Join(src, "sub", "deep", "c.zip"), []byte("CCC"))
	writeFile(t, filepath.Join(src, "notes.txt"), []byte("skip"))
	writeFile(t, filepath.Join(src, "sub", "d.fe"), []byte("skip"))

	tasks, err := NewScanner(ScannerConfig{
		SrcRoot:   src,
		SrcExt:    PlainExt,
		DstExt:    EncodedExt,
		Direction: codec.DirEncode,
	}).Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	// WalkDir order is lexical.
	assert.Equal(t, filepath.Join(src, "a.zip"), tasks[0].SrcPath)
	assert.Equal(t, filepath.Join(src, "a.fe"), tasks[0].DstPath)
	assert.Equal(t, filepath.Join(src, "sub", "b.fe"), tasks[1].DstPath)
	assert.Equal(t, int64(2), tasks[1].Size)
	assert.Equal(t, filepath.Join(src, "sub", "deep", "c.fe"), tasks[2].DstPath)
	for _, task := range tasks {
		assert.Equal(t, codec.DirEncode, task.Direction)
	}
}

func TestScanner_SeparateDestinationRoot(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "sub", "b.fe"), []byte("B"))

	tasks, err := NewScanner(ScannerConfig{
		SrcRoot:   src,
		DstRoot:   dst,
		SrcExt:    EncodedExt,
		DstExt:    PlainExt,
		Direction: codec.DirDecode,
	}).Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, filepath.Join(dst, "sub", "b.zip"), tasks[0].DstPath)
}

func TestScanner_NameWithoutExtension(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "backupzip"), []byte("x"))

	tasks, err := NewScanner(ScannerConfig{SrcRoot: src, SrcExt: PlainExt, DstExt: EncodedExt}).
		Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, filepath.Join(src, "backupzip.fe"), tasks[0].DstPath)
}

func TestScanner_SkipsSymlinksAndDirs(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "real.zip"), []byte("x"))
	require.NoError(t, os.Symlink("real.zip", filepath.Join(src, "link.zip")))
	require.NoError(t, os.Mkdir(filepath.Join(src, "dir.zip"), 0o755))

	tasks, err := NewScanner(ScannerConfig{SrcRoot: src, SrcExt: PlainExt, DstExt: EncodedExt}).
		Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, filepath.Join(src, "real.zip"), tasks[0].SrcPath)
}

func TestScanner_EmptyTree(t *testing.T) {
	tasks, err := NewScanner(ScannerConfig{SrcRoot: t.TempDir(), SrcExt: PlainExt, DstExt: EncodedExt}).
		Scan(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestScanner_MissingRoot(t *testing.T) {
	_, err := NewScanner(ScannerConfig{
		SrcRoot: filepath.Join(t.TempDir(), "missing"),
		SrcExt:  PlainExt,
		DstExt:  EncodedExt,
	}).Scan(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestScanner_Cancelled(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.zip"), []byte("x"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScanner(ScannerConfig{SrcRoot: src, SrcExt: PlainExt, DstExt: EncodedExt}).Scan(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
