package engine

import (
	"io/fs"

	"github.com/bamsammich/fecode/internal/codec"
)

// FileTask describes a single transform: one source file to one destination.
type FileTask struct {
	SrcPath   string
	DstPath   string
	Size      int64
	Mode      fs.FileMode // permission bits applied to a newly created destination
	Direction codec.Direction
}
