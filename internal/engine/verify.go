package engine

import (
	"fmt"
)

// VerifyError records a single mismatch between a source and the inverse
// transform of its output.
type VerifyError struct {
	SrcPath string
	DstPath string
	SrcHash string
	DstHash string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("%s -> %s: source %s, restored %s", e.SrcPath, e.DstPath, e.SrcHash, e.DstHash)
}

func (e *VerifyError) Unwrap() error { return ErrVerifyMismatch }

// VerifyTask checks that undoing the task's transform on its destination
// reproduces the source byte for byte.
func VerifyTask(task FileTask) error {
	srcHash, err := HashFile(task.SrcPath)
	if err != nil {
		return err
	}
	dstHash, err := HashTransformed(task.DstPath, task.Direction.Inverse().Func())
	if err != nil {
		return err
	}
	if srcHash != dstHash {
		return &VerifyError{
			SrcPath: task.SrcPath,
			DstPath: task.DstPath,
			SrcHash: srcHash,
			DstHash: dstHash,
		}
	}
	return nil
}
