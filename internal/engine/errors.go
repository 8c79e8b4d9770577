package engine

import "errors"

var (
	// ErrUnsupportedInput reports a single file whose extension selects
	// neither direction. The file is skipped; the run is not failed.
	ErrUnsupportedInput = errors.New("unsupported input: only .zip and .fe files are handled")

	// ErrDestinationExists reports an implicit decode destination that is
	// already present. Nothing is written.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrVerifyMismatch reports an output whose inverse transform does not
	// reproduce the source.
	ErrVerifyMismatch = errors.New("verification mismatch")

	// ErrSameFile reports a destination that resolves to the source itself.
	ErrSameFile = errors.New("source and destination are the same file")
)
