package engine

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"

	"github.com/bamsammich/fecode/internal/codec"
)

// HashFile computes the BLAKE3 hash of the file at path, returning the
// hex-encoded digest.
func HashFile(path string) (string, error) {
	return hashFile(path, nil)
}

// HashTransformed hashes the file at path as it reads after fn is applied
// to every byte, without writing anything.
func HashTransformed(path string, fn codec.Func) (string, error) {
	return hashFile(path, fn)
}

func hashFile(path string, fn codec.Func) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if fn != nil {
		r = codec.NewReader(f, fn)
	}

	h := blake3.New()
	buf := make([]byte, 32*1024)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
