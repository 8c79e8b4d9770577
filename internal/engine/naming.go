package engine

import (
	"path/filepath"
	"strings"
)

const (
	// DefaultChunkSize is the read/write unit of the file processor.
	DefaultChunkSize = 64 * 1024

	// PlainExt names plaintext inputs, EncodedExt names encoded outputs.
	PlainExt   = ".zip"
	EncodedExt = ".fe"
)

// matchesExt reports whether name ends with ext's bare suffix, so "zip"
// matches "a.zip" and also "backupzip".
func matchesExt(name, ext string) bool {
	return strings.HasSuffix(name, strings.TrimPrefix(ext, "."))
}

// DestName replaces the trailing extension of name with ext, or appends ext
// when name has none. Leading dots never start an extension, so ".zip"
// becomes ".zip.fe". Only the base element of name is rewritten.
func DestName(name, ext string) string {
	dir, base := filepath.Split(name)
	stem := base
	if i := strings.LastIndexByte(base, '.'); i > 0 && strings.Trim(base[:i], ".") != "" {
		stem = base[:i]
	}
	return dir + stem + ext
}
