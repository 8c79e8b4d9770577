package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bamsammich/fecode/internal/codec"
)

// Kind is the entry variant resolved once per invocation.
type Kind int

const (
	EncodeFile Kind = iota + 1
	DecodeFile
	EncodeDir
	DecodeDir
)

func (k Kind) String() string {
	switch k {
	case EncodeFile:
		return "encode-file"
	case DecodeFile:
		return "decode-file"
	case EncodeDir:
		return "encode-dir"
	case DecodeDir:
		return "decode-dir"
	default:
		return "unknown"
	}
}

// Direction returns the transform direction of k.
func (k Kind) Direction() codec.Direction {
	if k == DecodeFile || k == DecodeDir {
		return codec.DirDecode
	}
	return codec.DirEncode
}

// IsDir reports whether k is a batch mode.
func (k Kind) IsDir() bool {
	return k == EncodeDir || k == DecodeDir
}

// Mode is a resolved invocation. For file kinds Dst is the destination file;
// for directory kinds it is the destination root.
type Mode struct {
	Kind Kind
	Src  string
	Dst  string
}

// Resolve picks the variant from the source, the optional destination and
// the decode flag. A single file without the decode flag is classified by
// its extension. A decode destination derived from the source must not
// exist yet.
func Resolve(src, dst string, decode bool) (Mode, error) {
	info, err := statFile(src)
	if err != nil {
		return Mode{}, err
	}

	if info.IsDir() {
		if dst == "" {
			dst = src
		}
		if decode {
			return Mode{Kind: DecodeDir, Src: src, Dst: dst}, nil
		}
		return Mode{Kind: EncodeDir, Src: src, Dst: dst}, nil
	}

	if decode {
		if dst == "" {
			dst = src + PlainExt
			if err := checkImplicitDest(dst); err != nil {
				return Mode{}, err
			}
		} else {
			dst = intoDir(dst, src, PlainExt)
		}
		return Mode{Kind: DecodeFile, Src: src, Dst: dst}, nil
	}

	var kind Kind
	var ext string
	switch {
	case matchesExt(src, PlainExt):
		kind, ext = EncodeFile, EncodedExt
	case matchesExt(src, EncodedExt):
		kind, ext = DecodeFile, PlainExt
	default:
		return Mode{}, fmt.Errorf("%s: %w", src, ErrUnsupportedInput)
	}

	if dst == "" {
		dst = DestName(src, ext)
		if kind == DecodeFile {
			if err := checkImplicitDest(dst); err != nil {
				return Mode{}, err
			}
		}
	} else {
		dst = intoDir(dst, src, ext)
	}
	return Mode{Kind: kind, Src: src, Dst: dst}, nil
}

// checkImplicitDest fails when a decode target the user did not name already
// exists, so decoding never replaces plaintext silently.
func checkImplicitDest(dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%s: %w", dst, ErrDestinationExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", dst, err)
	}
	return nil
}

// intoDir places the derived name inside dst when dst is an existing directory.
func intoDir(dst, src, ext string) string {
	if info, err := os.Stat(dst); err == nil && info.IsDir() {
		return filepath.Join(dst, DestName(filepath.Base(src), ext))
	}
	return dst
}

func statFile(path string) (fs.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	return info, nil
}
