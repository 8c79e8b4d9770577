// Package codec implements the fixed, keyless byte mapping used by fecode.
//
// The mapping is an obfuscation, not encryption: anyone with this package can
// invert it.
package codec

import "io"

const (
	xorIn  = 0x80
	add    = 0x11
	xorOut = 0xb6
)

var (
	encodeTable [256]byte
	decodeTable [256]byte
)

func init() {
	for i := range 256 {
		b := byte(i)
		encodeTable[i] = EncodeByte(b)
		decodeTable[i] = DecodeByte(b)
	}
}

// EncodeByte maps a single plaintext byte to its encoded form.
func EncodeByte(b byte) byte {
	return ((b ^ xorIn) + add) ^ xorOut
}

// DecodeByte is the exact inverse of EncodeByte.
func DecodeByte(b byte) byte {
	return ((b ^ xorOut) - add) ^ xorIn
}

// Encode transforms p in place.
func Encode(p []byte) {
	for i, b := range p {
		p[i] = encodeTable[b]
	}
}

// Decode transforms p in place.
func Decode(p []byte) {
	for i, b := range p {
		p[i] = decodeTable[b]
	}
}

// Func transforms a chunk in place. Implementations keep no state between
// calls, so chunks may be any size.
type Func func(p []byte)

// Direction selects the forward or inverse transform.
type Direction int

const (
	DirEncode Direction = iota
	DirDecode
)

func (d Direction) String() string {
	switch d {
	case DirEncode:
		return "encode"
	case DirDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Func returns the chunk transform for d.
func (d Direction) Func() Func {
	if d == DirDecode {
		return Decode
	}
	return Encode
}

// Inverse returns the direction that undoes d.
func (d Direction) Inverse() Direction {
	if d == DirDecode {
		return DirEncode
	}
	return DirDecode
}

// reader applies a Func to everything read from the underlying reader.
type reader struct {
	r  io.Reader
	fn Func
}

// NewReader wraps r so that every byte read has fn applied.
func NewReader(r io.Reader, fn Func) io.Reader {
	return &reader{r: r, fn: fn}
}

func (cr *reader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	if n > 0 {
		cr.fn(p[:n])
	}
	return n, err
}
