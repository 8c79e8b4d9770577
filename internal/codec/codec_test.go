package codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripEveryByte(t *testing.T) {
	for i := range 256 {
		b := byte(i)
		assert.Equal(t, b, DecodeByte(EncodeByte(b)), "decode(encode(%#x))", b)
		assert.Equal(t, b, EncodeByte(DecodeByte(b)), "encode(decode(%#x))", b)
	}
}

func TestEncodeByteKnownValues(t *testing.T) {
	tests := []struct {
		in   byte
		want byte
	}{
		// ((0x00^0x80)+0x11)^0xb6 = 0x91^0xb6
		{in: 0x00, want: 0x27},
		// ((0x80^0x80)+0x11)^0xb6 = 0x11^0xb6
		{in: 0x80, want: 0xa7},
		// ((0x7f^0x80)+0x11) wraps to 0x10, ^0xb6
		{in: 0x7f, want: 0xa6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EncodeByte(tt.in), "EncodeByte(%#x)", tt.in)
		assert.Equal(t, tt.in, DecodeByte(tt.want), "DecodeByte(%#x)", tt.want)
	}
}

func TestEncodeIsBijective(t *testing.T) {
	seen := make(map[byte]bool, 256)
	for i := range 256 {
		seen[EncodeByte(byte(i))] = true
	}
	assert.Len(t, seen, 256)
}

func TestChunkTransformsMatchByteFunctions(t *testing.T) {
	data := make([]byte, 512)
	for i := range data {
		data[i] = byte(i)
	}

	enc := bytes.Clone(data)
	Encode(enc)
	for i, b := range data {
		require.Equal(t, EncodeByte(b), enc[i])
	}

	Decode(enc)
	assert.Equal(t, data, enc)
}

func TestEmptyChunk(t *testing.T) {
	var p []byte
	Encode(p)
	Decode(p)
	assert.Empty(t, p)
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "encode", DirEncode.String())
	assert.Equal(t, "decode", DirDecode.String())
	assert.Equal(t, "unknown", Direction(7).String())

	assert.Equal(t, DirDecode, DirEncode.Inverse())
	assert.Equal(t, DirEncode, DirDecode.Inverse())

	p := []byte("hello")
	DirEncode.Func()(p)
	DirEncode.Inverse().Func()(p)
	assert.Equal(t, []byte("hello"), p)
}

func TestReader(t *testing.T) {
	plain := bytes.Repeat([]byte("fecode-reader"), 1000)
	encoded := bytes.Clone(plain)
	Encode(encoded)

	got, err := io.ReadAll(NewReader(bytes.NewReader(encoded), Decode))
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}
