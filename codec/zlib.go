package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// zlibCodec is the default codec: a zlib (deflate) stream per block
// at BestCompression.
type zlibCodec struct{}

func (zlibCodec) Name() string { return "zlib" }

// Bound mirrors zlib's own compressBound: deflate falls back to
// stored blocks for incompressible input, costing a few bytes per
// 16 KiB plus the stream header and checksum.
func (zlibCodec) Bound(n int) int {
	return n + n>>12 + n>>14 + n>>25 + 64
}

func (zlibCodec) Compress(src, dst []byte) ([]byte, error) {
	buf := bytes.NewBuffer(dst[:0])

	zw, err := zlib.NewWriterLevel(buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(src); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (zlibCodec) Decompress(src, dst []byte) error {
	zr, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return err
	}
	defer zr.Close()

	if _, err := io.ReadFull(zr, dst); err != nil {
		return err
	}

	// the stream must end exactly at the expected length
	var tail [1]byte
	if n, _ := zr.Read(tail[:]); n != 0 {
		return fmt.Errorf("zlib: stream longer than expected %d bytes", len(dst))
	}

	return nil
}
