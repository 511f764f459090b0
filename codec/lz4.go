package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// lz4Codec wraps the lz4 frame format. The frame writer is used
// rather than the raw block API because CompressBlock refuses
// incompressible input (it returns zero bytes written), while a frame
// always round-trips.
type lz4Codec struct{}

func (lz4Codec) Name() string { return "lz4" }

// Bound adds the frame header, the block size words and the frame
// footer on top of the worst-case block expansion.
func (lz4Codec) Bound(n int) int {
	return lz4.CompressBlockBound(n) + 32
}

func (lz4Codec) Compress(src, dst []byte) ([]byte, error) {
	buf := bytes.NewBuffer(dst[:0])

	zw := lz4.NewWriter(buf)
	if err := zw.Apply(lz4.CompressionLevelOption(lz4.Level9)); err != nil {
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

func (lz4Codec) Decompress(src, dst []byte) error {
	zr := lz4.NewReader(bytes.NewReader(src))

	if _, err := io.ReadFull(zr, dst); err != nil {
		return err
	}

	// the frame must end exactly at the expected length
	var tail [1]byte
	if n, _ := zr.Read(tail[:]); n != 0 {
		return fmt.Errorf("lz4: frame longer than expected %d bytes", len(dst))
	}

	return nil
}
