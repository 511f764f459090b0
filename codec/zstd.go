package codec

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// zstdEncoder and zstdDecoder are shared across calls; both are safe
// for concurrent EncodeAll/DecodeAll use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		panic(err)
	}
	zstdEncoder = enc

	dec, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}
	zstdDecoder = dec
}

type zstdCodec struct{}

func (zstdCodec) Name() string { return "zstd" }

// Bound is conservative: zstd stores incompressible input in raw
// blocks at a few bytes of overhead per 128 KiB plus the frame
// header.
func (zstdCodec) Bound(n int) int {
	return n + n>>8 + 64
}

func (zstdCodec) Compress(src, dst []byte) ([]byte, error) {
	return zstdEncoder.EncodeAll(src, dst[:0]), nil
}

func (zstdCodec) Decompress(src, dst []byte) error {
	out, err := zstdDecoder.DecodeAll(src, dst[:0:len(dst)])
	if err != nil {
		return err
	}
	if len(out) != len(dst) {
		return fmt.Errorf("zstd: expected %d bytes decompressed, got %d", len(dst), len(out))
	}
	// the decoder should not have had to realloc the buffer
	if len(out) != 0 && &out[0] != &dst[0] {
		return fmt.Errorf("zstd: output buffer realloc'd")
	}

	return nil
}
