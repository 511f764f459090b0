package codec

import (
	"fmt"

	"github.com/golang/snappy"
)

type snappyCodec struct{}

func (snappyCodec) Name() string { return "snappy" }

func (snappyCodec) Bound(n int) int {
	return snappy.MaxEncodedLen(n)
}

func (snappyCodec) Compress(src, dst []byte) ([]byte, error) {
	return snappy.Encode(dst, src), nil
}

func (snappyCodec) Decompress(src, dst []byte) error {
	out, err := snappy.Decode(dst, src)
	if err != nil {
		return err
	}
	if len(out) != len(dst) {
		return fmt.Errorf("snappy: expected %d bytes decompressed, got %d", len(dst), len(out))
	}
	// the decoder should not have had to realloc the buffer
	if len(out) != 0 && &out[0] != &dst[0] {
		return fmt.Errorf("snappy: output buffer realloc'd")
	}

	return nil
}
