package codec

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

type s2Codec struct{}

func (s2Codec) Name() string { return "s2" }

func (s2Codec) Bound(n int) int {
	return s2.MaxEncodedLen(n)
}

func (s2Codec) Compress(src, dst []byte) ([]byte, error) {
	return s2.EncodeBest(dst, src), nil
}

func (s2Codec) Decompress(src, dst []byte) error {
	out, err := s2.Decode(dst, src)
	if err != nil {
		return err
	}
	if len(out) != len(dst) {
		return fmt.Errorf("s2: expected %d bytes decompressed, got %d", len(dst), len(out))
	}
	// the decoder should not have had to realloc the buffer
	if len(out) != 0 && &out[0] != &dst[0] {
		return fmt.Errorf("s2: output buffer realloc'd")
	}

	return nil
}
