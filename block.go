package blockpack

import (
	"github.com/blockpack/blockpack/codec"
)

// Block is one fixed-size slice of the input and the unit of
// independent compression. Raw points into the input buffer rather
// than copying it; the input is never mutated, so sharing is safe.
// Compressed is filled in by exactly one worker during dispatch.
type Block struct {
	Index      int
	Raw        []byte
	Compressed []byte
}

// Partition splits buf into consecutive blocks of at most blockSize
// bytes each. Blocks are non-overlapping, cover buf exactly once, and
// only the last block may be shorter than blockSize. An empty buffer
// produces no blocks.
func Partition(buf []byte, blockSize int) []Block {
	if len(buf) == 0 {
		return nil
	}

	n := (len(buf) + blockSize - 1) / blockSize
	blocks := make([]Block, n)

	for i := range blocks {
		start := i * blockSize
		end := start + blockSize
		if end > len(buf) {
			end = len(buf)
		}

		blocks[i] = Block{Index: i, Raw: buf[start:end]}
	}

	return blocks
}

// compress fills b.Compressed from b.Raw. The destination buffer is
// sized by the codec's own upper bound and truncated by the codec to
// the actual compressed length.
func (b *Block) compress(comp codec.Compressor) error {
	dst := make([]byte, comp.Bound(len(b.Raw)))

	out, err := comp.Compress(b.Raw, dst)
	if err != nil {
		return &CodecError{Block: b.Index, Err: err}
	}

	b.Compressed = out
	return nil
}
