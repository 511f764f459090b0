/*
Package blockpack compresses a file by splitting it into fixed-size
blocks, compressing each block independently on a pool of worker
goroutines, and writing the result as a sequence of length-prefixed
frames.

Each frame has the following format:

	[uint32:originalSize][uint32:compressedSize][bytes(compressedSize):payload]

All integers are little-endian. Frames appear strictly in block order,
so the container produced for a given input, block size and codec is
byte-for-byte identical no matter how many workers compressed it.
There is no file header, no block count and no trailing metadata; the
container ends at end of stream.
*/
package blockpack

const (
	// DefaultBlockSize is the number of raw bytes compressed per block.
	DefaultBlockSize = 1 << 20

	// DefaultCodec is the codec used when Options.Codec is empty.
	DefaultCodec = "zlib"

	// maxBlockSize bounds the configurable block size. Frame sizes are
	// serialized as uint32, so a block (and its compressed form, which
	// may be slightly larger) must stay well inside that range.
	maxBlockSize = 1 << 30
)
