// Package codec provides a unified interface wrapping third-party
// compression libraries. Every codec runs at its best-compression
// setting; the setting is not configurable per call.
package codec

// Compressor is the interface the dispatcher uses to compress one
// block at a time.
//
// Compress must be safe to call simultaneously from multiple
// goroutines.
type Compressor interface {
	// Name is the name of the compression algorithm.
	Name() string

	// Bound returns an upper bound on the compressed size of n input
	// bytes. Even incompressible input fits in Bound(n) bytes.
	Bound(n int) int

	// Compress compresses src into dst, which must have at least
	// Bound(len(src)) capacity, and returns dst truncated to the
	// actual compressed length.
	Compress(src, dst []byte) ([]byte, error)
}

// Decompressor is the inverse interface, used to read frames back.
//
// It must be safe to make multiple calls to Decompress simultaneously
// from different goroutines.
type Decompressor interface {
	// Name is the name of the compression algorithm.
	// See also Compressor.Name.
	Name() string

	// Decompress fills dst, whose length must equal the original
	// uncompressed size, from the compressed bytes in src. It errors
	// out if src does not decode to exactly len(dst) bytes.
	Decompress(src, dst []byte) error
}

// Names lists the available codecs.
func Names() []string {
	return []string{"zlib", "snappy", "s2", "zstd", "lz4"}
}

// Compression selects a compression algorithm by name. The returned
// Compressor reports the same value from Name. Unknown names return
// nil.
func Compression(name string) Compressor {
	switch name {
	case "zlib":
		return zlibCodec{}
	case "snappy":
		return snappyCodec{}
	case "s2":
		return s2Codec{}
	case "zstd":
		return zstdCodec{}
	case "lz4":
		return lz4Codec{}
	default:
		return nil
	}
}

// Decompression selects a decompression algorithm by name.
func Decompression(name string) Decompressor {
	switch name {
	case "zlib":
		return zlibCodec{}
	case "snappy":
		return snappyCodec{}
	case "s2":
		return s2Codec{}
	case "zstd":
		return zstdCodec{}
	case "lz4":
		return lz4Codec{}
	default:
		return nil
	}
}
