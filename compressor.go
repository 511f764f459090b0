package blockpack

import (
	"fmt"
	"os"

	"github.com/blockpack/blockpack/codec"
)

// Options configures a Compressor.
type Options struct {
	// BlockSize is the number of raw bytes per block. Zero selects
	// DefaultBlockSize.
	BlockSize int

	// Threads is the number of worker goroutines. It must be positive;
	// thread counts exceeding the block count simply leave the extra
	// workers idle.
	Threads int

	// Codec names the compression codec. Empty selects DefaultCodec.
	// The codec runs at its best-compression setting; the setting is
	// fixed for the run.
	Codec string
}

// Compressor turns input files into block-compressed containers. The
// zero value is not usable; construct one with New.
type Compressor struct {
	blockSize int
	threads   int
	codec     codec.Compressor
}

func New(opts Options) (*Compressor, error) {
	if opts.BlockSize == 0 {
		opts.BlockSize = DefaultBlockSize
	}
	if opts.Codec == "" {
		opts.Codec = DefaultCodec
	}

	if opts.BlockSize < 0 || opts.BlockSize > maxBlockSize {
		return nil, fmt.Errorf("block size must be between 1 and %d, got %d", maxBlockSize, opts.BlockSize)
	}
	if opts.Threads <= 0 {
		return nil, fmt.Errorf("thread count must be positive, got %d", opts.Threads)
	}

	comp := codec.Compression(opts.Codec)
	if comp == nil {
		return nil, fmt.Errorf("unknown codec %q", opts.Codec)
	}

	return &Compressor{
		blockSize: opts.BlockSize,
		threads:   opts.Threads,
		codec:     comp,
	}, nil
}

// CompressFile reads inputPath fully into memory, partitions it into
// blocks, compresses every block in parallel, and writes the container
// to outputPath. The stages run strictly in sequence: nothing is
// written until every worker has joined, so a codec failure leaves
// outputPath untouched.
func (c *Compressor) CompressFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	blocks := Partition(data, c.blockSize)

	if err := compressAll(blocks, c.codec, c.threads); err != nil {
		return err
	}

	return writeContainer(outputPath, blocks)
}
