package blockpack

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/blockpack/blockpack/binary"
)

// writeFrames serializes blocks strictly in index order: for each
// block a uint32 original size, a uint32 compressed size, then the
// compressed payload. The stream carries no header and no trailing
// metadata.
func writeFrames(w io.Writer, blocks []Block) error {
	for i := range blocks {
		b := &blocks[i]

		if err := binary.WriteUint32(w, uint32(len(b.Raw))); err != nil {
			return err
		}
		if err := binary.WriteUint32(w, uint32(len(b.Compressed))); err != nil {
			return err
		}
		if _, err := w.Write(b.Compressed); err != nil {
			return err
		}
	}

	return nil
}

// writeContainer creates (or overwrites) path with the framed blocks.
// On any write failure the partial file is removed; a container on
// disk is either complete or absent.
func writeContainer(path string, blocks []Block) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	w := bufio.NewWriter(file)

	err = writeFrames(w, blocks)
	if err == nil {
		err = w.Flush()
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		os.Remove(path)
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
