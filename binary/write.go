// Package binary reads and writes the fixed-width little-endian
// integers used by container frame headers.
package binary

import (
	"encoding/binary"
	"io"
)

func WriteUint32(w io.Writer, num uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], num)

	_, err := w.Write(b[:])
	return err
}
