package blockpack

import "fmt"

// CodecError reports the block that failed to compress. It is fatal
// for the whole run; no output is written once any block has failed.
type CodecError struct {
	Block int
	Err   error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("compress block %d: %v", e.Block, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }
