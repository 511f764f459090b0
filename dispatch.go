package blockpack

import (
	"sync"

	"github.com/blockpack/blockpack/codec"
)

// compressAll compresses every block using up to threads worker
// goroutines. Work is split statically: worker t owns the contiguous
// range [t*chunk, (t+1)*chunk) of the block sequence. Ranges are
// disjoint, so each Compressed field has exactly one writer and no
// lock guards the per-block stores; the WaitGroup join is the only
// synchronization point.
//
// A worker stops at its first failure, but the other workers always
// run to completion. After all workers have joined, the failure of
// the lowest-numbered worker is returned as a *CodecError.
func compressAll(blocks []Block, comp codec.Compressor, threads int) error {
	if len(blocks) == 0 {
		return nil
	}
	if threads > len(blocks) {
		threads = len(blocks)
	}

	chunk := (len(blocks) + threads - 1) / threads
	errs := make([]error, threads)

	var wg sync.WaitGroup

	for t := 0; t < threads; t++ {
		start := t * chunk
		if start >= len(blocks) {
			break
		}

		end := start + chunk
		if end > len(blocks) {
			end = len(blocks)
		}

		wg.Add(1)
		go func(t, start, end int) {
			defer wg.Done()

			for i := start; i < end; i++ {
				if err := blocks[i].compress(comp); err != nil {
					errs[t] = err
					return
				}
			}
		}(t, start, end)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
