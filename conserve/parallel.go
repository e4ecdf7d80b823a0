// Package conserve: static fork-join over contiguous 1-indexed ranges.
package conserve

import "sync"

// forEachChunk splits the 1-indexed range [1, n] into at most `workers`
// contiguous chunks of near-equal size and runs fn(lo, hi) for each chunk
// on its own goroutine, returning when all have finished.
//
// The split is static (no work stealing): per-index cost is uniform in both
// reduction phases, so equal chunks give predictable load, and contiguous
// ownership means no two workers ever touch the same index.
//
// n < 1 runs nothing; workers is clamped to [1, n] so no goroutine gets an
// empty range.
func forEachChunk(n, workers int, fn func(lo, hi int)) {
	if n < 1 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		fn(1, n)

		return
	}

	size := n / workers
	extra := n % workers // the first `extra` chunks take one more index

	var wg sync.WaitGroup
	wg.Add(workers)
	lo := 1
	for w := 0; w < workers; w++ {
		hi := lo + size - 1
		if w < extra {
			hi++
		}
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
		lo = hi + 1
	}
	wg.Wait()
}
