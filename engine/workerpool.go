package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/Llucs/TurboZip/errs"
)

// runParallel dispatches fn for every index in [0, n) across a bounded
// pool of workers, writing each result into a flat slice indexed by i
// rather than a concurrent map keyed by index (section 9 design note:
// "a flat result array indexed by block index is simpler and faster").
//
// Workers pull indices in order from a shared counter but may finish out
// of order; ctx is checked between indices, never inside a single fn
// call, matching the cooperative-cancellation contract of section 5. The
// first error from any worker aborts the whole batch; in-flight workers
// finish their current item before observing it.
func runParallel[T any](ctx context.Context, n, workers int, fn func(i int) (T, error)) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	if workers <= 0 || workers > n {
		workers = n
	}

	results := make([]T, n)
	firstErr := make(chan error, 1)
	var nextIdx int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					trySend(firstErr, fmt.Errorf("%w: %w", errs.ErrCancelled, ctx.Err()))
					return
				default:
				}
				if len(firstErr) > 0 {
					return
				}

				i := int(atomic.AddInt64(&nextIdx, 1)) - 1
				if i >= n {
					return
				}

				result, err := fn(i)
				if err != nil {
					trySend(firstErr, err)
					return
				}
				results[i] = result
			}
		}()
	}

	wg.Wait()
	close(firstErr)

	if err := <-firstErr; err != nil {
		return nil, err
	}

	return results, nil
}

// trySend records err as the batch's failure if none has been recorded
// yet; subsequent errors from other workers are dropped.
func trySend(ch chan<- error, err error) {
	select {
	case ch <- err:
	default:
	}
}
