// Package fanout runs independent, side-effecting jobs (such as delivering a
// payroll report to several destinations) on a bounded number of goroutines
// and collects their outcomes in input order.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result holds the outcome of one job: Value on success, Err on failure.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight and
// returns the results in item order. A maxWorkers below one is treated as
// one.
//
// An item still waiting for a worker when ctx is cancelled is not run; its
// result carries ctx.Err(). Calls already in flight are left to observe ctx
// themselves. Run returns once every call has finished.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := make(chan struct{}, max(maxWorkers, 1))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		})
	}

	wg.Wait()
	return results
}

// Join returns the errors of all failed results joined in item order, or
// nil if every job succeeded.
func Join[R any](results []Result[R]) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
