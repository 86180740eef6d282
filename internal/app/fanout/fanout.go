// Package fanout runs a function over a slice with a fixed pool of workers
// and returns one result per input, in input order.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
type Result[R any] struct {
	Value R
	Err   error
}

// Failure pairs an input item with the error it produced.
type Failure[T any] struct {
	Item T
	Err  error
}

// Run executes fn for every item using at most workers goroutines.
// Items not yet started when ctx is canceled get ctx.Err() and fn is not
// called for them. Run blocks until every item has a result. workers < 1 is
// treated as 1.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	workers = min(max(workers, 1), len(items))
	next := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range next {
				if err := ctx.Err(); err != nil {
					results[idx] = Result[R]{Err: err}
					continue
				}
				val, err := fn(ctx, items[idx])
				results[idx] = Result[R]{Value: val, Err: err}
			}
		}()
	}

	for i := range items {
		next <- i
	}
	close(next)
	wg.Wait()

	return results
}

// Split separates results into successful values and per-item failures.
// items and results must be the arguments and return value of the same Run.
func Split[T, R any](items []T, results []Result[R]) ([]R, []Failure[T]) {
	var ok []R
	var failed []Failure[T]
	for i, r := range results {
		if r.Err != nil {
			failed = append(failed, Failure[T]{Item: items[i], Err: r.Err})
			continue
		}
		ok = append(ok, r.Value)
	}
	return ok, failed
}
