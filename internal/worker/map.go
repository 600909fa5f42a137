// Package worker provides the bounded fan-out used for upstream
// requests, keeping concurrent calls under the per-token rate limit.
package worker

import "sync"

// Map applies fn to every item with at most concurrency calls in
// flight, using a fixed pool of goroutines pulling from a job channel.
// Results arrive in completion order, not input order; callers key
// results by identity fields, not position. fn is expected to capture
// its own failures into R, so one item never aborts the batch.
func Map[T, R any](items []T, concurrency int, fn func(T) R) []R {
	results := make([]R, 0, len(items))
	if len(items) == 0 {
		return results
	}
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(items) {
		concurrency = len(items)
	}

	jobs := make(chan T)
	out := make(chan R)

	var wg sync.WaitGroup
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			for item := range jobs {
				out <- fn(item)
			}
		}()
	}

	go func() {
		for _, item := range items {
			jobs <- item
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(out)
	}()

	for r := range out {
		results = append(results, r)
	}
	return results
}
