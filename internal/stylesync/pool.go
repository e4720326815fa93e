package stylesync

import "sync"

// DefaultWorkers is the number of file workers per phase
const DefaultWorkers = 4

// parallelMap applies fn to every item on a bounded set of goroutines and
// returns the results in input order. It returns only after every item has
// been processed, which makes each call a barrier.
func parallelMap[T, R any](items []T, workers int, fn func(T) R) []R {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}

	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > len(items) {
		workers = len(items)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				// Each index is written by exactly one goroutine
				results[i] = fn(items[i])
			}
		}()
	}

	for i := range items {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return results
}
