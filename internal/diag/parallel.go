package diag

import (
	"runtime"
	"sync"
)

// getWorkers returns the requested worker count or a sane default.
func getWorkers(n int) int {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n < 1 {
		n = 1
	}
	return n
}

// runIndexedParallel executes fn for indices [0,n) using a worker pool and
// returns the results keyed by index, so output ordering is independent of
// scheduling and worker count.
func runIndexedParallel[T any](n, workers int, fn func(int) T) []T {
	jobs := make(chan int)
	out := make([]T, n)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for idx := range jobs {
			out[idx] = fn(idx)
		}
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go worker()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return out
}
