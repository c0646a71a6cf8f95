package utils

import "sync"

type Result[T any] struct {
	Index int
	Value T
	Error error
}

// RunInPool applies worker to every input using at most maxWorkers goroutines.
// Results are returned in input order.
func RunInPool[In any, Out any](inputs []In, maxWorkers int, worker func(In) (Out, error)) []Result[Out] {
	results := make([]Result[Out], len(inputs))
	if len(inputs) == 0 {
		return results
	}

	queue := make(chan int, len(inputs))
	for i := range inputs {
		queue <- i
	}
	close(queue)

	workers := max(1, min(len(inputs), maxWorkers))

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for i := range queue {
				value, err := worker(inputs[i])
				results[i] = Result[Out]{Index: i, Value: value, Error: err}
			}
		}()
	}
	wg.Wait()

	return results
}
