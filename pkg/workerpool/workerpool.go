// Package workerpool provides bounded fan-out helpers with first-error-wins semantics.
package workerpool

import (
	"context"
	"sync"
)

// Process runs a worker pool over the provided work items, invoking process for each.
// If process returns an error, the pool cancels the context and stops further work.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan T, workerCount)
	errs := make(chan error, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, item); err != nil {
						select {
						case errs <- err:
						default:
						}
						if onCancel != nil {
							onCancel()
						}
						cancel()
						return
					}
				}
			}
		}()
	}

	go func() {
		for _, item := range items {
			select {
			case <-ctx.Done():
				close(tasks)
				return
			case tasks <- item:
			}
		}
		close(tasks)
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

type indexed[T any] struct {
	index int
	item  T
}

// Map runs fn over items on workerCount workers and returns the results in
// item order. The first error cancels the remaining work and is returned.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	if len(items) == 0 {
		return nil, nil
	}
	workerCount = max(1, min(workerCount, len(items)))

	tasks := make([]indexed[T], len(items))
	for i, item := range items {
		tasks[i] = indexed[T]{index: i, item: item}
	}

	results := make([]R, len(items))
	err := Process(ctx, workerCount, tasks, func(ctx context.Context, task indexed[T]) error {
		result, err := fn(ctx, task.item)
		if err != nil {
			return err
		}
		results[task.index] = result
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Chunk splits items into consecutive slices of at most size elements.
func Chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return [][]T{}
	}
	if size <= 0 {
		size = len(items)
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
