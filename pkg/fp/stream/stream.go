package stream

import (
	"context"
	"sync"
)

// Through runs a type-changing stage over every envelope from in, with the
// given number of pump workers. The returned channel closes when the input
// is exhausted or every worker has stopped on cancellation. workers <= 0
// falls back to the context-carried count, then to a single worker.
func Through[In, Out any](ctx context.Context, in <-chan Envelope[In],
	st Stage[In, Out], workers int) <-chan Envelope[Out] {
	return ThroughWith(ctx, in, st, CancelHandlers[In, Out]{}, workers)
}

// ThroughWith is Through with explicit cancellation handlers.
func ThroughWith[In, Out any](ctx context.Context, in <-chan Envelope[In],
	st Stage[In, Out], handlers CancelHandlers[In, Out], workers int) <-chan Envelope[Out] {

	out := make(chan Envelope[Out])
	wg := &sync.WaitGroup{}

	for range resolveWorkers(ctx, workers) {
		wg.Add(1)
		go Pump(ctx, in, out, st, handlers, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Run is Through for stages that keep the value type.
func Run[A any](ctx context.Context, in <-chan Envelope[A],
	st Stage[A, A], workers int) <-chan Envelope[A] {
	return Through(ctx, in, st, workers)
}

// RunWith is ThroughWith for stages that keep the value type.
func RunWith[A any](ctx context.Context, in <-chan Envelope[A],
	st Stage[A, A], handlers CancelHandlers[A, A], workers int) <-chan Envelope[A] {
	return ThroughWith(ctx, in, st, handlers, workers)
}

func resolveWorkers(ctx context.Context, workers int) int {
	if workers > 0 {
		return workers
	}
	return WorkerCount(ctx, 1)
}
