package stream

import "context"

type optionKey string

const (
	workerOptionKey optionKey = "worker_options"
	drainOptionKey  optionKey = "drain_options"
)

type workerOptions struct {
	maxCount int
}

type drainOptions struct {
	forward bool
}

// WithWorkerCount carries a default worker count on the context; assembly
// helpers called with workers <= 0 fall back to it.
func WithWorkerCount(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, workerOptions{maxCount: maxWorkers})
}

// WorkerCount reads the context-carried worker count, or def without one.
func WorkerCount(ctx context.Context, def int) int {
	if opts, ok := ctx.Value(workerOptionKey).(workerOptions); ok && opts.maxCount > 0 {
		return opts.maxCount
	}
	return def
}

// WithDrainForwarding decides what the drain helpers do with envelopes left
// in flight on cancellation: forward them as failures (true) or drop them.
func WithDrainForwarding(ctx context.Context, forward bool) context.Context {
	return context.WithValue(ctx, drainOptionKey, drainOptions{forward: forward})
}

// IsDrainForwardingEnabled reads the context-carried drain policy, or def
// without one.
func IsDrainForwardingEnabled(ctx context.Context, def bool) bool {
	if opts, ok := ctx.Value(drainOptionKey).(drainOptions); ok {
		return opts.forward
	}
	return def
}
