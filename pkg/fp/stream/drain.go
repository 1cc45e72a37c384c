package stream

import (
	"context"
	"errors"

	"github.com/ib-77/fp3/pkg/fp/either"
)

// ErrCancelled marks an envelope forwarded out of a cancelled pipeline when
// the context reports no error of its own.
var ErrCancelled = errors.New("pipeline cancelled")

// ForwardingHandlers builds CancelHandlers that account for every envelope
// caught by cancellation: unprocessed and remaining input is forwarded as a
// cancellation failure under its original id, and results that were already
// computed are delivered as they are. Honors WithDrainForwarding; with
// forwarding disabled the handlers drop everything.
func ForwardingHandlers[In, Out any]() CancelHandlers[In, Out] {
	return CancelHandlers[In, Out]{
		OnCancel:      DrainForward[In, Out],
		OnUnprocessed: DrainForwardOne[In, Out],
		OnProcessed: func(ctx context.Context, in Envelope[In], processed Envelope[Out], out chan<- Envelope[Out]) {
			if IsDrainForwardingEnabled(ctx, true) {
				out <- processed
			}
		},
	}
}

// DrainForward empties the remaining input, forwarding each envelope as a
// cancellation failure.
func DrainForward[In, Out any](ctx context.Context, in <-chan Envelope[In], out chan<- Envelope[Out]) {
	if !IsDrainForwardingEnabled(ctx, true) {
		return
	}
	for e := range in {
		out <- cancelledFrom[In, Out](ctx, e)
	}
}

// DrainForwardOne forwards a single envelope as a cancellation failure.
func DrainForwardOne[In, Out any](ctx context.Context, e Envelope[In], out chan<- Envelope[Out]) {
	if !IsDrainForwardingEnabled(ctx, true) {
		return
	}
	out <- cancelledFrom[In, Out](ctx, e)
}

// cancelledFrom rebuilds an envelope on the output side of a stage it never
// ran through. An already-failed envelope keeps its own error; a successful
// one takes the context's.
func cancelledFrom[In, Out any](ctx context.Context, e Envelope[In]) Envelope[Out] {
	if err := e.Err(); err != nil {
		return Derive(e, either.Left[error, Out](err))
	}

	err := ctx.Err()
	if err == nil {
		err = ErrCancelled
	}
	return Derive(e, either.Left[error, Out](err))
}
