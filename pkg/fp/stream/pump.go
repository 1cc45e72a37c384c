package stream

import (
	"context"
	"sync"
)

// CancelHandlers lets a pipeline decide what happens to envelopes caught in
// flight when the context dies. All callbacks are optional.
type CancelHandlers[In, Out any] struct {
	// OnCancel sees the remaining input channel once the worker stops.
	OnCancel func(ctx context.Context, in <-chan Envelope[In], out chan<- Envelope[Out])
	// OnUnprocessed sees an envelope that was received but never reached
	// its stage.
	OnUnprocessed func(ctx context.Context, in Envelope[In], out chan<- Envelope[Out])
	// OnProcessed sees an envelope whose stage finished but whose result
	// was not delivered downstream.
	OnProcessed func(ctx context.Context, in Envelope[In], processed Envelope[Out], out chan<- Envelope[Out])
}

// Pump is one worker: it moves envelopes from in through the stage to out
// until the input closes or the context dies. Several pumps may share the
// same channels; each envelope is taken by exactly one of them.
func Pump[In, Out any](ctx context.Context, in <-chan Envelope[In], out chan<- Envelope[Out],
	st Stage[In, Out], handlers CancelHandlers[In, Out],
	onDelivered func(ctx context.Context, e Envelope[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, in, out)
			}
			return
		case e, ok := <-in:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnUnprocessed != nil {
					handlers.OnUnprocessed(ctx, e, out)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, in, out)
				}
				return
			case pr, running := <-st(ctx, e):
				if !running {
					if handlers.OnUnprocessed != nil {
						handlers.OnUnprocessed(ctx, e, out)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, in, out)
					}
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnProcessed != nil {
						handlers.OnProcessed(ctx, e, pr, out)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, in, out)
					}
					return
				case out <- pr:
					if onDelivered != nil {
						onDelivered(ctx, pr)
					}
				}
			}
		}
	}
}
