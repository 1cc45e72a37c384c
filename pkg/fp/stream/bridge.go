package stream

import (
	"context"

	"github.com/ib-77/fp3/pkg/fp/either"
)

// Emit feeds values into a pipeline, wrapping each in a fresh envelope.
// The channel closes after the last value, or early when the context dies;
// values not yet emitted then never enter the pipeline.
func Emit[A any](ctx context.Context, values ...A) <-chan Envelope[A] {
	out := make(chan Envelope[A])

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			return
		}

		for _, v := range values {
			select {
			case out <- Wrap(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// EmitEnvelopes replays existing envelopes, identities intact.
func EmitEnvelopes[A any](ctx context.Context, envelopes ...Envelope[A]) <-chan Envelope[A] {
	out := make(chan Envelope[A])

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			return
		}

		for _, e := range envelopes {
			select {
			case out <- e:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect gathers everything until the channel closes. The pipeline's own
// cancellation handling decides what arrives; the sink just drains it.
func Collect[A any](in <-chan Envelope[A]) []Envelope[A] {
	res := make([]Envelope[A], 0)
	for e := range in {
		res = append(res, e)
	}
	return res
}

// First returns the first envelope, or the default when the channel closes
// empty or the context dies before anything arrives.
func First[A any](ctx context.Context, in <-chan Envelope[A], def Envelope[A]) Envelope[A] {
	select {
	case e, ok := <-in:
		if !ok {
			return def
		}
		return e
	case <-ctx.Done():
		return def
	}
}

// Fold reduces each envelope to a plain value with both branches handled,
// in arrival order. It consumes the input to exhaustion and emits one
// output per input, so counts match across the boundary.
func Fold[In, Out any](ctx context.Context, in <-chan Envelope[In],
	onErr func(ctx context.Context, err error) Out,
	onOk func(ctx context.Context, v In) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for e := range in {
			out <- either.Fold(e.Either(),
				func(err error) Out { return onErr(ctx, err) },
				func(v In) Out { return onOk(ctx, v) })
		}
	}()

	return out
}

// Values drains a folded channel into a slice.
func Values[T any](in <-chan T) []T {
	res := make([]T, 0)
	for v := range in {
		res = append(res, v)
	}
	return res
}
