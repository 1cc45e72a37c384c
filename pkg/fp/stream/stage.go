package stream

import (
	"context"

	"github.com/ib-77/fp3/pkg/fp/either"
)

// Stage processes one envelope and yields the outcome on a channel that
// closes after at most one value. A stage that observes a dead context may
// close without yielding; the pump accounts for the envelope then.
type Stage[In, Out any] func(ctx context.Context, in Envelope[In]) <-chan Envelope[Out]

func lift[In, Out any](apply func(ctx context.Context, in Envelope[In]) Envelope[Out]) Stage[In, Out] {
	return func(ctx context.Context, in Envelope[In]) <-chan Envelope[Out] {
		out := make(chan Envelope[Out])

		go func() {
			defer close(out)

			if ctx.Err() != nil {
				return
			}

			select {
			case out <- apply(ctx, in):
			case <-ctx.Done():
			}
		}()

		return out
	}
}

// Check passes a successful envelope through untouched when f returns nil,
// and fails it with f's error otherwise.
func Check[A any](f func(ctx context.Context, v A) error) Stage[A, A] {
	return lift(func(ctx context.Context, in Envelope[A]) Envelope[A] {
		return Derive(in, either.FlatMap(in.Either(), func(v A) either.Either[error, A] {
			if err := f(ctx, v); err != nil {
				return either.Left[error, A](err)
			}
			return either.Right[error](v)
		}))
	})
}

// MapStage lifts a pure transformation.
func MapStage[In, Out any](f func(ctx context.Context, v In) Out) Stage[In, Out] {
	return lift(func(ctx context.Context, in Envelope[In]) Envelope[Out] {
		return Derive(in, either.Map(in.Either(), func(v In) Out {
			return f(ctx, v)
		}))
	})
}

// FlatMapStage lifts a step that can itself fail.
func FlatMapStage[In, Out any](f func(ctx context.Context, v In) either.Either[error, Out]) Stage[In, Out] {
	return lift(func(ctx context.Context, in Envelope[In]) Envelope[Out] {
		return Derive(in, either.FlatMap(in.Either(), func(v In) either.Either[error, Out] {
			return f(ctx, v)
		}))
	})
}

// TryStage lifts a (value, error) call, like a repo or client function.
func TryStage[In, Out any](f func(ctx context.Context, v In) (Out, error)) Stage[In, Out] {
	return lift(func(ctx context.Context, in Envelope[In]) Envelope[Out] {
		return Derive(in, either.FlatMap(in.Either(), func(v In) either.Either[error, Out] {
			return either.Try(func() (Out, error) { return f(ctx, v) },
				func(err error) error { return err })
		}))
	})
}

// TeeStage lifts a side effect over the whole envelope, failures included;
// the envelope passes through unchanged.
func TeeStage[A any](f func(ctx context.Context, e Envelope[A])) Stage[A, A] {
	return lift(func(ctx context.Context, in Envelope[A]) Envelope[A] {
		f(ctx, in)
		return in
	})
}
