package task

import (
	"context"
	"time"

	"github.com/ib-77/fp3/pkg/fp/either"
)

// Task is a deferred computation producing an Either[error, A]. Nothing runs
// until Run is called; composing operators only wrap the function.
type Task[A any] func(ctx context.Context) either.Either[error, A]

// Run executes the task. A context that is already done never invokes the
// wrapped computation and settles into Left(ctx.Err()).
func (t Task[A]) Run(ctx context.Context) either.Either[error, A] {
	if err := ctx.Err(); err != nil {
		return either.Left[error, A](err)
	}
	return t(ctx)
}

// Of lifts a plain value into an always-succeeding task.
func Of[A any](a A) Task[A] {
	return func(ctx context.Context) either.Either[error, A] {
		return either.Right[error](a)
	}
}

// Fail lifts an error into an always-failing task.
func Fail[A any](err error) Task[A] {
	return func(ctx context.Context) either.Either[error, A] {
		return either.Left[error, A](err)
	}
}

// Lift wraps an already-settled Either.
func Lift[A any](e either.Either[error, A]) Task[A] {
	return func(ctx context.Context) either.Either[error, A] {
		return e
	}
}

// From adapts a context-aware (A, error) function, the shape of most Go
// client calls. The error return becomes the Left side.
func From[A any](f func(ctx context.Context) (A, error)) Task[A] {
	return func(ctx context.Context) either.Either[error, A] {
		return either.Try(func() (A, error) { return f(ctx) },
			func(err error) error { return err })
	}
}

// Map appends a pure continuation; it runs only after the task settles
// into a Right.
func Map[A, B any](t Task[A], f func(A) B) Task[B] {
	return func(ctx context.Context) either.Either[error, B] {
		return either.Map(t.Run(ctx), f)
	}
}

// FlatMap appends a continuation that is itself a task. The next task is
// built and run only after the previous settles into a Right, and a context
// cancelled in between short-circuits before it starts.
func FlatMap[A, B any](t Task[A], f func(A) Task[B]) Task[B] {
	return func(ctx context.Context) either.Either[error, B] {
		e := t.Run(ctx)
		v, ok := e.GetRight()
		if !ok {
			err, _ := e.GetLeft()
			return either.Left[error, B](err)
		}
		return f(v).Run(ctx)
	}
}

// MapErr transforms the failure side only.
func MapErr[A any](t Task[A], f func(error) error) Task[A] {
	return func(ctx context.Context) either.Either[error, A] {
		return either.MapLeft(t.Run(ctx), f)
	}
}

// Tee runs a side effect on success, passing the result through.
func Tee[A any](t Task[A], f func(A)) Task[A] {
	return Map(t, func(a A) A {
		f(a)
		return a
	})
}

// Fold defers terminal extraction: the returned function executes the task
// and reduces both branches to one value.
func Fold[A, U any](t Task[A], onErr func(error) U, onOk func(A) U) func(ctx context.Context) U {
	return func(ctx context.Context) U {
		return either.Fold(t.Run(ctx), onErr, onOk)
	}
}

// GetOrElse defers terminal extraction with a default for the failure side.
func GetOrElse[A any](t Task[A], def A) func(ctx context.Context) A {
	return func(ctx context.Context) A {
		return t.Run(ctx).GetOrElse(def)
	}
}

// WithTimeout runs the task under a context that expires after d. A task that
// honors its context settles into Left(context.DeadlineExceeded) on expiry.
func WithTimeout[A any](t Task[A], d time.Duration) Task[A] {
	return func(ctx context.Context) either.Either[error, A] {
		tctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return t.Run(tctx)
	}
}
