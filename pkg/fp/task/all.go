package task

import (
	"context"

	"github.com/ib-77/fp3/pkg/fp/either"
	"golang.org/x/sync/errgroup"
)

// All runs the tasks concurrently and collects every Right in input order.
// The first Left cancels the group context handed to the remaining tasks
// and becomes the result; with no tasks the result is an empty Right.
func All[A any](tasks ...Task[A]) Task[[]A] {
	return func(ctx context.Context) either.Either[error, []A] {
		results := make([]A, len(tasks))

		g, gctx := errgroup.WithContext(ctx)
		for i, t := range tasks {
			g.Go(func() error {
				e := t.Run(gctx)
				v, ok := e.GetRight()
				if !ok {
					err, _ := e.GetLeft()
					return err
				}
				results[i] = v
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return either.Left[error, []A](err)
		}
		return either.Right[error](results)
	}
}
