package chain

import (
	"github.com/ib-77/fp3/pkg/fp/either"
)

// Chain wraps an Either[error, T] to enable fluent chaining.
type Chain[T any] struct {
	e either.Either[error, T]
}

// On begins a chain from an existing Either.
func On[T any](e either.Either[error, T]) Chain[T] {
	return Chain[T]{e: e}
}

// From begins a chain from a successful value.
func From[T any](v T) Chain[T] {
	return Chain[T]{e: either.Right[error](v)}
}

// Either returns the underlying Either.
func (c Chain[T]) Either() either.Either[error, T] {
	return c.e
}

// Then chains a function that can itself fail.
func (c Chain[T]) Then(onOk func(T) either.Either[error, T]) Chain[T] {
	return Chain[T]{e: either.FlatMap(c.e, onOk)}
}

// ThenTry chains a (T, error) function, like a repo call.
func (c Chain[T]) ThenTry(try func(T) (T, error)) Chain[T] {
	return Chain[T]{e: either.FlatMap(c.e, func(v T) either.Either[error, T] {
		return either.Try(func() (T, error) { return try(v) },
			func(err error) error { return err })
	})}
}

// Map transforms the successful value.
func (c Chain[T]) Map(onOk func(T) T) Chain[T] {
	return Chain[T]{e: either.Map(c.e, onOk)}
}

// Ensure performs side effects without changing the result. Either
// callback may be nil.
func (c Chain[T]) Ensure(onOk func(T), onErr func(error)) Chain[T] {
	if v, ok := c.e.GetRight(); ok {
		if onOk != nil {
			onOk(v)
		}
	} else if onErr != nil {
		err, _ := c.e.GetLeft()
		onErr(err)
	}
	return c
}

// Or keeps the receiver when it succeeded, otherwise the alternative.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	return Chain[T]{e: c.e.OrElse(alternative.e)}
}

// And yields the last chain when every candidate succeeded, otherwise
// the first failure.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.e.IsLeft() {
		return c
	}
	return required
}

// GetOrElse collapses the chain to its value or a default.
func (c Chain[T]) GetOrElse(def T) T {
	return c.e.GetOrElse(def)
}

// Then chains a function that switches the value type.
func Then[T, U any](c Chain[T], onOk func(T) either.Either[error, U]) Chain[U] {
	return Chain[U]{e: either.FlatMap(c.e, onOk)}
}

// Map transforms the successful value to a new type.
func Map[T, U any](c Chain[T], onOk func(T) U) Chain[U] {
	return Chain[U]{e: either.Map(c.e, onOk)}
}

// Finally collapses the chain into a final value with both branches handled.
func Finally[T, U any](c Chain[T], onOk func(T) U, onErr func(error) U) U {
	return either.Fold(c.e, onErr, onOk)
}
