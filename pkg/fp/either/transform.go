package either

import (
	"github.com/ib-77/fp3/pkg/fp/option"
)

// Map transforms the Right value. A Left passes through carrying the
// identical failure payload; f is not invoked.
func Map[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// MapLeft transforms the failure side only; a Right passes through.
func MapLeft[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// FlatMap chains a step that can itself fail. The first Left in a chain
// short-circuits every later step with its original payload.
func FlatMap[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// Fold reduces to a single value with both branches handled.
func Fold[E, A, U any](e Either[E, A], onLeft func(E) U, onRight func(A) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Mapping is the function form of Map, for pipe chains.
func Mapping[E, A, B any](f func(A) B) func(Either[E, A]) Either[E, B] {
	return func(e Either[E, A]) Either[E, B] {
		return Map(e, f)
	}
}

// FlatMapping is the function form of FlatMap, for pipe chains.
func FlatMapping[E, A, B any](f func(A) Either[E, B]) func(Either[E, A]) Either[E, B] {
	return func(e Either[E, A]) Either[E, B] {
		return FlatMap(e, f)
	}
}

// ToOption forgets the failure value: Right becomes Some, Left becomes None.
func ToOption[E, A any](e Either[E, A]) option.Option[A] {
	if e.isRight {
		return option.Some(e.right)
	}
	return option.None[A]()
}

// FromOption supplies the failure a None lacks: Some becomes Right, None
// becomes Left(onNone()).
func FromOption[E, A any](o option.Option[A], onNone func() E) Either[E, A] {
	if v, ok := o.Get(); ok {
		return Right[E](v)
	}
	return Left[E, A](onNone())
}
