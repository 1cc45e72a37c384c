package stream

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/fp3/pkg/fp/either"
)

// Envelope is one value in flight: an Either payload plus the identity it
// keeps for its whole trip through a pipeline.
type Envelope[A any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     either.Either[error, A]
}

// Wrap starts a new envelope around a successful value.
func Wrap[A any](v A) Envelope[A] {
	return Envelope[A]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     either.Right[error](v),
	}
}

// WrapErr starts a new envelope around a failure.
func WrapErr[A any](err error) Envelope[A] {
	return Envelope[A]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     either.Left[error, A](err),
	}
}

// FromEither starts a new envelope around an already-settled Either.
func FromEither[A any](e either.Either[error, A]) Envelope[A] {
	return Envelope[A]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     e,
	}
}

// Derive carries an envelope's identity onto a new payload. Every stage
// goes through here, so an item keeps its id and creation time no matter
// how often its value or type changes.
func Derive[In, Out any](from Envelope[In], v either.Either[error, Out]) Envelope[Out] {
	return Envelope[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		value:     v,
	}
}

func (e Envelope[A]) ID() uuid.UUID {
	return e.id
}

func (e Envelope[A]) CreatedAt() time.Time {
	return e.createdAt
}

// Either returns the payload.
func (e Envelope[A]) Either() either.Either[error, A] {
	return e.value
}

func (e Envelope[A]) IsOk() bool {
	return e.value.IsRight()
}

// Err returns the failure, or nil for a successful envelope.
func (e Envelope[A]) Err() error {
	if err, ok := e.value.GetLeft(); ok {
		return err
	}
	return nil
}
