package option

import (
	"github.com/ib-77/fp3/pkg/fp"
)

// Option holds at most one value of type T. The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps a value that is known to be present.
func Some[T any](v T) Option[T] {
	return Option[T]{
		value: v,
		some:  true,
	}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromNullable is the boundary between ambient nullable code and the Option
// algebra: it returns None when v is nil (including a typed nil carried in an
// interface, see fp.IsNil), otherwise Some(v). Raw nullables should cross
// into Option here and nowhere else.
func FromNullable[T any](v T) Option[T] {
	if fp.IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// FromPtr dereferences p into Some, or returns None when p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOk adapts Go's comma-ok boundary (map lookup, type assertion).
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the contained value and true, or the zero value and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// MustGet returns the contained value or panics on None. It is an escape
// hatch for call sites that have already proven presence; it is not part of
// the propagation algebra.
func (o Option[T]) MustGet() T {
	if !o.some {
		panic("option: MustGet on None")
	}
	return o.value
}

// GetOrElse returns the contained value, or def on None.
func (o Option[T]) GetOrElse(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// OrElse returns o when it is Some, otherwise alt.
func (o Option[T]) OrElse(alt Option[T]) Option[T] {
	if o.some {
		return o
	}
	return alt
}
