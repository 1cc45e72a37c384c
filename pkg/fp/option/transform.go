package option

// Map applies f to the present value and wraps the result. On None it
// returns None without invoking f; a panicking f is not recovered.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(f(o.value))
}

// FlatMap applies f to the present value and flattens one level of nesting;
// f may short-circuit by returning None. On None it returns None without
// invoking f.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return f(o.value)
}

// Fold reduces the Option to a concrete value, handling both variants
// explicitly.
func Fold[T, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// Filter keeps Some only when pred holds for the contained value.
func Filter[T any](o Option[T], pred func(T) bool) Option[T] {
	if !o.some || !pred(o.value) {
		return None[T]()
	}
	return o
}

// Mapping is the function form of Map, for use as a pipe stage.
func Mapping[T, U any](f func(T) U) func(Option[T]) Option[U] {
	return func(o Option[T]) Option[U] {
		return Map(o, f)
	}
}

// FlatMapping is the function form of FlatMap, for use as a pipe stage.
func FlatMapping[T, U any](f func(T) Option[U]) func(Option[T]) Option[U] {
	return func(o Option[T]) Option[U] {
		return FlatMap(o, f)
	}
}
