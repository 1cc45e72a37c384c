package fp

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether v is nil, including typed nils carried in an
// interface. Pointer, map, slice, channel, function and interface kinds are
// inspected; values of any other kind are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Errors flattens err into its parts: an error joined with errors.Join is
// unwrapped, a plain error becomes a one-element slice, nil becomes empty.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}

	return []error{err}
}

// IsCancellation reports whether err stems from context cancellation or an
// expired deadline.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
