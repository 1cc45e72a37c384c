// Package chain provides a fluent wrapper around Either[error, T]
// for building synchronous railway pipelines.
//
// It composes the either combinators behind a convenient Chain[T] type, so
// a pipeline reads as one expression instead of branching on every step.
// The error side is fixed to Go's error; use the either package directly
// when a domain failure type is needed.
//
// Key operations:
// - On/From: begin a chain from an Either[error, T] or a bare value
// - Then: switch to a new Either via a function that can fail
// - ThenTry: call a (T, error) function and convert the error to a Left
// - Map: transform the successful value
// - Ensure: run side effects without changing the result
// - Or/And: pick the first success, or require every step to succeed
// - Either/GetOrElse: unwrap the chain
//
// Type-changing steps live at package level (Then, Map, Finally), since
// methods cannot introduce type parameters.
package chain
