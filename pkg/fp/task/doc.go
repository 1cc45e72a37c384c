// Package task provides Task[A], a deferred computation that runs under a
// context and settles into an Either[error, A]. It extends the synchronous
// either algebra to long-running work without changing its rules: the wrapped
// computation runs at most once per execution, composed continuations run
// after it settles, and the first Left short-circuits everything after it.
// Failures propagate immediately; there is no retry machinery.
//
// Building blocks:
// - Of/Fail/Lift: constant tasks from values, errors or Either values
// - From: boundary constructor for context-aware (A, error) functions
// - Map/FlatMap/MapErr/Tee: compose continuations onto a task
// - Run: execute the chain; a done context yields Left(ctx.Err())
// - All: run tasks concurrently, first failure cancels the rest
// - WithTimeout: bound one execution with a deadline
//
// Cancellation is an ordinary Left carrying ctx.Err(); callers can detect
// it with fp.IsCancellation.
package task
