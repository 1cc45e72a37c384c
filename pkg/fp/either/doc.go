// Package either provides Either[E, A], a sum type holding exactly one of a
// failure value (Left) or a success value (Right), replacing error returns at
// composition boundaries.
//
// Common operations:
// - Left/Right: construct variants directly
// - Try/Recover: boundary constructors for (value, error) returns and panics
// - Map/FlatMap/MapLeft: transform one side, short-circuiting on Left
// - Mapping/FlatMapping: function forms of Map/FlatMap for pipe chains
// - Fold: reduce to a concrete value with both branches handled
// - Validate/ValidateAll: check a value against predicates, first-fail or joined
// - ToOption/FromOption: bridges to the option package
//
// A Left carries its failure value untouched through any number of further
// transformations: downstream functions are never invoked, and the original
// error payload is never replaced. Try and Recover are the only operations
// that intercept a raised failure; everything after them works on values.
package either
