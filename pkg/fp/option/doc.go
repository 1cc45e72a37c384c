// Package option provides Option[T], a sum type holding either a present
// value (Some) or nothing (None), replacing nullable returns at API
// boundaries.
//
// Highlights:
// - Some/None: construct variants directly
// - FromNullable/FromPtr/FromOk: boundary constructors for ambient nil and comma-ok code
// - Map/FlatMap: transform the present value, short-circuiting on None
// - Mapping/FlatMapping: function forms of Map/FlatMap for pipe chains
// - Fold: reduce to a concrete value with both branches handled
// - GetOrElse/OrElse: terminal extraction with defaults
//
// A raw nullable value enters the algebra through a boundary constructor and
// stays in its variant from then on; transformations produce new Option
// values and never invoke their function on None.
package option
