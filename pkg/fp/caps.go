// Package fp holds the pieces shared by the option and either packages:
// the capability interfaces both sum types satisfy, and boundary helpers
// for nil detection, joined errors and cancellation.
package fp

// Value is implemented by containers that may hold a single value of type T.
// Go cannot abstract over type constructors, so the capability shared by
// Option[T] and Either[E, T] is expressed as this comma-ok contract.
type Value[T any] interface {
	// Get returns the contained value and true, or the zero value and false
	Get() (T, bool)
}

// WithDefault extends Value with default-based terminal extraction.
type WithDefault[T any] interface {
	Value[T]
	// GetOrElse returns the contained value, or def when absent
	GetOrElse(def T) T
}
