package either

import (
	"errors"
)

// Validate runs checks in order and stops at the first failure. With no
// failing check the value itself is the Right.
func Validate[A any](a A, checks ...func(A) error) Either[error, A] {
	for _, check := range checks {
		if err := check(a); err != nil {
			return Left[error, A](err)
		}
	}
	return Right[error](a)
}

// ValidateAll runs every check and joins the failures, so a caller sees
// all problems at once instead of one per round trip.
func ValidateAll[A any](a A, checks ...func(A) error) Either[error, A] {
	var errs []error
	for _, check := range checks {
		if err := check(a); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return Left[error, A](errors.Join(errs...))
	}
	return Right[error](a)
}
