package either

type Either[E, A any] struct {
	left    E
	right   A
	isRight bool
}

func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{
		left:    e,
		isRight: false,
	}
}

func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{
		right:   a,
		isRight: true,
	}
}

// Try runs thunk once and captures its outcome: a nil error yields Right,
// a non-nil error goes through onError into a Left. A panicking thunk is
// not recovered here; use Recover for that boundary.
func Try[E, A any](thunk func() (A, error), onError func(error) E) Either[E, A] {
	a, err := thunk()
	if err != nil {
		return Left[E, A](onError(err))
	}
	return Right[E](a)
}

// Recover runs thunk once and converts a panic into a Left via onPanic.
// A thunk that returns normally yields Right.
func Recover[E, A any](thunk func() A, onPanic func(recovered any) E) (res Either[E, A]) {
	defer func() {
		if r := recover(); r != nil {
			res = Left[E, A](onPanic(r))
		}
	}()
	return Right[E](thunk())
}

func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

func (e Either[E, A]) GetRight() (A, bool) {
	return e.right, e.isRight
}

func (e Either[E, A]) GetLeft() (E, bool) {
	return e.left, !e.isRight
}

// Get is GetRight under the name the fp capability interfaces expect.
func (e Either[E, A]) Get() (A, bool) {
	return e.right, e.isRight
}

// MustGet returns the Right value or panics. For call sites that have
// already proven success; not part of the propagation algebra.
func (e Either[E, A]) MustGet() A {
	if !e.isRight {
		panic("either: MustGet on Left")
	}
	return e.right
}

func (e Either[E, A]) GetOrElse(def A) A {
	if e.isRight {
		return e.right
	}
	return def
}

func (e Either[E, A]) OrElse(alt Either[E, A]) Either[E, A] {
	if e.isRight {
		return e
	}
	return alt
}
