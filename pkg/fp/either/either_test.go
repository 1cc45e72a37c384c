package either

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/fp3/pkg/fp"
)

var _ fp.WithDefault[int] = Either[error, int]{}

var errBoom = errors.New("boom")

func TestRight(t *testing.T) {
	t.Parallel()
	e := Right[error](5)
	if !e.IsRight() || e.IsLeft() {
		t.Fatalf("expected Right, got IsRight=%v IsLeft=%v", e.IsRight(), e.IsLeft())
	}
	v, ok := e.GetRight()
	if !ok || v != 5 {
		t.Fatalf("expected (5, true), got (%v, %v)", v, ok)
	}
	if _, ok := e.GetLeft(); ok {
		t.Fatal("expected no Left value on a Right")
	}
}

func TestLeft(t *testing.T) {
	t.Parallel()
	e := Left[error, int](errBoom)
	if e.IsRight() || !e.IsLeft() {
		t.Fatalf("expected Left, got IsRight=%v IsLeft=%v", e.IsRight(), e.IsLeft())
	}
	err, ok := e.GetLeft()
	if !ok || err != errBoom {
		t.Fatalf("expected (errBoom, true), got (%v, %v)", err, ok)
	}
	if _, ok := e.GetRight(); ok {
		t.Fatal("expected no Right value on a Left")
	}
}

func TestTry(t *testing.T) {
	t.Parallel()

	calls := 0
	e := Try(func() (int, error) {
		calls++
		return 7, nil
	}, func(err error) error { return err })
	if got := e.GetOrElse(0); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if calls != 1 {
		t.Fatalf("expected thunk to run exactly once, ran %d times", calls)
	}

	e = Try(func() (int, error) {
		return 0, errBoom
	}, func(err error) error { return err })
	if err, ok := e.GetLeft(); !ok || err != errBoom {
		t.Fatalf("expected Left(errBoom), got (%v, %v)", err, ok)
	}
}

func TestTry_OnErrorProjects(t *testing.T) {
	t.Parallel()
	e := Try(func() (int, error) {
		return 0, errBoom
	}, func(err error) string { return "wrapped: " + err.Error() })
	msg, ok := e.GetLeft()
	if !ok || msg != "wrapped: boom" {
		t.Fatalf("expected projected failure, got (%q, %v)", msg, ok)
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()

	e := Recover(func() int { return 3 }, func(r any) error {
		return errors.New("unreachable")
	})
	if got := e.GetOrElse(0); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}

	e = Recover(func() int {
		panic("kaput")
	}, func(r any) error {
		return errors.New(r.(string))
	})
	err, ok := e.GetLeft()
	if !ok || err.Error() != "kaput" {
		t.Fatalf("expected Left(kaput), got (%v, %v)", err, ok)
	}
}

func TestMustGet(t *testing.T) {
	t.Parallel()

	if got := Right[error]("x").MustGet(); got != "x" {
		t.Fatalf("expected x, got %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected MustGet on Left to panic")
		}
	}()
	Left[error, string](errBoom).MustGet()
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()
	if got := Right[error](4).GetOrElse(7); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got := Left[error, int](errBoom).GetOrElse(7); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestOrElse(t *testing.T) {
	t.Parallel()
	if got := Right[error](1).OrElse(Right[error](2)); got.MustGet() != 1 {
		t.Fatalf("expected first Right to win, got %v", got.MustGet())
	}
	if got := Left[error, int](errBoom).OrElse(Right[error](2)); got.MustGet() != 2 {
		t.Fatalf("expected alternative, got %v", got.MustGet())
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	e := Map(Right[error](3), func(v int) int { return v * 2 })
	if got := e.GetOrElse(0); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}

	called := false
	l := Map(Left[error, int](errBoom), func(v int) int {
		called = true
		return v
	})
	if err, ok := l.GetLeft(); !ok || err != errBoom {
		t.Fatalf("expected the original Left payload, got (%v, %v)", err, ok)
	}
	if called {
		t.Fatal("Map must not invoke f on Left")
	}
}

func TestMapLeft(t *testing.T) {
	t.Parallel()

	e := MapLeft(Left[error, int](errBoom), func(err error) string {
		return err.Error()
	})
	if msg, ok := e.GetLeft(); !ok || msg != "boom" {
		t.Fatalf("expected boom, got (%q, %v)", msg, ok)
	}

	r := MapLeft(Right[error](5), func(err error) string { return err.Error() })
	if got := r.GetOrElse(0); got != 5 {
		t.Fatalf("expected Right to pass through, got %d", got)
	}
}

func TestFlatMap(t *testing.T) {
	t.Parallel()

	parse := func(s string) Either[error, int] {
		return Try(func() (int, error) { return strconv.Atoi(s) },
			func(err error) error { return err })
	}

	if got := FlatMap(Right[error]("42"), parse); got.GetOrElse(0) != 42 {
		t.Fatalf("expected 42, got %d", got.GetOrElse(0))
	}
	if got := FlatMap(Right[error]("no"), parse); !got.IsLeft() {
		t.Fatal("expected parse failure to short-circuit")
	}

	called := false
	got := FlatMap(Left[error, string](errBoom), func(string) Either[error, int] {
		called = true
		return Right[error](0)
	})
	if err, ok := got.GetLeft(); !ok || err != errBoom || called {
		t.Fatalf("expected Left pass-through without call; err=%v called=%v", err, called)
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	got := Fold(Right[error](10),
		func(err error) string { return "left" },
		func(v int) string { return "right " + strconv.Itoa(v) })
	if got != "right 10" {
		t.Fatalf("expected right branch, got %q", got)
	}

	got = Fold(Left[error, int](errBoom),
		func(err error) string { return "left " + err.Error() },
		func(v int) string { return "right" })
	if got != "left boom" {
		t.Fatalf("expected left branch, got %q", got)
	}
}

func TestMapping_AsStage(t *testing.T) {
	t.Parallel()

	double := Mapping[error](func(v int) int { return v * 2 })
	if got := double(Right[error](21)).MustGet(); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := double(Left[error, int](errBoom)); !got.IsLeft() {
		t.Fatal("expected Left pass-through")
	}
}

func TestFlatMapping_AsStage(t *testing.T) {
	t.Parallel()

	nonZero := FlatMapping(func(v int) Either[error, int] {
		if v == 0 {
			return Left[error, int](errBoom)
		}
		return Right[error](v)
	})
	if got := nonZero(Right[error](5)).MustGet(); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := nonZero(Right[error](0)); !got.IsLeft() {
		t.Fatal("expected Left for zero")
	}
}

func TestToOption(t *testing.T) {
	t.Parallel()

	o := ToOption(Right[error](5))
	if got := o.GetOrElse(0); got != 5 {
		t.Fatalf("expected Some(5), got %d", got)
	}
	if o := ToOption(Left[error, int](errBoom)); !o.IsNone() {
		t.Fatal("expected None for Left")
	}
}

func TestFromOption(t *testing.T) {
	t.Parallel()

	e := FromOption(ToOption(Right[error](5)), func() error { return errBoom })
	if got := e.GetOrElse(0); got != 5 {
		t.Fatalf("expected Right(5), got %d", got)
	}

	e = FromOption(ToOption(Left[error, int](errors.New("gone"))),
		func() error { return errBoom })
	if err, ok := e.GetLeft(); !ok || err != errBoom {
		t.Fatalf("expected Left(errBoom) from onNone, got (%v, %v)", err, ok)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	positive := func(v int) error {
		if v <= 0 {
			return errors.New("not positive")
		}
		return nil
	}
	even := func(v int) error {
		if v%2 != 0 {
			return errors.New("not even")
		}
		return nil
	}

	if got := Validate(4, positive, even); got.GetOrElse(0) != 4 {
		t.Fatalf("expected the value back, got %v", got)
	}

	got := Validate(-3, positive, even)
	err, ok := got.GetLeft()
	if !ok || err.Error() != "not positive" {
		t.Fatalf("expected first failure only, got (%v, %v)", err, ok)
	}
}

func TestValidateAll(t *testing.T) {
	t.Parallel()

	positive := func(v int) error {
		if v <= 0 {
			return errors.New("not positive")
		}
		return nil
	}
	even := func(v int) error {
		if v%2 != 0 {
			return errors.New("not even")
		}
		return nil
	}

	if got := ValidateAll(4, positive, even); got.GetOrElse(0) != 4 {
		t.Fatalf("expected the value back, got %v", got)
	}

	got := ValidateAll(-3, positive, even)
	err, ok := got.GetLeft()
	if !ok {
		t.Fatal("expected a joined Left")
	}
	parts := fp.Errors(err)
	if len(parts) != 2 {
		t.Fatalf("expected both failures collected, got %v", parts)
	}
}
