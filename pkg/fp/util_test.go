package fp

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestIsNil_UntypedNil(t *testing.T) {
	t.Parallel()
	if !IsNil(nil) {
		t.Fatal("expected IsNil(nil) to be true")
	}
}

func TestIsNil_TypedNils(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	var s []int
	var ch chan int
	var f func()

	cases := []struct {
		name string
		v    any
	}{
		{"pointer", p},
		{"map", m},
		{"slice", s},
		{"chan", ch},
		{"func", f},
	}

	for _, tc := range cases {
		if !IsNil(tc.v) {
			t.Fatalf("expected nil %s to be detected", tc.name)
		}
	}
}

func TestIsNil_NonNilValues(t *testing.T) {
	t.Parallel()

	v := 7
	cases := []struct {
		name string
		v    any
	}{
		{"int", 42},
		{"string", ""},
		{"pointer", &v},
		{"slice", []int{}},
		{"map", map[string]int{}},
		{"struct", struct{}{}},
	}

	for _, tc := range cases {
		if IsNil(tc.v) {
			t.Fatalf("expected %s to be non-nil", tc.name)
		}
	}
}

func TestErrors_Nil(t *testing.T) {
	t.Parallel()
	if got := Errors(nil); len(got) != 0 {
		t.Fatalf("expected empty slice for nil, got %v", got)
	}
}

func TestErrors_Single(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	got := Errors(err)
	if len(got) != 1 || got[0] != err {
		t.Fatalf("expected [boom], got %v", got)
	}
}

func TestErrors_Joined(t *testing.T) {
	t.Parallel()
	e1 := errors.New("first")
	e2 := errors.New("second")
	got := Errors(errors.Join(e1, e2))
	if len(got) != 2 || got[0] != e1 || got[1] != e2 {
		t.Fatalf("expected [first second], got %v", got)
	}
}

func TestIsCancellation(t *testing.T) {
	t.Parallel()

	if !IsCancellation(context.Canceled) {
		t.Fatal("expected context.Canceled to count as cancellation")
	}
	if !IsCancellation(context.DeadlineExceeded) {
		t.Fatal("expected context.DeadlineExceeded to count as cancellation")
	}
	if !IsCancellation(fmt.Errorf("wrapped: %w", context.Canceled)) {
		t.Fatal("expected wrapped cancellation to be detected")
	}
	if IsCancellation(errors.New("boom")) {
		t.Fatal("expected ordinary error to not count as cancellation")
	}
	if IsCancellation(nil) {
		t.Fatal("expected nil to not count as cancellation")
	}
}
