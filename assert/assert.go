// Package assert provides an incredibly simple assertion framework,
// that relies on generics and simplicity. All assertions are "fatal"
// and cause the test to abort at the failure line (rather than
// continue on error). The check package provides the same assertions
// in a non-fatal form.
package assert

import (
	"errors"
	"strings"
	"testing"
)

// True causes a test to fail if the condition is false.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Fatal("assertion failure")
	}
}

// Equal causes a test to fail if the two (comparable) values are not
// equal. Be aware that two different pointers and objects passed as
// interfaces that are implemented by pointer receivers are comparable
// as equal and will fail this assertion even if their *values* are
// equal.
func Equal[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne != valTwo {
		t.Fatalf("unequal: <%v> != <%v>", valOne, valTwo)
	}
}

// NotEqual causes a test to fail if two (comparable) values are
// equal.
func NotEqual[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne == valTwo {
		t.Fatalf("equal: <%v>", valOne)
	}
}

// Zero fails a test if the value is not the zero-value for its type.
func Zero[T comparable](t testing.TB, val T) {
	t.Helper()
	var zero T
	if zero != val {
		t.Fatalf("expected zero for value of type %T <%v>", val, val)
	}
}

// NotZero fails a test if the value is the zero for its type.
func NotZero[T comparable](t testing.TB, val T) {
	t.Helper()
	var zero T
	if zero == val {
		t.Fatalf("expected non-zero for value of type %T", val)
	}
}

// Error fails the test if the error is nil.
func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected non-nil error")
	}
}

// NotError fails the test if the error is non-nil.
func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// ErrorIs is an assertion form of errors.Is, and fails the test if
// the error (or its wrapped values) are not equal to the target
// error.
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error <%v>, is not <%v>", err, target)
	}
}

// NotErrorIs is an assertion form of !errors.Is.
func NotErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if errors.Is(err, target) {
		t.Fatalf("error <%v>, is <%v>", err, target)
	}
}

// Panic asserts that the function raises a panic.
func Panic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r == nil {
			t.Fatal("expected a panic but got none")
		}
	}()
	fn()
}

// NotPanic asserts that the function does not panic.
func NotPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r != nil {
			t.Fatal("panic: ", r)
		}
	}()
	fn()
}

// PanicError asserts that the function panics with an error value
// that matches the target, according to errors.Is.
func PanicError(t testing.TB, fn func(), target error) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected a panic but got none")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic [%v] of type %T is not an error", r, r)
		}
		ErrorIs(t, err, target)
	}()
	fn()
}

// Contains asserts that the item is in the slice provided. Empty or
// nil slices always cause failure.
func Contains[T comparable](t testing.TB, slice []T, item T) {
	t.Helper()
	if len(slice) == 0 {
		t.Fatal("slice was empty")
	}

	for _, it := range slice {
		if it == item {
			return
		}
	}

	t.Fatalf("item <%v> is not in %v", item, slice)
}

// EqualItems compares the values in two slices and creates an error
// if all items are not equal.
func EqualItems[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if len(one) != len(two) {
		t.Fatalf("slices are of different lengths [%d vs %d]", len(one), len(two))
	}

	for idx := range one {
		if one[idx] != two[idx] {
			t.Fatalf("items at index %d [%v vs %v] are not equal", idx, one[idx], two[idx])
		}
	}
}

// Substring asserts that the substring is present in the string.
func Substring(t testing.TB, str, substr string) {
	t.Helper()
	if !strings.Contains(str, substr) {
		t.Fatalf("expected %q to contain substring %q", str, substr)
	}
}
