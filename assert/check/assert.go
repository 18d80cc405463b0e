// Package check mirrors the assert package, but its assertions mark
// the test as failed and let it continue rather than aborting.
package check

import (
	"errors"
	"strings"
	"testing"
)

// True causes a test to fail if the condition is false.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Error("assertion failure")
	}
}

// Equal causes a test to fail if the two (comparable) values are not
// equal.
func Equal[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne != valTwo {
		t.Errorf("values unequal: <%v> != <%v>", valOne, valTwo)
	}
}

// NotEqual causes a test to fail if two (comparable) values are
// equal.
func NotEqual[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne == valTwo {
		t.Errorf("values equal: <%v>", valOne)
	}
}

// Zero fails a test if the value is not the zero-value for its type.
func Zero[T comparable](t testing.TB, val T) {
	t.Helper()
	var zero T
	if zero != val {
		t.Errorf("expected zero for value of type %T <%v>", val, val)
	}
}

// Error fails the test if the error is nil.
func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Error("expected non-nil error")
	}
}

// NotError fails the test if the error is non-nil.
func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Error(err)
	}
}

// ErrorIs is an assertion form of errors.Is.
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("error <%v>, is not <%v>", err, target)
	}
}

// EqualItems compares the values in two slices and marks the test
// failed at the first mismatch.
func EqualItems[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if len(one) != len(two) {
		t.Errorf("slices are of different lengths [%d vs %d]", len(one), len(two))
		return
	}

	for idx := range one {
		if one[idx] != two[idx] {
			t.Errorf("items at index %d [%v vs %v] are not equal", idx, one[idx], two[idx])
			return
		}
	}
}

// Substring asserts that the substring is present in the string.
func Substring(t testing.TB, str, substr string) {
	t.Helper()
	if !strings.Contains(str, substr) {
		t.Errorf("expected %q to contain substring %q", str, substr)
	}
}
