package ers

import (
	"errors"
	"fmt"
)

// When returns the error IF the conditional is true, and returns nil
// otherwise.
func When(cond bool, err error) error {
	if !cond {
		return nil
	}

	return err
}

// Whenf constructs an error (using fmt.Errorf) IF the conditional is
// true, and returns nil otherwise.
func Whenf(cond bool, tmpl string, args ...any) error {
	if !cond {
		return nil
	}

	return fmt.Errorf(tmpl, args...)
}

// Is returns true if the error is one of the target errors, (or one
// of it's constituent (wrapped) errors is a target error.
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if err == nil && target != nil {
			continue
		}
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Invariant panics with an error rooted in ErrInvariantViolation when
// the condition is false. The err argument, when non-nil, is joined
// to the panic value so callers can match on it with errors.Is after
// recovering.
func Invariant(cond bool, err error) {
	if cond {
		return
	}

	if err == nil {
		panic(ErrInvariantViolation)
	}

	panic(errors.Join(err, ErrInvariantViolation))
}

// IsInvariantViolation returns true if the argument is or resolves to
// ErrInvariantViolation.
func IsInvariantViolation(r any) bool {
	err, ok := r.(error)
	if !ok || err == nil {
		return false
	}

	return errors.Is(err, ErrInvariantViolation)
}

// ParsePanic converts a recovered panic value into an error rooted in
// ErrRecoveredPanic. If no panic is detected, ParsePanic returns nil.
func ParsePanic(r any) error {
	switch err := r.(type) {
	case nil:
		return nil
	case error:
		return errors.Join(err, ErrRecoveredPanic)
	case string:
		return errors.Join(New(err), ErrRecoveredPanic)
	default:
		return errors.Join(fmt.Errorf("[%T]: %v", err, err), ErrRecoveredPanic)
	}
}

// WithRecoverCall runs a function without arguments that does not
// produce an error and, if the function panics, converts it into an
// error.
func WithRecoverCall(fn func()) (err error) {
	defer func() { err = ParsePanic(recover()) }()
	fn()
	return
}
