// Package ers provides constant sentinel errors and the small set of
// helpers the rest of linksort uses to build, match and raise them.
//
// The package has no dependencies outside of the standard library.
package ers

// Error is a type alias for building/declaring sentinel errors
// as constants.
//
// In addition to nil error interface values, the Empty string is,
// considered equal to nil errors for the purposes of Is(). errors.As
// correctly handles unwrapping and casting Error-typed error objects.
type Error string

// New constructs an error object that uses the Error as the
// underlying type.
func New(str string) error { return Error(str) }

// Error implements the error interface for Error.
func (e Error) Error() string { return string(e) }

// Is satisfies the interface used by errors.Is without using
// reflection.
func (e Error) Is(err error) bool {
	switch {
	case err == nil && e == "":
		return true
	case (err == nil) != (e == ""):
		return false
	default:
		x, ok := err.(Error)
		return ok && x == e
	}
}
