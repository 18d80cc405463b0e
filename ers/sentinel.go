package ers

// ErrInvariantViolation is the root error of the error object that is
// the content of all panics produced by the Invariant helper.
const ErrInvariantViolation Error = Error("invariant violation")

// ErrRecoveredPanic is at the root of any error returned by
// WithRecoverCall when the function panicked.
const ErrRecoveredPanic Error = Error("recovered panic")

// ErrInvalidInput indicates malformed input. These errors are not
// generally retriable.
const ErrInvalidInput Error = Error("invalid input")
