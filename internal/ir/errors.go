package ir

import "github.com/pkg/errors"

// Assertion categorizes a violated IR invariant as a programmer error in
// the component that built the Module (the frontend, a previous pass),
// not a condition the IR itself can recover from.
type Assertion struct {
	cause error
}

func (a *Assertion) Error() string { return a.cause.Error() }
func (a *Assertion) Unwrap() error { return a.cause }

// assertf wraps a formatted message as an *Assertion, using pkg/errors
// so callers retain a stack trace at the point the invariant broke.
func assertf(format string, args ...interface{}) error {
	return &Assertion{cause: errors.Errorf(format, args...)}
}

// assertTrue returns an *Assertion built from format/args if cond is
// false, nil otherwise. Verify uses this to keep its checks one-liners.
func assertTrue(cond bool, format string, args ...interface{}) error {
	if cond {
		return nil
	}
	return assertf(format, args...)
}
